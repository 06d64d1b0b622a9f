package session

import (
	"errors"
	"os"
	"strings"
	"testing"

	"tripdash/internal/media"

	"github.com/rs/zerolog"
)

func TestAttachThenDetachRestoresLength(t *testing.T) {
	s := newTestSession(t)

	s.AttachPhoto("p1", strings.NewReader("before"), "before.jpg")
	before := len(s.Photos("p1"))

	att, err := s.AttachPhoto("p1", strings.NewReader("jpegbytes"), "mesa.jpg")
	if err != nil {
		t.Fatalf("AttachPhoto returned error: %v", err)
	}
	if err := s.DetachPhoto("p1", before); err != nil {
		t.Fatalf("DetachPhoto returned error: %v", err)
	}

	if got := len(s.Photos("p1")); got != before {
		t.Fatalf("photos = %d after attach+detach, want %d", got, before)
	}
	if _, err := os.Stat(att.Ref.Path); !os.IsNotExist(err) {
		t.Fatalf("spool file survived detach, stat err = %v", err)
	}
}

func TestAttachInvalidPhaseSpoolsNothing(t *testing.T) {
	store, err := media.Open(t.TempDir(), 1<<20, zerolog.Nop())
	if err != nil {
		t.Fatalf("opening media store: %v", err)
	}
	s := New(twoPhaseTrip(), store)

	_, err = s.AttachPhoto("ghost", strings.NewReader("img"), "x.jpg")
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("AttachPhoto(ghost) = %v, want ErrInvalidReference", err)
	}
	if store.Held() != 0 {
		t.Fatalf("store held = %d after invalid attach, want 0", store.Held())
	}
}

func TestDetachOutOfRange(t *testing.T) {
	s := newTestSession(t)

	if err := s.DetachPhoto("p1", 0); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("DetachPhoto on empty phase = %v, want ErrInvalidReference", err)
	}

	s.AttachPhoto("p1", strings.NewReader("img"), "a.jpg")
	if err := s.DetachPhoto("p1", 1); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("DetachPhoto(1) with one photo = %v, want ErrInvalidReference", err)
	}
	if err := s.DetachPhoto("p1", -1); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("DetachPhoto(-1) = %v, want ErrInvalidReference", err)
	}
}

func TestPhotosOrderAndIsolation(t *testing.T) {
	s := newTestSession(t)

	s.AttachPhoto("p1", strings.NewReader("1"), "one.jpg")
	s.AttachPhoto("p1", strings.NewReader("2"), "two.jpg")
	s.AttachPhoto("p2", strings.NewReader("3"), "three.jpg")

	p1 := s.Photos("p1")
	if len(p1) != 2 || p1[0].Name != "one.jpg" || p1[1].Name != "two.jpg" {
		t.Fatalf("p1 photos = %+v, want [one.jpg two.jpg]", p1)
	}
	if got := len(s.Photos("p2")); got != 1 {
		t.Fatalf("p2 photos = %d, want 1", got)
	}
	if got := s.PhotoCount(); got != 3 {
		t.Fatalf("PhotoCount = %d, want 3", got)
	}

	// Detaching from p1 must not touch p2.
	s.DetachPhoto("p1", 0)
	if got := len(s.Photos("p2")); got != 1 {
		t.Fatalf("p2 photos = %d after p1 detach, want 1", got)
	}
}

func TestPerPhaseCap(t *testing.T) {
	store, err := media.Open(t.TempDir(), 1<<20, zerolog.Nop())
	if err != nil {
		t.Fatalf("opening media store: %v", err)
	}
	s := New(twoPhaseTrip(), store, WithMaxPhotosPerPhase(2))

	for i := 0; i < 2; i++ {
		if _, err := s.AttachPhoto("p1", strings.NewReader("img"), "x.jpg"); err != nil {
			t.Fatalf("AttachPhoto %d returned error: %v", i, err)
		}
	}

	_, err = s.AttachPhoto("p1", strings.NewReader("img"), "overflow.jpg")
	if !errors.Is(err, ErrPhaseFull) {
		t.Fatalf("AttachPhoto over cap = %v, want ErrPhaseFull", err)
	}
	if got := len(s.Photos("p1")); got != 2 {
		t.Fatalf("photos = %d after rejected attach, want 2", got)
	}

	// Other phases are unaffected by p1 hitting its cap.
	if _, err := s.AttachPhoto("p2", strings.NewReader("img"), "ok.jpg"); err != nil {
		t.Fatalf("AttachPhoto(p2) returned error: %v", err)
	}
}

func TestStoreFullPropagates(t *testing.T) {
	store, err := media.Open(t.TempDir(), 4, zerolog.Nop())
	if err != nil {
		t.Fatalf("opening media store: %v", err)
	}
	s := New(twoPhaseTrip(), store)

	_, err = s.AttachPhoto("p1", strings.NewReader("way too many bytes"), "big.jpg")
	if !errors.Is(err, media.ErrStoreFull) {
		t.Fatalf("AttachPhoto over store cap = %v, want media.ErrStoreFull", err)
	}
	if got := len(s.Photos("p1")); got != 0 {
		t.Fatalf("photos = %d after rejected attach, want 0", got)
	}
}
