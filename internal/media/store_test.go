package media

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func openTestStore(t *testing.T, maxBytes int64) *Store {
	t.Helper()
	s, err := Open(t.TempDir(), maxBytes, zerolog.Nop())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	return s
}

func TestSpoolAndRead(t *testing.T) {
	s := openTestStore(t, 1<<20)

	ref, err := s.Spool(strings.NewReader("sunset over the mesa"))
	if err != nil {
		t.Fatalf("Spool returned error: %v", err)
	}
	if ref.Size != int64(len("sunset over the mesa")) {
		t.Fatalf("ref size = %d, want %d", ref.Size, len("sunset over the mesa"))
	}
	if s.UsedBytes() != ref.Size {
		t.Fatalf("used = %d, want %d", s.UsedBytes(), ref.Size)
	}

	rc, err := s.Read(ref)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	data, err := io.ReadAll(rc)
	_ = rc.Close()
	if err != nil {
		t.Fatalf("reading spooled bytes: %v", err)
	}
	if string(data) != "sunset over the mesa" {
		t.Fatalf("spooled bytes = %q", data)
	}
}

func TestReleaseRemovesSpoolFile(t *testing.T) {
	s := openTestStore(t, 1<<20)

	ref, err := s.Spool(strings.NewReader("abc"))
	if err != nil {
		t.Fatalf("Spool returned error: %v", err)
	}
	if _, err := os.Stat(ref.Path); err != nil {
		t.Fatalf("spool file missing before release: %v", err)
	}

	if err := s.Release(ref); err != nil {
		t.Fatalf("Release returned error: %v", err)
	}
	if _, err := os.Stat(ref.Path); !os.IsNotExist(err) {
		t.Fatalf("spool file still present after release, stat err = %v", err)
	}
	if s.UsedBytes() != 0 {
		t.Fatalf("used = %d after release, want 0", s.UsedBytes())
	}

	// Double release is a no-op.
	if err := s.Release(ref); err != nil {
		t.Fatalf("second Release returned error: %v", err)
	}
}

func TestSpoolEnforcesByteCap(t *testing.T) {
	s := openTestStore(t, 10)

	if _, err := s.Spool(strings.NewReader("12345")); err != nil {
		t.Fatalf("first Spool returned error: %v", err)
	}

	_, err := s.Spool(strings.NewReader("123456789"))
	if !errors.Is(err, ErrStoreFull) {
		t.Fatalf("Spool over cap returned %v, want ErrStoreFull", err)
	}
	if s.Held() != 1 {
		t.Fatalf("held = %d after rejected spool, want 1", s.Held())
	}
	if s.UsedBytes() != 5 {
		t.Fatalf("used = %d after rejected spool, want 5", s.UsedBytes())
	}
}

func TestCloseReleasesEverything(t *testing.T) {
	s := openTestStore(t, 1<<20)

	var paths []string
	for i := 0; i < 3; i++ {
		ref, err := s.Spool(strings.NewReader("photo"))
		if err != nil {
			t.Fatalf("Spool returned error: %v", err)
		}
		paths = append(paths, ref.Path)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if s.Held() != 0 || s.UsedBytes() != 0 {
		t.Fatalf("held = %d used = %d after close, want 0/0", s.Held(), s.UsedBytes())
	}
	for _, p := range paths {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Fatalf("spool file %s survived Close", p)
		}
	}
}
