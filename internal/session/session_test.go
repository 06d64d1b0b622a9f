package session

import (
	"strings"
	"testing"

	"tripdash/internal/media"
	"tripdash/internal/model"

	"github.com/rs/zerolog"
)

// twoPhaseTrip matches the worked example: phases of 100 and 150 miles.
func twoPhaseTrip() *model.Trip {
	return &model.Trip{
		Name: "Test Trip",
		Phases: []model.Phase{
			{ID: "p1", Name: "Leg 1", Miles: 100, Hours: 2},
			{ID: "p2", Name: "Leg 2", Miles: 150, Hours: 3},
		},
		Packing: model.PackingList{
			Categories: []model.PackingCategory{
				{Name: "Car", Items: []string{"Jumper cables", "Tire gauge"}},
				{Name: "Camping", Items: []string{"Tent"}},
			},
		},
		Budget: map[string]float64{"food": 500},
	}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	store, err := media.Open(t.TempDir(), 1<<20, zerolog.Nop())
	if err != nil {
		t.Fatalf("opening media store: %v", err)
	}
	return New(twoPhaseTrip(), store)
}

func TestCloseReleasesAttachments(t *testing.T) {
	store, err := media.Open(t.TempDir(), 1<<20, zerolog.Nop())
	if err != nil {
		t.Fatalf("opening media store: %v", err)
	}
	s := New(twoPhaseTrip(), store)

	if _, err := s.AttachPhoto("p1", strings.NewReader("img"), "a.jpg"); err != nil {
		t.Fatalf("AttachPhoto returned error: %v", err)
	}
	if _, err := s.AttachPhoto("p2", strings.NewReader("img"), "b.jpg"); err != nil {
		t.Fatalf("AttachPhoto returned error: %v", err)
	}
	if store.Held() != 2 {
		t.Fatalf("store held = %d, want 2", store.Held())
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if store.Held() != 0 {
		t.Fatalf("store held = %d after Close, want 0", store.Held())
	}
	if got := s.Photos("p1"); len(got) != 0 {
		t.Fatalf("photos survived Close: %d", len(got))
	}
}

func TestFacetsAreIsolated(t *testing.T) {
	s := newTestSession(t)

	// A failed packing toggle must not disturb the other facets.
	if err := s.ToggleItem("Car", "Kayak"); err == nil {
		t.Fatal("ToggleItem accepted unknown item")
	}

	s.AddExpense("food", "25", "diner")
	if err := s.MarkPhaseComplete("nope"); err == nil {
		t.Fatal("MarkPhaseComplete accepted unknown phase")
	}

	if got := s.TotalSpent(); got != 25 {
		t.Fatalf("TotalSpent = %.2f after unrelated failures, want 25", got)
	}
	if got := s.Progress().PhasesDone; got != 0 {
		t.Fatalf("PhasesDone = %d, want 0", got)
	}
}
