package session

import (
	"errors"
	"math"
	"testing"

	"tripdash/internal/model"
)

func TestProgressExample(t *testing.T) {
	s := New(twoPhaseTrip(), nil)

	if err := s.MarkPhaseComplete("p1"); err != nil {
		t.Fatalf("MarkPhaseComplete returned error: %v", err)
	}

	p := s.Progress()
	if p.CompletedMiles != 100 {
		t.Fatalf("CompletedMiles = %.1f, want 100", p.CompletedMiles)
	}
	if p.TotalMiles != 250 {
		t.Fatalf("TotalMiles = %.1f, want 250", p.TotalMiles)
	}
	if math.Abs(p.Percent-40) > 1e-9 {
		t.Fatalf("Percent = %.2f, want 40", p.Percent)
	}
}

func TestProgressBounds(t *testing.T) {
	s := New(twoPhaseTrip(), nil)

	if p := s.Progress(); p.Percent != 0 || p.CompletedMiles != 0 {
		t.Fatalf("empty set: Percent = %.2f CompletedMiles = %.1f, want 0/0", p.Percent, p.CompletedMiles)
	}

	for _, id := range []string{"p1", "p2"} {
		if err := s.MarkPhaseComplete(id); err != nil {
			t.Fatalf("MarkPhaseComplete(%s): %v", id, err)
		}
	}

	p := s.Progress()
	if math.Abs(p.Percent-100) > 1e-9 {
		t.Fatalf("all complete: Percent = %.2f, want 100", p.Percent)
	}
	if p.CompletedMiles > p.TotalMiles {
		t.Fatalf("CompletedMiles %.1f exceeds TotalMiles %.1f", p.CompletedMiles, p.TotalMiles)
	}
}

func TestProgressFreshAfterEachMutation(t *testing.T) {
	s := New(twoPhaseTrip(), nil)

	s.MarkPhaseComplete("p1")
	if got := s.Progress().Percent; math.Abs(got-40) > 1e-9 {
		t.Fatalf("after mark: Percent = %.2f, want 40", got)
	}
	s.MarkPhaseIncomplete("p1")
	if got := s.Progress().Percent; got != 0 {
		t.Fatalf("after unmark: Percent = %.2f, want 0", got)
	}
}

func TestMarkUnknownPhaseIsNoOp(t *testing.T) {
	s := New(twoPhaseTrip(), nil)

	err := s.MarkPhaseComplete("missing")
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("MarkPhaseComplete(missing) = %v, want ErrInvalidReference", err)
	}
	if got := s.Progress().PhasesDone; got != 0 {
		t.Fatalf("PhasesDone = %d after failed mark, want 0", got)
	}

	if err := s.MarkPhaseIncomplete("missing"); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("MarkPhaseIncomplete(missing) = %v, want ErrInvalidReference", err)
	}
}

func TestMarkIsIdempotent(t *testing.T) {
	s := New(twoPhaseTrip(), nil)

	s.MarkPhaseComplete("p1")
	s.MarkPhaseComplete("p1")
	if got := s.Progress().PhasesDone; got != 1 {
		t.Fatalf("PhasesDone = %d after double mark, want 1", got)
	}
}

func TestTogglePhase(t *testing.T) {
	s := New(twoPhaseTrip(), nil)

	s.TogglePhase("p2")
	if !s.PhaseComplete("p2") {
		t.Fatal("p2 not complete after toggle")
	}
	s.TogglePhase("p2")
	if s.PhaseComplete("p2") {
		t.Fatal("p2 still complete after second toggle")
	}
}

func TestProgressZeroMileTrip(t *testing.T) {
	trip := &model.Trip{
		Name:   "Walkabout",
		Phases: []model.Phase{{ID: "a", Name: "A", Miles: 0, Hours: 1}},
	}
	s := New(trip, nil)
	s.MarkPhaseComplete("a")

	if got := s.Progress().Percent; got != 0 {
		t.Fatalf("zero-mile trip Percent = %.2f, want 0", got)
	}
}
