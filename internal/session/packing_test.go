package session

import (
	"errors"
	"testing"
)

func TestDoubleToggleRestoresState(t *testing.T) {
	s := New(twoPhaseTrip(), nil)

	if s.IsChecked("Car", "Tent stakes") {
		t.Fatal("unknown item reported checked")
	}
	if s.IsChecked("Car", "Jumper cables") {
		t.Fatal("item checked before any toggle")
	}

	s.ToggleItem("Car", "Jumper cables")
	if !s.IsChecked("Car", "Jumper cables") {
		t.Fatal("item not checked after toggle")
	}

	s.ToggleItem("Car", "Jumper cables")
	if s.IsChecked("Car", "Jumper cables") {
		t.Fatal("item still checked after double toggle")
	}
}

func TestToggleUnknownItem(t *testing.T) {
	s := New(twoPhaseTrip(), nil)

	if err := s.ToggleItem("Car", "Kayak"); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("ToggleItem(Car, Kayak) = %v, want ErrInvalidReference", err)
	}
	if err := s.ToggleItem("Boat", "Tent"); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("ToggleItem(Boat, Tent) = %v, want ErrInvalidReference", err)
	}
	if got := s.PackedTotal(); got != 0 {
		t.Fatalf("PackedTotal = %d after failed toggles, want 0", got)
	}
}

func TestCompletionCount(t *testing.T) {
	s := New(twoPhaseTrip(), nil)

	if got := s.CompletionCount("Car"); got != 0 {
		t.Fatalf("CompletionCount(Car) = %d, want 0", got)
	}

	s.ToggleItem("Car", "Jumper cables")
	s.ToggleItem("Car", "Tire gauge")
	s.ToggleItem("Camping", "Tent")

	if got := s.CompletionCount("Car"); got != 2 {
		t.Fatalf("CompletionCount(Car) = %d, want 2", got)
	}
	if got := s.CompletionCount("Camping"); got != 1 {
		t.Fatalf("CompletionCount(Camping) = %d, want 1", got)
	}
	if got := s.CompletionCount("Boat"); got != 0 {
		t.Fatalf("CompletionCount(Boat) = %d, want 0", got)
	}
	if got := s.PackedTotal(); got != 3 {
		t.Fatalf("PackedTotal = %d, want 3", got)
	}

	s.ToggleItem("Car", "Tire gauge")
	if got := s.CompletionCount("Car"); got != 1 {
		t.Fatalf("CompletionCount(Car) = %d after untoggle, want 1", got)
	}
}
