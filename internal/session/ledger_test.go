package session

import (
	"math"
	"testing"
)

func TestAddExpenseExample(t *testing.T) {
	s := New(twoPhaseTrip(), nil) // budget: food=500

	s.AddExpense("food", "150.5", "lunch")
	s.AddExpense("food", "x", "dinner")

	if got := s.TotalSpent(); math.Abs(got-150.5) > 1e-9 {
		t.Fatalf("TotalSpent = %.2f, want 150.50", got)
	}
	if got := s.RemainingBudget("food"); math.Abs(got-349.5) > 1e-9 {
		t.Fatalf("RemainingBudget(food) = %.2f, want 349.50", got)
	}

	// The malformed entry is recorded with amount 0, not dropped.
	entries := s.Expenses("food")
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[1].Amount != 0 || entries[1].Description != "dinner" {
		t.Fatalf("normalized entry = {%.2f %q}, want {0 dinner}", entries[1].Amount, entries[1].Description)
	}
}

func TestNormalizeAmount(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"150.5", 150.5},
		{" 42 ", 42},
		{"abc", 0},
		{"", 0},
		{"-10", 0},
		{"0", 0},
	}
	for _, tc := range cases {
		if got := NormalizeAmount(tc.raw); got != tc.want {
			t.Fatalf("NormalizeAmount(%q) = %.2f, want %.2f", tc.raw, got, tc.want)
		}
	}
}

func TestOverBudgetIsRepresentable(t *testing.T) {
	s := New(twoPhaseTrip(), nil)

	s.AddExpense("food", "700", "fancy dinner")
	if got := s.RemainingBudget("food"); got != -200 {
		t.Fatalf("RemainingBudget(food) = %.2f, want -200", got)
	}
}

func TestUnbudgetedCategory(t *testing.T) {
	s := New(twoPhaseTrip(), nil)

	s.AddExpense("souvenirs", "30", "magnet")
	if got := s.SpentIn("souvenirs"); got != 30 {
		t.Fatalf("SpentIn(souvenirs) = %.2f, want 30", got)
	}
	if got := s.RemainingBudget("souvenirs"); got != -30 {
		t.Fatalf("RemainingBudget(souvenirs) = %.2f, want -30", got)
	}

	rows := s.BudgetRows()
	if len(rows) != 2 {
		t.Fatalf("BudgetRows = %d rows, want 2", len(rows))
	}
	// Sorted by name: food before souvenirs.
	if rows[0].Category != "food" || rows[1].Category != "souvenirs" {
		t.Fatalf("row order = [%s, %s], want [food, souvenirs]", rows[0].Category, rows[1].Category)
	}
	if rows[0].Allocated != 500 || rows[1].Allocated != 0 {
		t.Fatalf("allocations = [%.0f, %.0f], want [500, 0]", rows[0].Allocated, rows[1].Allocated)
	}
}

func TestTotalBudget(t *testing.T) {
	s := New(twoPhaseTrip(), nil)
	if got := s.TotalBudget(); got != 500 {
		t.Fatalf("TotalBudget = %.2f, want 500", got)
	}
}

func TestRecentExpensesNewestFirst(t *testing.T) {
	s := New(twoPhaseTrip(), nil)

	// Back-to-back adds can share a clock tick; ordering must follow
	// insertion regardless of timestamp granularity.
	s.AddExpense("food", "1", "first")
	s.AddExpense("fuel", "2", "second")
	s.AddExpense("food", "3", "third")

	recent := s.RecentExpenses(3)
	want := []string{"third", "second", "first"}
	if len(recent) != len(want) {
		t.Fatalf("recent = %d entries, want %d", len(recent), len(want))
	}
	for i, w := range want {
		if recent[i].Description != w {
			t.Fatalf("recent[%d] = %q, want %q", i, recent[i].Description, w)
		}
	}

	recent = s.RecentExpenses(2)
	if len(recent) != 2 || recent[0].Description != "third" || recent[1].Description != "second" {
		t.Fatalf("RecentExpenses(2) order = [%q, %q], want [third, second]",
			recent[0].Description, recent[1].Description)
	}
}
