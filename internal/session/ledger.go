package session

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"tripdash/internal/model"
)

// NormalizeAmount parses a raw amount string into a non-negative value.
// Anything that fails to parse, and any negative value, normalizes to 0.
// The zero entry is still recorded; malformed input is never silently
// dropped from the ledger.
func NormalizeAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// AddExpense appends an entry to the category's ledger, creating the
// category list on first use. The recorded entry is returned so callers can
// surface the normalized amount.
func (s *Session) AddExpense(category, rawAmount, description string) model.Expense {
	s.expenseSeq++
	e := model.Expense{
		Amount:      NormalizeAmount(rawAmount),
		Description: description,
		At:          time.Now(),
		Seq:         s.expenseSeq,
	}
	s.expenses[category] = append(s.expenses[category], e)
	return e
}

// Expenses returns a copy of the category's entries in insertion order.
func (s *Session) Expenses(category string) []model.Expense {
	entries := s.expenses[category]
	out := make([]model.Expense, len(entries))
	copy(out, entries)
	return out
}

// RecentExpenses returns up to n entries across all categories, newest first.
// Ordering follows the insertion sequence, so entries recorded within the
// same clock tick still come back in a deterministic order.
func (s *Session) RecentExpenses(n int) []model.Expense {
	var all []model.Expense
	for _, entries := range s.expenses {
		all = append(all, entries...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seq > all[j].Seq })
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// TotalBudget sums the trip's allocated amounts across all categories.
func (s *Session) TotalBudget() float64 {
	var total float64
	for _, amount := range s.trip.Budget {
		total += amount
	}
	return total
}

// TotalSpent sums every recorded expense, including entries in categories
// the trip budget does not allocate for.
func (s *Session) TotalSpent() float64 {
	var total float64
	for _, entries := range s.expenses {
		for _, e := range entries {
			total += e.Amount
		}
	}
	return total
}

// SpentIn sums the entries recorded under one category.
func (s *Session) SpentIn(category string) float64 {
	var total float64
	for _, e := range s.expenses[category] {
		total += e.Amount
	}
	return total
}

// RemainingBudget returns allocation minus spend for a category. The result
// goes negative when over budget; that is a valid, representable state.
func (s *Session) RemainingBudget(category string) float64 {
	return s.trip.Budget[category] - s.SpentIn(category)
}

// BudgetRows returns one row per budgeted category, sorted by category name,
// followed by rows for any unbudgeted categories that have expenses.
func (s *Session) BudgetRows() []model.BudgetRow {
	var rows []model.BudgetRow
	for cat, allocated := range s.trip.Budget {
		spent := s.SpentIn(cat)
		rows = append(rows, model.BudgetRow{
			Category:  cat,
			Allocated: allocated,
			Spent:     spent,
			Remaining: allocated - spent,
		})
	}
	for cat := range s.expenses {
		if _, budgeted := s.trip.Budget[cat]; !budgeted {
			spent := s.SpentIn(cat)
			rows = append(rows, model.BudgetRow{Category: cat, Spent: spent, Remaining: -spent})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Category < rows[j].Category })
	return rows
}
