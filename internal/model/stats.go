package model

import "time"

// ProgressStats holds aggregate trip completion derived from completed phases.
type ProgressStats struct {
	TotalMiles     float64
	TotalHours     float64
	CompletedMiles float64
	CompletedHours float64
	Percent        float64 // 0-100, 0 when TotalMiles == 0
	PhasesDone     int
	PhaseCount     int
}

// Expense is one recorded spend entry within a budget category.
// Seq is the session-wide insertion order; recency sorting uses it rather
// than At, which can collide on coarse clocks.
type Expense struct {
	Amount      float64
	Description string
	At          time.Time
	Seq         int64
}

// BudgetRow holds per-category budget state for rendering.
type BudgetRow struct {
	Category  string
	Allocated float64
	Spent     float64
	Remaining float64 // negative when over budget
}

// Countdown holds the time remaining until departure, floored at zero.
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// IsZero reports whether the countdown has fully elapsed.
func (c Countdown) IsZero() bool {
	return c.Days == 0 && c.Hours == 0 && c.Minutes == 0 && c.Seconds == 0
}
