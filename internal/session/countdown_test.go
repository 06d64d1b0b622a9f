package session

import (
	"testing"
	"time"

	"tripdash/internal/model"
)

func TestTimeRemaining(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		target time.Time
		want   model.Countdown
	}{
		{
			name:   "days out",
			target: now.Add(11*24*time.Hour + 3*time.Hour + 25*time.Minute + 9*time.Second),
			want:   model.Countdown{Days: 11, Hours: 3, Minutes: 25, Seconds: 9},
		},
		{
			name:   "under a minute",
			target: now.Add(42 * time.Second),
			want:   model.Countdown{Seconds: 42},
		},
		{
			name:   "exactly now",
			target: now,
			want:   model.Countdown{},
		},
		{
			name:   "already departed",
			target: now.Add(-time.Hour),
			want:   model.Countdown{},
		},
		{
			name:   "sub-second remainder floors",
			target: now.Add(1500 * time.Millisecond),
			want:   model.Countdown{Seconds: 1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TimeRemaining(tc.target, now)
			if got != tc.want {
				t.Fatalf("TimeRemaining = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestTimeRemainingNeverNegative(t *testing.T) {
	now := time.Now()
	got := TimeRemaining(now.Add(-100*24*time.Hour), now)
	if !got.IsZero() {
		t.Fatalf("past target yielded %+v, want zero", got)
	}
}
