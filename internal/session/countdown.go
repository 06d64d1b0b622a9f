package session

import (
	"time"

	"tripdash/internal/model"
)

// TimeRemaining returns the countdown from now until target, floored at zero
// once the target has passed. It is a pure function of its inputs; callers
// pick their own refresh cadence (the dashboard ticks it once per second).
func TimeRemaining(target, now time.Time) model.Countdown {
	ms := target.Sub(now).Milliseconds()
	if ms <= 0 {
		return model.Countdown{}
	}

	secs := ms / 1000
	return model.Countdown{
		Days:    int(secs / 86400),
		Hours:   int(secs % 86400 / 3600),
		Minutes: int(secs % 3600 / 60),
		Seconds: int(secs % 60),
	}
}
