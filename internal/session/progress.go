package session

import "tripdash/internal/model"

// MarkPhaseComplete adds the phase to the completed set. Marking an already
// complete phase is a no-op. An id not present in the trip returns
// ErrInvalidReference and leaves the set unchanged.
func (s *Session) MarkPhaseComplete(id string) error {
	if s.trip.PhaseByID(id) == nil {
		return ErrInvalidReference
	}
	s.completed[id] = struct{}{}
	return nil
}

// MarkPhaseIncomplete removes the phase from the completed set.
func (s *Session) MarkPhaseIncomplete(id string) error {
	if s.trip.PhaseByID(id) == nil {
		return ErrInvalidReference
	}
	delete(s.completed, id)
	return nil
}

// TogglePhase flips the phase's completion state.
func (s *Session) TogglePhase(id string) error {
	if s.trip.PhaseByID(id) == nil {
		return ErrInvalidReference
	}
	if _, done := s.completed[id]; done {
		delete(s.completed, id)
	} else {
		s.completed[id] = struct{}{}
	}
	return nil
}

// PhaseComplete reports whether the phase is marked complete.
func (s *Session) PhaseComplete(id string) bool {
	_, done := s.completed[id]
	return done
}

// Progress recomputes aggregate completion from the current completed set.
// Percent is mileage-weighted and defined as 0 when the trip has no miles.
func (s *Session) Progress() model.ProgressStats {
	var stats model.ProgressStats
	stats.PhaseCount = len(s.trip.Phases)

	for _, p := range s.trip.Phases {
		stats.TotalMiles += p.Miles
		stats.TotalHours += p.Hours
		if _, done := s.completed[p.ID]; done {
			stats.CompletedMiles += p.Miles
			stats.CompletedHours += p.Hours
			stats.PhasesDone++
		}
	}

	if stats.TotalMiles > 0 {
		stats.Percent = stats.CompletedMiles / stats.TotalMiles * 100
	}
	return stats
}
