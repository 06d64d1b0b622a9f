// Package session holds the in-memory state of one trip-planning session.
//
// A Session is the single owner of the four mutable facets (completed
// phases, the packing checklist, the expense ledger, and photo attachments)
// layered over an immutable trip definition. All derived values (progress,
// budget totals) are recomputed from current state on every call, so callers
// never see stale aggregates and never need to invalidate anything.
//
// Sessions are not safe for concurrent use. All mutations are expected to
// come from a single event loop (the dashboard's update function); nothing
// here blocks.
package session

import (
	"errors"

	"tripdash/internal/media"
	"tripdash/internal/model"
)

// ErrInvalidReference is returned when an operation names a phase, category,
// item, or attachment index that the trip does not contain. The operation is
// a no-op: state is never modified on this error.
var ErrInvalidReference = errors.New("session: invalid reference")

// ErrPhaseFull is returned when a phase has reached its attachment cap.
var ErrPhaseFull = errors.New("session: phase attachment limit reached")

// DefaultMaxPhotosPerPhase caps attachments per phase unless configured.
const DefaultMaxPhotosPerPhase = 64

// Session owns all mutable state for one trip. Facets start empty and are
// discarded (with spooled attachments released) on Close.
type Session struct {
	trip  *model.Trip
	store *media.Store

	completed map[string]struct{}           // phase id set
	checked   map[itemKey]bool              // sparse; absent == unchecked
	expenses  map[string][]model.Expense    // category → ordered entries
	photos    map[string][]Attachment       // phase id → ordered attachments

	expenseSeq        int64 // insertion counter for ledger recency ordering
	maxPhotosPerPhase int
}

type itemKey struct {
	category string
	item     string
}

// Option customizes a Session.
type Option func(*Session)

// WithMaxPhotosPerPhase overrides the per-phase attachment cap.
func WithMaxPhotosPerPhase(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxPhotosPerPhase = n
		}
	}
}

// New creates an empty session over the given trip. The media store may be
// nil when photo attachments are not used (CLI read-only views).
func New(trip *model.Trip, store *media.Store, opts ...Option) *Session {
	s := &Session{
		trip:              trip,
		store:             store,
		completed:         make(map[string]struct{}),
		checked:           make(map[itemKey]bool),
		expenses:          make(map[string][]model.Expense),
		photos:            make(map[string][]Attachment),
		maxPhotosPerPhase: DefaultMaxPhotosPerPhase,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Trip returns the immutable trip definition this session is bound to.
func (s *Session) Trip() *model.Trip { return s.trip }

// Close releases every attachment still held and clears all facets.
func (s *Session) Close() error {
	s.photos = make(map[string][]Attachment)
	s.completed = make(map[string]struct{})
	s.checked = make(map[itemKey]bool)
	s.expenses = make(map[string][]model.Expense)
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}
