package session

import (
	"fmt"
	"io"
	"time"

	"tripdash/internal/media"
)

// Attachment is one photo attached to a phase. The session retains only the
// ref; the media store owns the bytes.
type Attachment struct {
	Ref  media.Ref
	Name string
	At   time.Time
}

// AttachPhoto spools the reader's bytes through the media store and records
// an attachment under the phase. The phase is validated before any bytes are
// consumed, so a stale or mistyped id costs nothing. Store limits propagate
// as media.ErrStoreFull; the per-phase cap as ErrPhaseFull.
func (s *Session) AttachPhoto(phaseID string, r io.Reader, name string) (Attachment, error) {
	if s.trip.PhaseByID(phaseID) == nil {
		return Attachment{}, ErrInvalidReference
	}
	if len(s.photos[phaseID]) >= s.maxPhotosPerPhase {
		return Attachment{}, ErrPhaseFull
	}
	if s.store == nil {
		return Attachment{}, fmt.Errorf("session: no media store configured")
	}

	ref, err := s.store.Spool(r)
	if err != nil {
		return Attachment{}, err
	}

	att := Attachment{Ref: ref, Name: name, At: time.Now()}
	s.photos[phaseID] = append(s.photos[phaseID], att)
	return att, nil
}

// DetachPhoto removes the attachment at index from the phase and releases
// its spooled resource. An unknown phase or out-of-range index returns
// ErrInvalidReference.
func (s *Session) DetachPhoto(phaseID string, index int) error {
	if s.trip.PhaseByID(phaseID) == nil {
		return ErrInvalidReference
	}
	list := s.photos[phaseID]
	if index < 0 || index >= len(list) {
		return ErrInvalidReference
	}

	att := list[index]
	s.photos[phaseID] = append(list[:index], list[index+1:]...)

	if s.store != nil {
		if err := s.store.Release(att.Ref); err != nil {
			return err
		}
	}
	return nil
}

// Photos returns the phase's attachments in insertion order; an empty slice
// when the phase has none. The returned slice is a copy.
func (s *Session) Photos(phaseID string) []Attachment {
	list := s.photos[phaseID]
	out := make([]Attachment, len(list))
	copy(out, list)
	return out
}

// PhotoCount returns the total number of attachments across all phases.
func (s *Session) PhotoCount() int {
	n := 0
	for _, list := range s.photos {
		n += len(list)
	}
	return n
}
