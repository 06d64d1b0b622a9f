// Package media owns attachment binary data on behalf of a session.
//
// Session state keeps only opaque Refs; the bytes themselves are spooled to
// files under the store's directory. Releasing a ref deletes its spool file,
// and closing the store releases everything still held, so attachment
// footprint inside session state stays O(reference) regardless of file size.
package media

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrStoreFull is returned when spooling would exceed the store's byte cap.
var ErrStoreFull = errors.New("media: attachment store is full")

// Ref is an opaque handle to spooled binary data.
type Ref struct {
	ID   string
	Path string
	Size int64
}

// Store spools attachment bytes to disk and tracks the refs it has issued.
type Store struct {
	dir      string
	maxBytes int64
	used     int64
	refs     map[string]Ref
	log      zerolog.Logger
}

// Open creates a store rooted at dir with the given byte cap.
// The directory is created if it does not exist.
func Open(dir string, maxBytes int64, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating media dir: %w", err)
	}
	return &Store{
		dir:      dir,
		maxBytes: maxBytes,
		refs:     make(map[string]Ref),
		log:      log,
	}, nil
}

// Spool copies r into a new spool file and returns a ref to it.
// If the copy would exceed the store's byte cap the partial file is removed
// and ErrStoreFull is returned.
func (s *Store) Spool(r io.Reader) (Ref, error) {
	id := uuid.NewString()
	path := filepath.Join(s.dir, id)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return Ref{}, fmt.Errorf("creating spool file: %w", err)
	}

	budget := s.maxBytes - s.used
	n, err := io.Copy(f, io.LimitReader(r, budget+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return Ref{}, fmt.Errorf("spooling attachment: %w", err)
	}
	if n > budget {
		_ = os.Remove(path)
		s.log.Warn().Int64("used", s.used).Int64("cap", s.maxBytes).
			Msg("attachment rejected, store full")
		return Ref{}, ErrStoreFull
	}

	ref := Ref{ID: id, Path: path, Size: n}
	s.refs[id] = ref
	s.used += n

	s.log.Debug().Str("ref", id).Int64("bytes", n).Msg("attachment spooled")
	return ref, nil
}

// Read returns a reader over the spooled bytes for a ref.
func (s *Store) Read(ref Ref) (io.ReadCloser, error) {
	if _, ok := s.refs[ref.ID]; !ok {
		return nil, fmt.Errorf("media: unknown ref %s", ref.ID)
	}
	return os.Open(ref.Path)
}

// Release deletes the spool file behind a ref. Releasing an unknown or
// already-released ref is a no-op.
func (s *Store) Release(ref Ref) error {
	held, ok := s.refs[ref.ID]
	if !ok {
		return nil
	}
	delete(s.refs, ref.ID)
	s.used -= held.Size

	if err := os.Remove(held.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("releasing attachment: %w", err)
	}
	s.log.Debug().Str("ref", ref.ID).Msg("attachment released")
	return nil
}

// Close releases every ref still held. The first removal error is returned
// after all refs have been attempted.
func (s *Store) Close() error {
	var firstErr error
	for _, ref := range s.refs {
		if err := os.Remove(ref.Path); err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = err
		}
	}
	s.refs = make(map[string]Ref)
	s.used = 0
	return firstErr
}

// UsedBytes returns the total bytes currently spooled.
func (s *Store) UsedBytes() int64 { return s.used }

// CapBytes returns the store's byte cap.
func (s *Store) CapBytes() int64 { return s.maxBytes }

// Held returns the number of refs currently held.
func (s *Store) Held() int { return len(s.refs) }
