package state

import (
	"sync"

	"github.com/google/uuid"
)

// IDFunc produces a unique, never-reused identifier for a committed
// path. Injected so tests can substitute a deterministic counter.
type IDFunc func() string

// Store owns the committed strokes of one notebook page. The sequence
// is append-only between resets and committed paths never mutate. The
// Fyne renderer reads it from the render path while the event goroutine
// commits, so access is RWMutex guarded.
type Store struct {
	mu     sync.RWMutex
	paths  []Path
	nextID IDFunc
}

// NewStore creates an empty Store. A nil nextID falls back to random
// UUIDs.
func NewStore(nextID IDFunc) *Store {
	if nextID == nil {
		nextID = uuid.NewString
	}
	return &Store{nextID: nextID}
}

// Commit appends a new path holding points at the end of the sequence
// and returns it. Commit order equals gesture-completion order. An
// empty point sequence is never stored.
func (s *Store) Commit(points []Point) Path {
	if len(points) == 0 {
		return Path{}
	}
	p := Path{ID: s.nextID(), Points: points}
	s.mu.Lock()
	s.paths = append(s.paths, p)
	s.mu.Unlock()
	return p
}

// Reset clears the committed sequence. It does not touch the text
// layer; "clear page" only discards ink.
func (s *Store) Reset() {
	s.mu.Lock()
	s.paths = nil
	s.mu.Unlock()
}

// All returns a copy of the committed sequence in commit order.
func (s *Store) All() []Path {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := make([]Path, len(s.paths))
	copy(paths, s.paths)
	return paths
}

// Len returns the number of committed paths.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.paths)
}
