package export

import "sync"

// flightGuard ensures at most one capture runs at a time. A request
// arriving while one is in flight is ignored: no queueing, no error.
type flightGuard struct {
	mu   sync.Mutex
	busy bool
}

// TryLock marks a capture as running. Returns false if one already is.
func (g *flightGuard) TryLock() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return false
	}
	g.busy = true
	return true
}

// Unlock clears the in-flight mark. Must be called after a successful
// TryLock, on success and failure alike, so later exports can start.
func (g *flightGuard) Unlock() {
	g.mu.Lock()
	g.busy = false
	g.mu.Unlock()
}
