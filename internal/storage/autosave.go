package storage

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/sirupsen/logrus"
)

// Autosaver debounces writes of one settings key: each Update resets
// the trailing-edge timer, so only the latest value is written once
// input goes quiet. Writes for the same key never run concurrently and
// the latest write always wins.
type Autosaver struct {
	store     Store
	key       string
	debounced func(func())

	mu      sync.Mutex
	pending string
	dirty   bool

	// OnSaved runs after a successful write (used for the "saved"
	// indicator). A failed write skips it; the failure is logged and
	// the next Update retries naturally.
	OnSaved func()
}

// NewAutosaver creates an Autosaver writing to store under key with
// the given trailing-edge delay.
func NewAutosaver(store Store, key string, delay time.Duration) *Autosaver {
	return &Autosaver{
		store:     store,
		key:       key,
		debounced: debounce.New(delay),
	}
}

// Update records value as the latest content and (re)schedules the
// delayed write.
func (a *Autosaver) Update(value string) {
	a.mu.Lock()
	a.pending = value
	a.dirty = true
	a.mu.Unlock()
	a.debounced(a.Flush)
}

// Flush writes the latest recorded value immediately. Called by the
// debounce timer, and directly on shutdown so a pending edit is not
// lost. When no Update has been recorded since the last successful
// write, Flush does nothing: a flush must never overwrite stored
// content with a value the user did not enter.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if !a.dirty {
		a.mu.Unlock()
		return
	}
	value := a.pending
	a.mu.Unlock()

	if err := a.store.Set(a.key, value); err != nil {
		logrus.WithError(err).WithField("key", a.key).Warn("autosave failed")
		return
	}
	a.mu.Lock()
	// A newer Update may have arrived while writing; keep it dirty.
	if a.pending == value {
		a.dirty = false
	}
	a.mu.Unlock()
	if a.OnSaved != nil {
		a.OnSaved()
	}
}
