// Package storage persists notebook settings (note text, theme) in a
// local key-value store.
package storage

import "sync"

// Settings keys and limits.
const (
	KeyNoteContent = "note_content"
	KeyTheme       = "theme"

	// ThemeDark is the only recognized theme value; anything else,
	// including a missing key or ThemeLight, means light.
	ThemeDark  = "dark"
	ThemeLight = "light"

	// MaxContentLen caps the note text, enforced at the input boundary.
	MaxContentLen = 5000
)

// Store is the settings port. The UI never touches a concrete backend
// directly; tests inject Memory, the app wires SQLite.
type Store interface {
	// Get returns the stored value for key, or ok=false when absent.
	Get(key string) (value string, ok bool)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}

// ClampContent truncates s to MaxContentLen characters.
func ClampContent(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxContentLen {
		return s
	}
	return string(runes[:MaxContentLen])
}

// Memory is an in-memory Store used by tests and as a fallback when no
// settings database can be opened.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
