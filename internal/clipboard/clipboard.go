// Package clipboard models the clipboard as an external collaborator
// of the editing core: an opaque get/set text service.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard is the service the editor consumes. A failed or empty read
// is "no text available", not an error.
type Clipboard interface {
	// Read returns the clipboard text and whether any text was available.
	Read() (string, bool)
	// Write replaces the clipboard contents.
	Write(text string) error
}

// System is the OS clipboard.
type System struct{}

// Read returns the system clipboard text, or ok=false when the
// clipboard is empty or unavailable (e.g. no display server).
func (System) Read() (string, bool) {
	text, err := clipboard.ReadAll()
	if err != nil || text == "" {
		return "", false
	}
	return text, true
}

// Write copies text to the system clipboard.
func (System) Write(text string) error {
	return clipboard.WriteAll(text)
}

// Memory is an in-process clipboard used in tests and as a fallback for
// terminals without clipboard access.
type Memory struct {
	mu   sync.Mutex
	text string
	set  bool
}

// NewMemory returns an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns the stored text. ok is false until the first Write.
func (m *Memory) Read() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set || m.text == "" {
		return "", false
	}
	return m.text, true
}

// Write stores text.
func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.set = true
	return nil
}
