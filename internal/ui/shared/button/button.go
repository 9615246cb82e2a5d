// Package button renders zone-marked clickable action buttons.
package button

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/jot/internal/ui/styles"
)

// Variant selects the button's visual weight.
type Variant int

const (
	Primary Variant = iota
	Danger
)

// Model is a stateless clickable label. Click detection uses bubblezone,
// so the app must wrap its final view in zone.Scan.
type Model struct {
	id      string
	label   string
	variant Variant
	focused bool
}

// New creates a button. The id must be unique across the app; it doubles
// as the bubblezone zone ID.
func New(id, label string, variant Variant) Model {
	return Model{id: id, label: label, variant: variant}
}

// Focus highlights the button.
func (m *Model) Focus() { m.focused = true }

// Blur removes the highlight.
func (m *Model) Blur() { m.focused = false }

// Focused returns whether the button is highlighted.
func (m Model) Focused() bool { return m.focused }

// Label returns the button text.
func (m Model) Label() string { return m.label }

// Clicked reports whether the mouse event lands on this button.
func (m Model) Clicked(msg tea.MouseMsg) bool {
	z := zone.Get(m.id)
	return z != nil && z.InBounds(msg)
}

// View renders the button wrapped in its click zone.
func (m Model) View() string {
	style := styles.PrimaryButtonStyle
	switch {
	case m.variant == Danger && m.focused:
		style = styles.DangerButtonFocusedStyle
	case m.variant == Danger:
		style = styles.DangerButtonStyle
	case m.focused:
		style = styles.PrimaryButtonFocusedStyle
	}
	return zone.Mark(m.id, style.Render(m.label))
}
