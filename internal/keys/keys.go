// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application. Editing keys are
// decoded inside the text field; these are the app-level bindings and
// the entries surfaced in the help footer.
type KeyMap struct {
	// Editing (handled by the field, listed here for help)
	Submit    key.Binding
	Newline   key.Binding
	SelectAll key.Binding
	Copy      key.Binding
	Paste     key.Binding
	Cut       key.Binding

	// History recall
	RecallPrev key.Binding
	RecallNext key.Binding

	// General
	ToggleHelp key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Newline: key.NewBinding(
			key.WithKeys("alt+enter"),
			key.WithHelp("alt+enter", "newline"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "select all"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "copy"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste"),
		),
		Cut: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "cut"),
		),
		RecallPrev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "older entry"),
		),
		RecallNext: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "newer entry"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+q"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// HelpBindings returns the bindings shown in the footer, in order.
func (k KeyMap) HelpBindings() []key.Binding {
	return []key.Binding{
		k.Submit,
		k.RecallPrev,
		k.SelectAll,
		k.Copy,
		k.Paste,
		k.Cut,
		k.Quit,
	}
}
