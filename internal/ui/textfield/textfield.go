// Package textfield provides jot's single-line input field: a bubbletea
// wrapper around the editor core with selection rendering, clickable
// word zones, and clipboard shortcuts.
package textfield

import (
	"regexp"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/jot/internal/clipboard"
	"github.com/zjrosen/jot/internal/editor"
	"github.com/zjrosen/jot/internal/log"
)

// mouseEscapePattern matches SGR mouse tracking sequences that weren't parsed by bubbletea.
// These look like "[<65;87;15M" or "<65;87;15M" (CSI < Pb ; Px ; Py M/m format).
var mouseEscapePattern = regexp.MustCompile(`^\[?<\d+;\d+;\d+[Mm]$`)

func isMouseEscapeSequence(runes []rune) bool {
	if len(runes) < 6 {
		return false
	}
	return mouseEscapePattern.MatchString(string(runes))
}

// SubmitMsg is emitted when the user presses enter. The field does not
// clear itself; the app resets it after recording the text.
type SubmitMsg struct {
	Text string
}

// MovementMsg is emitted when the user presses up or down. The field
// has no lines of its own, so vertical movement is surfaced for the
// app to interpret (history recall).
type MovementMsg struct {
	Movement editor.Movement
}

// Config defines the text field's collaborators and appearance.
type Config struct {
	// ID namespaces the field's bubblezone IDs. Must be unique per field.
	ID string

	// Placeholder is shown dimmed while the field is empty.
	Placeholder string

	// Width is the display width in cells.
	Width int

	// Clipboard backs the copy/paste/cut shortcuts. Nil disables them.
	Clipboard clipboard.Clipboard

	// OnChange is forwarded to the editor core and fires after every
	// text or selection change.
	OnChange func(editor.Change)
}

// signals accumulates editor callbacks fired while a command runs, so
// Update can turn them into bubbletea messages afterward.
type signals struct {
	movements []editor.Movement
}

// Model is a focusable single-line input. The editing semantics live in
// the editor core; this model only decodes terminal input and renders.
type Model struct {
	id          string
	ed          *editor.Editor
	sig         *signals
	focused     bool
	width       int
	placeholder string
}

// New creates a text field with an empty buffer.
func New(cfg Config) Model {
	sig := &signals{}
	ed := editor.New("", editor.Config{
		Clipboard: cfg.Clipboard,
		OnChange:  cfg.OnChange,
		OnMovement: func(mv editor.Movement) {
			sig.movements = append(sig.movements, mv)
		},
	})
	width := cfg.Width
	if width < 1 {
		width = 40
	}
	return Model{
		id:          cfg.ID,
		ed:          ed,
		sig:         sig,
		width:       width,
		placeholder: cfg.Placeholder,
	}
}

// Value returns the current text.
func (m Model) Value() string {
	return m.ed.Text()
}

// SetValue replaces the text, placing the caret at the end.
func (m Model) SetValue(v string) {
	m.ed.SetText(v)
}

// Selection returns the current selection range.
func (m Model) Selection() editor.Range {
	return m.ed.Selection()
}

// Reset clears the field.
func (m Model) Reset() {
	m.ed.Reset()
}

// SelectAll selects the whole text.
func (m Model) SelectAll() {
	m.ed.SelectAll()
}

// Copy writes the selected text to the clipboard.
func (m Model) Copy() {
	m.ed.Copy()
}

// Focused returns whether the field is focused.
func (m Model) Focused() bool {
	return m.focused
}

// Focus focuses the field.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes focus from the field.
func (m *Model) Blur() {
	m.focused = false
}

// SetWidth sets the display width.
func (m *Model) SetWidth(w int) {
	if w < 1 {
		w = 1
	}
	m.width = w
}

// Width returns the display width.
func (m Model) Width() int {
	return m.width
}

// SetPlaceholder sets the placeholder text.
func (m *Model) SetPlaceholder(p string) {
	m.placeholder = p
}

// Update handles key messages. Mouse messages are routed separately
// through HandleMouse by the app, after zone scanning.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyRunes:
		if isMouseEscapeSequence(keyMsg.Runes) {
			return m, nil
		}
		m.ed.InsertText(string(keyMsg.Runes))
	case tea.KeySpace:
		m.ed.InsertText(" ")
	case tea.KeyLeft:
		m.ed.MoveLeft()
	case tea.KeyRight:
		m.ed.MoveRight()
	case tea.KeyUp:
		m.ed.RequestMovement(editor.Up)
	case tea.KeyDown:
		m.ed.RequestMovement(editor.Down)
	case tea.KeyBackspace:
		m.ed.Backspace()
	case tea.KeyEnter:
		if keyMsg.Alt {
			m.ed.InsertNewline()
			return m, m.drainSignals()
		}
		text := m.ed.Text()
		return m, tea.Batch(m.drainSignals(), func() tea.Msg {
			return SubmitMsg{Text: text}
		})
	case tea.KeyCtrlA:
		m.ed.SelectAll()
	case tea.KeyCtrlC:
		m.ed.Copy()
	case tea.KeyCtrlV:
		m.ed.Paste()
	case tea.KeyCtrlX:
		m.ed.Cut()
	default:
		log.Debug(log.CatInput, "unhandled key", "key", keyMsg.String())
	}

	return m, m.drainSignals()
}

// HandleMouse resolves a click against the field's zones: a click on a
// word feeds the multi-click escalation, a click elsewhere in the field
// places the caret at the clicked column.
func (m Model) HandleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	words := m.ed.WordRanges()
	for i := range words {
		if z := zone.Get(m.wordZoneID(i)); z != nil && z.InBounds(msg) {
			m.ed.ClickWord(i)
			return m, m.drainSignals()
		}
	}

	if z := zone.Get(m.fieldZoneID()); z != nil && z.InBounds(msg) {
		cell := msg.X - z.StartX
		m.ed.SetCaret(byteOffsetForCell(m.ed.Text(), cell))
		return m, m.drainSignals()
	}

	return m, nil
}

// drainSignals converts movement requests captured from the editor into
// bubbletea messages.
func (m Model) drainSignals() tea.Cmd {
	if len(m.sig.movements) == 0 {
		return nil
	}
	pending := m.sig.movements
	m.sig.movements = nil
	cmds := make([]tea.Cmd, 0, len(pending))
	for _, mv := range pending {
		cmds = append(cmds, func() tea.Msg {
			return MovementMsg{Movement: mv}
		})
	}
	return tea.Batch(cmds...)
}
