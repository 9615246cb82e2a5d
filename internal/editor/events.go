package editor

// Direction identifies a vertical movement request. The editor owns a
// single line of text, so line navigation is delegated to the host:
// the editor only reports that the user asked to move.
type Direction int

const (
	// Up requests movement to whatever the host considers "above" the
	// field (previous history entry, previous widget, ...).
	Up Direction = iota
	// Down is the mirror of Up.
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Change is delivered to the host after every command that may alter
// the text or the selection. It carries the complete state so the host
// can re-render without reaching back into the editor.
type Change struct {
	Text      string
	Selection Range
}

// Movement is delivered to the host when the user requests vertical
// movement. The editor state is unchanged.
type Movement struct {
	Direction Direction
}
