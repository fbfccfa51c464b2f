package editor

// Mode is the editor's current input mode.
type Mode int

const (
	// ModeNormal is the command mode keys resolve in by default.
	ModeNormal Mode = iota
	// ModeInsert passes printable keys through as text.
	ModeInsert
	// ModeVisual selects a character range between anchor and cursor.
	ModeVisual
	// ModeVisualLine selects whole lines between anchor and cursor.
	ModeVisualLine
)

// String returns the mode's display name.
func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "insert"
	case ModeVisual:
		return "visual"
	case ModeVisualLine:
		return "visual-line"
	default:
		return "normal"
	}
}

// ModeFromString parses a mode name, defaulting to normal.
func ModeFromString(s string) Mode {
	switch s {
	case "insert":
		return ModeInsert
	case "visual":
		return ModeVisual
	case "visual-line":
		return ModeVisualLine
	default:
		return ModeNormal
	}
}

// IsVisual reports whether the mode holds a selection.
func (m Mode) IsVisual() bool {
	return m == ModeVisual || m == ModeVisualLine
}
