package history

import "github.com/dshills/modal/internal/engine/cursor"

// Snapshot is a deep value capture of editor state: full buffer
// content, cursor, mode, and selection. It never references the live
// buffer, which is what keeps undo/redo correct when buffer identity
// changes underneath it.
type Snapshot struct {
	// Content is the full text, lines joined by '\n'.
	Content string

	// Cursor is the cursor position at capture time.
	Cursor cursor.Position

	// Mode is the mode identifier at capture time.
	Mode string

	// Selection is the visual selection at capture time, nil if none.
	Selection *cursor.Selection
}

// clone returns a copy with its own selection value.
func (s Snapshot) clone() Snapshot {
	if s.Selection != nil {
		sel := *s.Selection
		s.Selection = &sel
	}
	return s
}
