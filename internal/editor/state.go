package editor

import (
	"github.com/dshills/modal/internal/engine/buffer"
	"github.com/dshills/modal/internal/engine/cursor"
	"github.com/dshills/modal/internal/engine/history"
)

// State is the mutable editor state a controller owns: mode, cursor,
// buffer, and visual selection. It is created once at controller
// construction and mutated in place for the controller's lifetime.
type State struct {
	mode      Mode
	pos       cursor.Position
	buf       *buffer.Buffer
	selection *cursor.Selection
}

// NewState creates editor state over the given initial content, in
// normal mode with the cursor at the origin.
func NewState(content string) *State {
	return &State{buf: buffer.New(content)}
}

// Mode returns the current mode.
func (s *State) Mode() Mode {
	return s.mode
}

// SetMode switches the current mode.
func (s *State) SetMode(m Mode) {
	s.mode = m
}

// Cursor returns the cursor position.
func (s *State) Cursor() cursor.Position {
	return s.pos
}

// SetCursor moves the cursor without clamping. Callers that may land
// out of bounds follow up with ClampCursor.
func (s *State) SetCursor(p cursor.Position) {
	s.pos = p
}

// ClampCursor constrains the cursor to the buffer.
func (s *State) ClampCursor() {
	s.pos = s.pos.Clamp(s.buf)
}

// Buffer returns the underlying line buffer.
func (s *State) Buffer() *buffer.Buffer {
	return s.buf
}

// LineCount returns the buffer's line count.
func (s *State) LineCount() int {
	return s.buf.LineCount()
}

// LineLen returns the rune length of the given row.
func (s *State) LineLen(row int) int {
	return s.buf.LineLen(row)
}

// Content returns the full buffer text.
func (s *State) Content() string {
	return s.buf.Content()
}

// Selection returns the active selection, nil outside visual mode.
func (s *State) Selection() *cursor.Selection {
	return s.selection
}

// StartSelection anchors a new selection at the cursor.
func (s *State) StartSelection(t cursor.SelectionType) {
	s.selection = &cursor.Selection{Type: t, Anchor: s.pos}
}

// ClearSelection drops any active selection.
func (s *State) ClearSelection() {
	s.selection = nil
}

// Snapshot captures the full state as an immutable value.
func (s *State) Snapshot() history.Snapshot {
	snap := history.Snapshot{
		Content: s.buf.Content(),
		Cursor:  s.pos,
		Mode:    s.mode.String(),
	}
	if s.selection != nil {
		sel := *s.selection
		snap.Selection = &sel
	}
	return snap
}

// Restore replaces buffer content, cursor, mode, and selection from a
// snapshot, clamping the cursor against the restored content.
func (s *State) Restore(snap history.Snapshot) {
	s.buf.SetContent(snap.Content)
	s.pos = snap.Cursor.Clamp(s.buf)
	s.mode = ModeFromString(snap.Mode)
	if snap.Selection != nil {
		sel := *snap.Selection
		s.selection = &sel
	} else {
		s.selection = nil
	}
}
