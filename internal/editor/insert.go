package editor

import (
	"github.com/dshills/modal/internal/engine/cursor"
	"github.com/dshills/modal/internal/input/vim"
)

// placeInsert positions the cursor for an insert-mode entry. The o and
// O placements open a new empty line; the buffer change belongs to the
// compound session already opened by the caller.
func placeInsert(st *State, p vim.InsertPlacement) {
	pos := st.Cursor()
	buf := st.Buffer()

	switch p {
	case vim.PlaceAtLineStart:
		pos.Col = 0
	case vim.PlaceAfterCursor:
		pos.Col++
	case vim.PlaceAtLineEnd:
		pos.Col = buf.LineLen(pos.Row)
	case vim.PlaceLineBelow:
		buf.InsertLineAfter(pos.Row, "")
		pos = cursor.Position{Row: pos.Row + 1, Col: 0}
	case vim.PlaceLineAbove:
		buf.InsertLineBefore(pos.Row, "")
		pos = cursor.Position{Row: pos.Row, Col: 0}
	}

	st.SetCursor(pos)
	st.ClampCursor()
}

// insertRune types one character at the cursor.
func insertRune(st *State, r rune) {
	pos := st.Cursor()
	line := st.Buffer().LineRunes(pos.Row)

	out := make([]rune, 0, len(line)+1)
	out = append(out, line[:pos.Col]...)
	out = append(out, r)
	out = append(out, line[pos.Col:]...)
	st.Buffer().SetLine(pos.Row, string(out))

	pos.Col++
	st.SetCursor(pos)
}

// insertNewline splits the current line at the cursor.
func insertNewline(st *State) {
	pos := st.Cursor()
	buf := st.Buffer()
	line := buf.LineRunes(pos.Row)

	head := string(line[:pos.Col])
	tail := string(line[pos.Col:])
	buf.SetLine(pos.Row, head)
	buf.InsertLineAfter(pos.Row, tail)

	st.SetCursor(cursor.Position{Row: pos.Row + 1, Col: 0})
}

// deleteBack removes the character before the cursor, joining with the
// previous line at column 0. At the very start of the buffer it does
// nothing.
func deleteBack(st *State) {
	pos := st.Cursor()
	buf := st.Buffer()

	if pos.Col > 0 {
		line := buf.LineRunes(pos.Row)
		out := make([]rune, 0, len(line)-1)
		out = append(out, line[:pos.Col-1]...)
		out = append(out, line[pos.Col:]...)
		buf.SetLine(pos.Row, string(out))
		pos.Col--
		st.SetCursor(pos)
		return
	}
	if pos.Row == 0 {
		return
	}

	prevLen := buf.LineLen(pos.Row - 1)
	joined := buf.Line(pos.Row-1) + buf.Line(pos.Row)
	buf.SetLine(pos.Row-1, joined)
	buf.RemoveLine(pos.Row)
	st.SetCursor(cursor.Position{Row: pos.Row - 1, Col: prevLen})
}
