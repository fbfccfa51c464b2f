package editor

import (
	"strings"

	"github.com/dshills/modal/internal/engine/cursor"
	"github.com/dshills/modal/internal/input/vim"
)

// applyOperator runs a delete or yank over a motion-derived range.
func applyOperator(st *State, reg *vim.Register, op vim.Operator, rng vim.Range) {
	if rng.Linewise {
		if op == vim.OpDelete {
			deleteLineRange(st, reg, rng.StartRow, rng.EndRow)
		} else {
			yankLineRange(st, reg, rng.StartRow, rng.EndRow)
		}
		return
	}
	if op == vim.OpDelete {
		deleteCharRange(st, reg, rng.Row, rng.StartCol, rng.EndCol)
	} else {
		yankCharRange(st, reg, rng.Row, rng.StartCol, rng.EndCol)
	}
}

// clampRows intersects an inclusive row span with the buffer.
func clampRows(st *State, start, end int) (int, int) {
	last := st.LineCount() - 1
	if start < 0 {
		start = 0
	}
	if end > last {
		end = last
	}
	return start, end
}

// yankLineRange copies rows [start, end] into the register as linewise
// content. The cursor does not move.
func yankLineRange(st *State, reg *vim.Register, start, end int) {
	start, end = clampRows(st, start, end)
	if start > end {
		return
	}
	lines := make([]string, 0, end-start+1)
	for row := start; row <= end; row++ {
		lines = append(lines, st.Buffer().Line(row))
	}
	reg.SetLinewise(lines)
}

// deleteLineRange removes rows [start, end], yanking them first. A
// delete that would empty the buffer leaves one empty line instead.
// The cursor snaps to the start row, column preserved but reclamped.
func deleteLineRange(st *State, reg *vim.Register, start, end int) {
	start, end = clampRows(st, start, end)
	if start > end {
		return
	}
	yankLineRange(st, reg, start, end)

	buf := st.Buffer()
	for row := end; row >= start; row-- {
		buf.RemoveLine(row)
	}
	if buf.LineCount() == 0 {
		buf.SetContent("")
	}

	pos := st.Cursor()
	pos.Row = start
	st.SetCursor(pos)
	st.ClampCursor()
}

// clampCols intersects a half-open column span with [0, lineLen].
func clampCols(st *State, row, start, end int) (int, int) {
	max := st.LineLen(row)
	if start < 0 {
		start = 0
	}
	if end > max {
		end = max
	}
	return start, end
}

// yankCharRange copies [start, end) on one row into the register as
// charwise content. Empty ranges leave the register untouched.
func yankCharRange(st *State, reg *vim.Register, row, start, end int) {
	start, end = clampCols(st, row, start, end)
	if start >= end {
		return
	}
	reg.Set(string(st.Buffer().LineRunes(row)[start:end]))
}

// deleteCharRange splices [start, end) out of one row, yanking the
// slice first. The cursor lands at the clamped start column.
func deleteCharRange(st *State, reg *vim.Register, row, start, end int) {
	start, end = clampCols(st, row, start, end)
	if start >= end {
		return
	}
	runes := st.Buffer().LineRunes(row)
	reg.Set(string(runes[start:end]))

	rest := make([]rune, 0, len(runes)-(end-start))
	rest = append(rest, runes[:start]...)
	rest = append(rest, runes[end:]...)
	st.Buffer().SetLine(row, string(rest))

	st.SetCursor(cursor.Position{Row: row, Col: start})
	st.ClampCursor()
}

// selectionSpan normalizes the active selection against the live
// cursor, clamping the exclusive end column to the end line.
func selectionSpan(st *State) (cursor.Span, bool) {
	sel := st.Selection()
	if sel == nil {
		return cursor.Span{}, false
	}
	span := sel.CharSpan(st.Cursor())
	if max := st.LineLen(span.EndRow); span.EndCol > max {
		span.EndCol = max
	}
	return span, true
}

// selectionText walks a normalized character span: a same-row slice,
// or head-line tail + middle lines + end-line head joined by newlines.
func selectionText(st *State, span cursor.Span) string {
	buf := st.Buffer()
	if span.SingleRow() {
		return string(buf.LineRunes(span.StartRow)[span.StartCol:span.EndCol])
	}
	var sb strings.Builder
	sb.WriteString(string(buf.LineRunes(span.StartRow)[span.StartCol:]))
	for row := span.StartRow + 1; row < span.EndRow; row++ {
		sb.WriteByte('\n')
		sb.WriteString(buf.Line(row))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(buf.LineRunes(span.EndRow)[:span.EndCol]))
	return sb.String()
}

// yankSelection copies the active selection into the register and
// moves the cursor to its start.
func yankSelection(st *State, reg *vim.Register) {
	sel := st.Selection()
	if sel == nil {
		return
	}
	if sel.Type == cursor.SelectionLine {
		span := sel.LineSpan(st.Cursor())
		yankLineRange(st, reg, span.StartRow, span.EndRow)
		st.SetCursor(cursor.Position{Row: span.StartRow, Col: st.Cursor().Col})
		st.ClampCursor()
		return
	}
	span, ok := selectionSpan(st)
	if !ok {
		return
	}
	reg.Set(selectionText(st, span))
	st.SetCursor(cursor.Position{Row: span.StartRow, Col: span.StartCol})
	st.ClampCursor()
}

// deleteSelection removes the active selection, yanking it first.
// Multi-row character deletes splice the tail of the end line onto the
// head of the start line.
func deleteSelection(st *State, reg *vim.Register) {
	sel := st.Selection()
	if sel == nil {
		return
	}
	if sel.Type == cursor.SelectionLine {
		span := sel.LineSpan(st.Cursor())
		deleteLineRange(st, reg, span.StartRow, span.EndRow)
		return
	}
	span, ok := selectionSpan(st)
	if !ok {
		return
	}
	if span.SingleRow() {
		deleteCharRange(st, reg, span.StartRow, span.StartCol, span.EndCol)
		return
	}
	reg.Set(selectionText(st, span))

	buf := st.Buffer()
	head := buf.LineRunes(span.StartRow)[:span.StartCol]
	tail := buf.LineRunes(span.EndRow)[span.EndCol:]
	joined := make([]rune, 0, len(head)+len(tail))
	joined = append(joined, head...)
	joined = append(joined, tail...)
	for row := span.EndRow; row > span.StartRow; row-- {
		buf.RemoveLine(row)
	}
	buf.SetLine(span.StartRow, string(joined))

	st.SetCursor(cursor.Position{Row: span.StartRow, Col: span.StartCol})
	st.ClampCursor()
}

// paste inserts register content at the cursor. Linewise content goes
// in as whole lines before or after the current row; charwise content
// splices into the current line, with embedded newlines splitting the
// insertion across new lines.
func paste(st *State, reg *vim.Register, before bool) {
	if reg.IsEmpty() {
		return
	}
	buf := st.Buffer()
	pos := st.Cursor()

	if reg.IsLinewise() {
		lines := reg.Lines()
		if before {
			for i, line := range lines {
				buf.InsertLineBefore(pos.Row+i, line)
			}
			st.SetCursor(cursor.Position{Row: pos.Row + len(lines) - 1, Col: 0})
		} else {
			for i, line := range lines {
				buf.InsertLineAfter(pos.Row+i, line)
			}
			st.SetCursor(cursor.Position{Row: pos.Row + len(lines), Col: 0})
		}
		st.ClampCursor()
		return
	}

	at := pos.Col
	if !before {
		at++
	}
	if max := buf.LineLen(pos.Row); at > max {
		at = max
	}

	runes := buf.LineRunes(pos.Row)
	head := string(runes[:at])
	tail := string(runes[at:])
	parts := strings.Split(reg.Get(), "\n")

	if len(parts) == 1 {
		buf.SetLine(pos.Row, head+parts[0]+tail)
		st.SetCursor(cursor.Position{Row: pos.Row, Col: at + len([]rune(parts[0])) - 1})
		st.ClampCursor()
		return
	}

	buf.SetLine(pos.Row, head+parts[0])
	last := len(parts) - 1
	for i := 1; i < last; i++ {
		buf.InsertLineAfter(pos.Row+i-1, parts[i])
	}
	buf.InsertLineAfter(pos.Row+last-1, parts[last]+tail)
	st.SetCursor(cursor.Position{
		Row: pos.Row + last,
		Col: len([]rune(parts[last])) - 1,
	})
	st.ClampCursor()
}
