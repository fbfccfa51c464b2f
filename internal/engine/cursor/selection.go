package cursor

import "fmt"

// SelectionType distinguishes character and line selections.
type SelectionType uint8

const (
	// SelectionCharacter selects a character range.
	SelectionCharacter SelectionType = iota

	// SelectionLine selects whole lines.
	SelectionLine
)

// String returns the selection type name.
func (t SelectionType) String() string {
	if t == SelectionLine {
		return "line"
	}
	return "character"
}

// Selection is a visual-mode selection. Only the anchor is stored;
// the live endpoint is always the current cursor position, so the
// extent is anchor x cursor at query time, never a snapshotted pair.
type Selection struct {
	Type   SelectionType
	Anchor Position
}

// Span is a normalized character range. Rows are in document order;
// EndCol is exclusive and always one past the raw larger endpoint, so
// a selection whose anchor equals its head still covers one character.
type Span struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// SingleRow returns true if the span stays on one row.
func (s Span) SingleRow() bool {
	return s.StartRow == s.EndRow
}

// String returns a string representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)-(%d,%d)", s.StartRow, s.StartCol, s.EndRow, s.EndCol)
}

// LineSpan is a normalized inclusive row range.
type LineSpan struct {
	StartRow int
	EndRow   int
}

// CharSpan normalizes anchor and head, which may be in either document
// order, into an ordered character span.
func (sel Selection) CharSpan(head Position) Span {
	start, end := sel.Anchor, head
	if end.Before(start) {
		start, end = end, start
	}
	return Span{
		StartRow: start.Row,
		StartCol: start.Col,
		EndRow:   end.Row,
		EndCol:   end.Col + 1,
	}
}

// LineSpan normalizes anchor and head rows into an ordered inclusive
// row range.
func (sel Selection) LineSpan(head Position) LineSpan {
	start, end := sel.Anchor.Row, head.Row
	if end < start {
		start, end = end, start
	}
	return LineSpan{StartRow: start, EndRow: end}
}
