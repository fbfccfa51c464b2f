package cursor

import "fmt"

// Position is a row/column location in a buffer.
// Position is an immutable value type.
//
// Col may legally equal the current line length: that "past last
// character" position is used in normal mode on empty lines and by
// end-of-line insertion.
type Position struct {
	Row int
	Col int
}

// Dimensions describes the buffer geometry a position is clamped
// against. *buffer.Buffer satisfies it.
type Dimensions interface {
	LineCount() int
	LineLen(row int) int
}

// Clamp returns the position constrained to
// [0, lineCount-1] x [0, lineLen(row)].
func (p Position) Clamp(d Dimensions) Position {
	if p.Row < 0 {
		p.Row = 0
	}
	if last := d.LineCount() - 1; p.Row > last {
		p.Row = last
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if max := d.LineLen(p.Row); p.Col > max {
		p.Col = max
	}
	return p
}

// Before returns true if p precedes other in document order.
func (p Position) Before(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// Equals returns true if both positions are identical.
func (p Position) Equals(other Position) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
