package vim

import "github.com/dshills/modal/internal/engine/cursor"

// State is the view of editor state a motion needs: the cursor plus
// buffer geometry. *editor.State satisfies it.
type State interface {
	Cursor() cursor.Position
	SetCursor(p cursor.Position)
	LineCount() int
	LineLen(row int) int
}

// Range is the text range an operator consumes. Linewise ranges are
// inclusive row spans; charwise ranges are half-open column spans on a
// single row. Raw ranges may exceed buffer bounds; the operator engine
// clamps them.
type Range struct {
	// Linewise selects between the two representations.
	Linewise bool

	// StartRow/EndRow bound a linewise range, both inclusive.
	StartRow int
	EndRow   int

	// Row, StartCol, EndCol describe a charwise range [StartCol, EndCol).
	Row      int
	StartCol int
	EndCol   int
}

// LineRange builds a linewise range over [start, end].
func LineRange(start, end int) Range {
	return Range{Linewise: true, StartRow: start, EndRow: end}
}

// CharRange builds a charwise range [startCol, endCol) on row.
func CharRange(row, startCol, endCol int) Range {
	return Range{Row: row, StartCol: startCol, EndCol: endCol}
}

// Motion is a named cursor movement with two duals: a cursor-mutating
// step and a pure range computation used only by operators. The two
// need not agree; '$' moves one column short of the range it yields so
// operators reach the true final character.
type Motion struct {
	// Name is the motion identifier.
	Name string

	// Key is the encoded key that triggers this motion.
	Key string

	// Move mutates the cursor. Counts below 1 are treated as 1, and
	// results are clamped to buffer bounds rather than rejected.
	Move func(st State, count int)

	// Span computes the operator range. Pure: never touches the
	// cursor, independent of what Move would do.
	Span func(st State, count int) Range
}

// Standard motions.
var (
	// MotionLeft moves the cursor left.
	MotionLeft = Motion{
		Name: "left",
		Key:  "h",
		Move: func(st State, count int) {
			p := st.Cursor()
			p.Col -= effective(count)
			if p.Col < 0 {
				p.Col = 0
			}
			st.SetCursor(p)
		},
		Span: func(st State, count int) Range {
			p := st.Cursor()
			return CharRange(p.Row, p.Col-effective(count), p.Col)
		},
	}

	// MotionRight moves the cursor right.
	MotionRight = Motion{
		Name: "right",
		Key:  "l",
		Move: func(st State, count int) {
			p := st.Cursor()
			p.Col += effective(count)
			if max := st.LineLen(p.Row); p.Col > max {
				p.Col = max
			}
			st.SetCursor(p)
		},
		Span: func(st State, count int) Range {
			p := st.Cursor()
			return CharRange(p.Row, p.Col, p.Col+effective(count))
		},
	}

	// MotionDown moves the cursor down; its operator range covers
	// count lines starting at the cursor row.
	MotionDown = Motion{
		Name: "down",
		Key:  "j",
		Move: func(st State, count int) {
			p := st.Cursor()
			p.Row += effective(count)
			if last := st.LineCount() - 1; p.Row > last {
				p.Row = last
			}
			if max := st.LineLen(p.Row); p.Col > max {
				p.Col = max
			}
			st.SetCursor(p)
		},
		Span: func(st State, count int) Range {
			p := st.Cursor()
			return LineRange(p.Row, p.Row+effective(count)-1)
		},
	}

	// MotionUp moves the cursor up; its operator range covers count
	// lines ending at the cursor row.
	MotionUp = Motion{
		Name: "up",
		Key:  "k",
		Move: func(st State, count int) {
			p := st.Cursor()
			p.Row -= effective(count)
			if p.Row < 0 {
				p.Row = 0
			}
			if max := st.LineLen(p.Row); p.Col > max {
				p.Col = max
			}
			st.SetCursor(p)
		},
		Span: func(st State, count int) Range {
			p := st.Cursor()
			return LineRange(p.Row-(effective(count)-1), p.Row)
		},
	}

	// MotionLineStart moves to column 0.
	MotionLineStart = Motion{
		Name: "lineStart",
		Key:  "0",
		Move: func(st State, count int) {
			p := st.Cursor()
			p.Col = 0
			st.SetCursor(p)
		},
		Span: func(st State, count int) Range {
			p := st.Cursor()
			return CharRange(p.Row, 0, p.Col)
		},
	}

	// MotionLineEnd moves to the last character of the line. Its
	// range deliberately extends one past the landing column so
	// operators delete through the true end of line.
	MotionLineEnd = Motion{
		Name: "lineEnd",
		Key:  "$",
		Move: func(st State, count int) {
			p := st.Cursor()
			p.Col = st.LineLen(p.Row) - 1
			if p.Col < 0 {
				p.Col = 0
			}
			st.SetCursor(p)
		},
		Span: func(st State, count int) Range {
			p := st.Cursor()
			return CharRange(p.Row, p.Col, st.LineLen(p.Row))
		},
	}
)

// motions maps encoded keys to motion definitions. Built once; the
// resolvers never mutate it.
var motions = map[string]*Motion{
	"h": &MotionLeft,
	"l": &MotionRight,
	"j": &MotionDown,
	"k": &MotionUp,
	"0": &MotionLineStart,
	"$": &MotionLineEnd,
}

// GetMotion returns the motion bound to the encoded key, or nil.
func GetMotion(key string) *Motion {
	return motions[key]
}

// MotionKeys returns the encoded keys of all motions.
func MotionKeys() []string {
	keys := make([]string, 0, len(motions))
	for k := range motions {
		keys = append(keys, k)
	}
	return keys
}

// effective floors a count at 1.
func effective(count int) int {
	if count < 1 {
		return 1
	}
	return count
}
