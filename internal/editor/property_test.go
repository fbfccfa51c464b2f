package editor

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/modal/internal/engine/cursor"
	"github.com/dshills/modal/internal/input/vim"
)

func drawLines(t *rapid.T) []string {
	return rapid.SliceOfN(rapid.StringMatching(`[a-z]{0,8}`), 1, 6).Draw(t, "lines")
}

func TestHorizontalMotionInversion(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line := rapid.StringMatching(`[a-z]{1,12}`).Draw(t, "line")
		st := NewState(line)
		col := rapid.IntRange(0, len(line)).Draw(t, "col")
		st.SetCursor(cursor.Position{Row: 0, Col: col})
		n := rapid.IntRange(1, 5).Draw(t, "count")

		if col+n > len(line) {
			t.Skip("right motion would clamp")
		}
		vim.MotionRight.Move(st, n)
		vim.MotionLeft.Move(st, n)
		if got := st.Cursor().Col; got != col {
			t.Fatalf("l%d h%d moved col %d -> %d", n, n, col, got)
		}
	})
}

func TestVerticalMotionInversion(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		// Equal line lengths keep the column re-clamp out of play.
		width := rapid.IntRange(0, 6).Draw(t, "width")
		rows := rapid.IntRange(1, 8).Draw(t, "rows")
		lines := make([]string, rows)
		for i := range lines {
			lines[i] = strings.Repeat("x", width)
		}
		st := NewState(strings.Join(lines, "\n"))
		row := rapid.IntRange(0, rows-1).Draw(t, "row")
		st.SetCursor(cursor.Position{Row: row, Col: width})
		n := rapid.IntRange(1, 5).Draw(t, "count")

		if row+n > rows-1 {
			t.Skip("down motion would clamp")
		}
		vim.MotionDown.Move(st, n)
		vim.MotionUp.Move(st, n)
		if got := st.Cursor().Row; got != row {
			t.Fatalf("j%d k%d moved row %d -> %d", n, n, row, got)
		}
	})
}

func TestKeySequencesPreserveInvariants(t *testing.T) {
	keys := []string{
		"h", "l", "j", "k", "0", "$",
		"d", "y", "x", "D", "p", "P", "u", "Ctrl+r",
		"v", "V", "Escape", "2", "3",
	}
	rapid.Check(t, func(t *rapid.T) {
		c := NewController(strings.Join(drawLines(t), "\n"))
		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			spec := rapid.SampledFrom(keys).Draw(t, "key")
			if _, err := c.Feed(spec); err != nil {
				t.Fatalf("feed %q: %v", spec, err)
			}

			content := c.Content()
			rows := strings.Split(content, "\n")
			if len(rows) < 1 {
				t.Fatalf("buffer dropped below one line")
			}
			pos := c.CursorPosition()
			if pos.Row < 0 || pos.Row >= len(rows) {
				t.Fatalf("cursor row %d out of %d rows", pos.Row, len(rows))
			}
			if pos.Col < 0 || pos.Col > len([]rune(rows[pos.Row])) {
				t.Fatalf("cursor col %d beyond line %q", pos.Col, rows[pos.Row])
			}
		}
	})
}

func TestUndoRestoresContentAndCursor(t *testing.T) {
	edits := []string{"x", "D", "dd", "dj", "d$"}
	rapid.Check(t, func(t *rapid.T) {
		c := NewController(strings.Join(drawLines(t), "\n"))
		row := rapid.IntRange(0, 9).Draw(t, "row")
		col := rapid.IntRange(0, 9).Draw(t, "col")
		c.state.SetCursor(cursor.Position{Row: row, Col: col})
		c.state.ClampCursor()

		content := c.Content()
		pos := c.CursorPosition()

		edit := rapid.SampledFrom(edits).Draw(t, "edit")
		for _, r := range edit {
			if _, err := c.Feed(string(r)); err != nil {
				t.Fatalf("feed %q: %v", r, err)
			}
		}
		if c.Content() == content {
			t.Skip("edit was a no-op")
		}

		if _, err := c.Feed("u"); err != nil {
			t.Fatalf("feed u: %v", err)
		}
		if got := c.Content(); got != content {
			t.Fatalf("undo restored %q, want %q", got, content)
		}
		if got := c.CursorPosition(); got != pos {
			t.Fatalf("undo restored cursor %v, want %v", got, pos)
		}
	})
}

func TestInsertSessionIsOneUndoEntry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := NewController("seed")
		typed := rapid.StringMatching(`[a-z]{1,10}`).Draw(t, "typed")

		if _, err := c.Feed("i"); err != nil {
			t.Fatalf("feed i: %v", err)
		}
		for _, r := range typed {
			if _, err := c.Feed(string(r)); err != nil {
				t.Fatalf("feed %q: %v", r, err)
			}
		}
		if _, err := c.Feed("Escape"); err != nil {
			t.Fatalf("feed Escape: %v", err)
		}

		if _, err := c.Feed("u"); err != nil {
			t.Fatalf("feed u: %v", err)
		}
		if got := c.Content(); got != "seed" {
			t.Fatalf("one undo left %q, want %q", got, "seed")
		}
		if c.CanUndo() {
			t.Fatalf("session of %d keystrokes recorded more than one entry", len(typed))
		}
	})
}
