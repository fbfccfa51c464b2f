package buffer

import "strings"

// Buffer is an ordered sequence of text lines.
//
// It holds at least one line at all times: replacing content with the
// empty string yields a single empty line, matching the invariant the
// interpreter relies on. Lines are stored as rune slices so column
// arithmetic is per character, not per byte.
//
// Buffer is not safe for concurrent use; the interpreter has exactly
// one writer and no concurrent readers during mutation.
type Buffer struct {
	lines [][]rune
}

// New creates a buffer from initial content.
// Content is split on '\n'; empty content yields one empty line.
func New(content string) *Buffer {
	b := &Buffer{}
	b.SetContent(content)
	return b
}

// LineCount returns the number of lines. Always >= 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of the given row.
func (b *Buffer) Line(row int) string {
	return string(b.lines[row])
}

// LineRunes returns the rune slice backing the given row.
// Callers must not mutate the result.
func (b *Buffer) LineRunes(row int) []rune {
	return b.lines[row]
}

// LineLen returns the length of the given row in runes.
func (b *Buffer) LineLen(row int) int {
	return len(b.lines[row])
}

// SetLine replaces the text of the given row.
func (b *Buffer) SetLine(row int, text string) {
	b.lines[row] = []rune(text)
}

// InsertLineBefore inserts a new line above the given row.
func (b *Buffer) InsertLineBefore(row int, text string) {
	b.lines = append(b.lines, nil)
	copy(b.lines[row+1:], b.lines[row:])
	b.lines[row] = []rune(text)
}

// InsertLineAfter inserts a new line below the given row.
func (b *Buffer) InsertLineAfter(row int, text string) {
	b.InsertLineBefore(row+1, text)
}

// RemoveLine removes the given row. The caller is responsible for
// keeping the buffer non-empty; operator code restores a single empty
// line when a delete would empty the buffer.
func (b *Buffer) RemoveLine(row int) {
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
}

// Content returns all lines joined by '\n'.
func (b *Buffer) Content() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// SetContent replaces all lines with the given text split on '\n'.
// Never yields zero lines: strings.Split("") returns one empty element.
func (b *Buffer) SetContent(text string) {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	b.lines = lines
}
