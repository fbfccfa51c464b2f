// Package renderer paints the editor on a terminal screen with tcell.
// It polls the controller's observables after each event; the core
// never pushes to it.
package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/modal/internal/editor"
	"github.com/dshills/modal/internal/engine/cursor"
	"github.com/dshills/modal/internal/input/key"
)

var (
	styleDefault   = tcell.StyleDefault
	styleSelection = tcell.StyleDefault.Reverse(true)
	styleStatus    = tcell.StyleDefault.Bold(true)
)

// Renderer draws buffer text, selection highlight, a status line, and
// the hardware cursor.
type Renderer struct {
	screen tcell.Screen
}

// New creates a renderer on the real terminal.
func New() (*Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Renderer{screen: screen}, nil
}

// NewWithScreen creates a renderer on a supplied screen, used with
// tcell's simulation screen in tests.
func NewWithScreen(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Init initializes the screen.
func (r *Renderer) Init() error {
	return r.screen.Init()
}

// Close releases the terminal.
func (r *Renderer) Close() {
	r.screen.Fini()
}

// Draw repaints the whole view from the controller's observables.
func (r *Renderer) Draw(c *editor.Controller) {
	r.screen.Clear()
	width, height := r.screen.Size()
	if height < 2 {
		r.screen.Show()
		return
	}

	lines := splitLines(c.Content())
	sel := c.Selection()
	textRows := height - 1

	for row := 0; row < textRows && row < len(lines); row++ {
		x := 0
		for col, ch := range []rune(lines[row]) {
			if x >= width {
				break
			}
			style := styleDefault
			if selectionCovers(sel, row, col) {
				style = styleSelection
			}
			r.screen.SetContent(x, row, ch, nil, style)
			x += runewidth.RuneWidth(ch)
		}
	}

	r.drawStatus(c, width, height-1)
	r.placeCursor(c, lines)
	r.screen.Show()
}

// drawStatus paints the bottom status line: mode and cursor position.
func (r *Renderer) drawStatus(c *editor.Controller, width, y int) {
	pos := c.CursorPosition()
	status := fmt.Sprintf(" %s  %d:%d ", c.Mode(), pos.Row+1, pos.Col+1)
	x := 0
	for _, ch := range status {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, styleStatus)
		x += runewidth.RuneWidth(ch)
	}
}

// placeCursor positions the hardware cursor, accounting for wide runes
// before the cursor column.
func (r *Renderer) placeCursor(c *editor.Controller, lines []string) {
	pos := c.CursorPosition()
	x := 0
	if pos.Row < len(lines) {
		line := []rune(lines[pos.Row])
		for col := 0; col < pos.Col && col < len(line); col++ {
			x += runewidth.RuneWidth(line[col])
		}
	}
	r.screen.ShowCursor(x, pos.Row)
}

// Run polls terminal events, forwarding key events to onKey until it
// returns true, and redrawing after every event.
func (r *Renderer) Run(c *editor.Controller, onKey func(key.Event) bool) {
	r.Draw(c)
	for {
		switch ev := r.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if onKey(KeyEventFrom(ev)) {
				return
			}
			r.Draw(c)
		case *tcell.EventResize:
			r.screen.Sync()
			r.Draw(c)
		case nil:
			return
		}
	}
}

// selectionCovers reports whether the cell at (row, col) lies inside
// the active selection.
func selectionCovers(sel *editor.SelectionView, row, col int) bool {
	if sel == nil {
		return false
	}
	if sel.Type == cursor.SelectionLine {
		span := (cursor.Selection{Type: sel.Type, Anchor: sel.Anchor}).LineSpan(sel.Head)
		return row >= span.StartRow && row <= span.EndRow
	}
	span := (cursor.Selection{Type: sel.Type, Anchor: sel.Anchor}).CharSpan(sel.Head)
	if row < span.StartRow || row > span.EndRow {
		return false
	}
	if row == span.StartRow && col < span.StartCol {
		return false
	}
	if row == span.EndRow && col >= span.EndCol {
		return false
	}
	return true
}

func splitLines(content string) []string {
	lines := []string{}
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, content[start:i])
			start = i + 1
		}
	}
	return append(lines, content[start:])
}
