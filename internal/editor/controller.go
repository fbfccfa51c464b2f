package editor

import (
	"go.uber.org/zap"

	"github.com/dshills/modal/internal/engine/cursor"
	"github.com/dshills/modal/internal/engine/history"
	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/vim"
)

// Controller is the dispatcher at the center of the interpreter. It
// owns the editor state, routes each key event to the resolver for the
// current mode, decides whether execution is wrapped in an undo
// snapshot or a compound insert session, runs the resolved command,
// and clamps the cursor before returning.
//
// Controller is single-threaded: HandleKey fully resolves one event
// before the next may be processed, and nothing here blocks.
type Controller struct {
	state   *State
	history *history.History
	reg     *vim.Register
	normal  *vim.NormalResolver
	visual  *vim.VisualResolver
	remaps  map[Mode]map[string]key.Event
	log     *zap.Logger
}

// Option configures a controller.
type Option func(*Controller)

// WithLogger sets the structured logger. Defaults to a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// WithHistoryLimit caps the undo stack depth.
func WithHistoryLimit(n int) Option {
	return func(c *Controller) { c.history = history.New(n) }
}

// NewController creates a controller over the given initial content,
// starting in normal mode with the cursor at the origin.
func NewController(content string, opts ...Option) *Controller {
	c := &Controller{
		state:   NewState(content),
		history: history.New(0),
		reg:     vim.NewRegister(),
		normal:  vim.NewNormalResolver(),
		visual:  vim.NewVisualResolver(),
		remaps:  make(map[Mode]map[string]key.Event),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Remap translates one key to another within a mode, before
// resolution. Visual remaps cover both character and line visual.
func (c *Controller) Remap(m Mode, from, to string) error {
	ev, err := key.Parse(to)
	if err != nil {
		return err
	}
	if m == ModeVisualLine {
		m = ModeVisual
	}
	if c.remaps[m] == nil {
		c.remaps[m] = make(map[string]key.Event)
	}
	c.remaps[m][from] = ev
	return nil
}

// translate applies at most one remap to the incoming event.
func (c *Controller) translate(ev key.Event) key.Event {
	m := c.state.Mode()
	if m == ModeVisualLine {
		m = ModeVisual
	}
	if to, ok := c.remaps[m][ev.Encode()]; ok {
		return to
	}
	return ev
}

// HandleKey processes one key event. The return value tells the host
// whether to suppress its default handling of the key.
func (c *Controller) HandleKey(ev key.Event) bool {
	ev = c.translate(ev)

	switch c.state.Mode() {
	case ModeInsert:
		return c.handleInsert(ev)
	case ModeVisual, ModeVisualLine:
		cmd := c.visual.Resolve(ev)
		if cmd == nil {
			return false
		}
		c.execute(cmd)
		return cmd.Suppress
	default:
		cmd := c.normal.Resolve(ev)
		if cmd == nil {
			return false
		}
		c.execute(cmd)
		return cmd.Suppress
	}
}

// Feed parses a key spec and handles it. Convenience for scripting
// and tests.
func (c *Controller) Feed(spec string) (bool, error) {
	ev, err := key.Parse(spec)
	if err != nil {
		return false, err
	}
	return c.HandleKey(ev), nil
}

// handleInsert edits the buffer directly; keystrokes inside a compound
// session run without their own undo records.
func (c *Controller) handleInsert(ev key.Event) bool {
	switch {
	case ev.IsEscape():
		c.state.SetMode(ModeNormal)
		c.state.ClampCursor()
		c.history.CommitCompound(c.state.Snapshot())
		c.log.Debug("insert session committed", zap.String("mode", c.state.Mode().String()))
		return true
	case ev.Key == key.KeyEnter && !ev.IsModified():
		insertNewline(c.state)
		return false
	case ev.Key == key.KeyBackspace && !ev.IsModified():
		deleteBack(c.state)
		return true
	case ev.Key == key.KeyTab && !ev.IsModified():
		insertRune(c.state, '\t')
		return true
	case ev.IsChar() && !ev.IsModified():
		insertRune(c.state, ev.Rune)
		return false
	}
	return false
}

// execute interprets one resolved command, applying the undo policy:
// content-mutating commands outside a compound session get snapshotted
// and recorded, undo/redo are never themselves recorded.
func (c *Controller) execute(cmd *vim.Command) {
	switch cmd.Kind {
	case vim.CommandNone:
		return

	case vim.CommandMotion:
		cmd.Motion.Move(c.state, cmd.Count)
		c.state.ClampCursor()
		return

	case vim.CommandUndo:
		c.applyHistory(cmd.Count, c.history.Undo)
		return
	case vim.CommandRedo:
		c.applyHistory(cmd.Count, c.history.Redo)
		return

	case vim.CommandEnterVisual:
		c.state.StartSelection(cmd.Visual)
		if cmd.Visual == cursor.SelectionLine {
			c.state.SetMode(ModeVisualLine)
		} else {
			c.state.SetMode(ModeVisual)
		}
		c.log.Debug("mode change", zap.String("mode", c.state.Mode().String()))
		return
	case vim.CommandLeaveVisual:
		c.state.ClearSelection()
		c.state.SetMode(ModeNormal)
		return

	case vim.CommandEnterInsert:
		c.history.BeginCompound(c.state.Snapshot())
		placeInsert(c.state, cmd.Placement)
		c.state.SetMode(ModeInsert)
		c.log.Debug("mode change", zap.String("mode", c.state.Mode().String()))
		return
	}

	pre := c.state.Snapshot()
	c.executeMutating(cmd)
	c.state.ClampCursor()
	if !c.history.InCompound() {
		c.history.RecordChange(pre, c.state.Snapshot())
	}
}

// executeMutating runs the commands that may touch buffer content.
func (c *Controller) executeMutating(cmd *vim.Command) {
	st := c.state
	switch cmd.Kind {
	case vim.CommandOperatorMotion:
		applyOperator(st, c.reg, cmd.Operator, cmd.Motion.Span(st, cmd.Count))

	case vim.CommandOperatorLines:
		row := st.Cursor().Row
		rng := vim.LineRange(row, row+cmd.Count-1)
		applyOperator(st, c.reg, cmd.Operator, rng)

	case vim.CommandDeleteChar:
		pos := st.Cursor()
		deleteCharRange(st, c.reg, pos.Row, pos.Col, pos.Col+1)

	case vim.CommandDeleteToLineEnd:
		pos := st.Cursor()
		deleteCharRange(st, c.reg, pos.Row, pos.Col, st.LineLen(pos.Row))

	case vim.CommandPaste:
		paste(st, c.reg, cmd.Before)

	case vim.CommandVisualYank:
		yankSelection(st, c.reg)
		st.ClearSelection()
		st.SetMode(ModeNormal)

	case vim.CommandVisualDelete:
		deleteSelection(st, c.reg)
		st.ClearSelection()
		st.SetMode(ModeNormal)
	}
}

// applyHistory repeats undo or redo count times, stopping at the first
// exhausted stack, then forces normal mode.
func (c *Controller) applyHistory(count int, step func(history.Snapshot) (history.Snapshot, bool)) {
	for i := 0; i < count; i++ {
		snap, ok := step(c.state.Snapshot())
		if !ok {
			break
		}
		c.state.Restore(snap)
	}
	c.state.SetMode(ModeNormal)
	c.state.ClearSelection()
	c.state.ClampCursor()
}

// Mode returns the current mode. Polled by the renderer.
func (c *Controller) Mode() Mode {
	return c.state.Mode()
}

// CursorPosition returns the cursor position. Polled by the renderer.
func (c *Controller) CursorPosition() cursor.Position {
	return c.state.Cursor()
}

// Content returns the full buffer text.
func (c *Controller) Content() string {
	return c.state.Content()
}

// SelectionView is the renderer's view of the active selection, with
// the live head filled in from the cursor.
type SelectionView struct {
	Type   cursor.SelectionType
	Anchor cursor.Position
	Head   cursor.Position
}

// Selection returns the active selection with its live head, nil
// outside visual mode.
func (c *Controller) Selection() *SelectionView {
	sel := c.state.Selection()
	if sel == nil {
		return nil
	}
	return &SelectionView{
		Type:   sel.Type,
		Anchor: sel.Anchor,
		Head:   c.state.Cursor(),
	}
}

// Register returns the current register contents.
func (c *Controller) Register() string {
	return c.reg.Get()
}

// CanUndo reports whether an undo entry is available.
func (c *Controller) CanUndo() bool {
	return c.history.CanUndo()
}

// CanRedo reports whether a redo entry is available.
func (c *Controller) CanRedo() bool {
	return c.history.CanRedo()
}
