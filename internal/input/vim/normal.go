package vim

import (
	"github.com/dshills/modal/internal/engine/cursor"
	"github.com/dshills/modal/internal/input/key"
)

// NormalResolver turns normal-mode key events into commands. It holds
// the in-flight count and pending operator; any resolved command or
// unrecognized key clears both.
type NormalResolver struct {
	count   CountState
	pending Operator
}

// NewNormalResolver returns a resolver with no pending state.
func NewNormalResolver() *NormalResolver {
	return &NormalResolver{}
}

// Pending returns the operator awaiting a motion, if any.
func (r *NormalResolver) Pending() Operator {
	return r.pending
}

// Count returns the count accumulated so far, 0 if none.
func (r *NormalResolver) Count() int {
	if !r.count.Active {
		return 0
	}
	return r.count.Value
}

// Reset clears the count and pending operator.
func (r *NormalResolver) Reset() {
	r.count.Reset()
	r.pending = OpNone
}

// Resolve maps one key event to a command. It returns nil for events
// the mode does not handle; nil with a pending operator still resets
// the resolver, silently abandoning the operator.
func (r *NormalResolver) Resolve(ev key.Event) *Command {
	if ev.IsModifierOnly() {
		return nil
	}

	spec := ev.Encode()

	if ev.IsEscape() {
		r.Reset()
		return &Command{Kind: CommandNone, Suppress: true}
	}

	// Count digits. A leading '0' is not a digit; it falls through to
	// the line-start motion.
	if ev.IsRune() && IsCountDigit(ev.Rune) {
		if r.count.AccumulateDigit(ev.Rune) {
			return &Command{Kind: CommandNone}
		}
	}

	// Doubled operator (dd, yy) works linewise; a second, different
	// operator replaces the pending one with the count preserved.
	switch spec {
	case "d", "y":
		op := OpDelete
		if spec == "y" {
			op = OpYank
		}
		if r.pending == op {
			cmd := &Command{
				Kind:     CommandOperatorLines,
				Operator: op,
				Count:    r.count.Take(),
				Suppress: op == OpDelete,
			}
			r.pending = OpNone
			return cmd
		}
		r.pending = op
		return &Command{Kind: CommandNone}
	}

	if m := GetMotion(spec); m != nil {
		count := r.count.Take()
		if op := r.pending; op != OpNone {
			r.pending = OpNone
			return &Command{
				Kind:     CommandOperatorMotion,
				Motion:   m,
				Count:    count,
				Operator: op,
				Suppress: op == OpDelete,
			}
		}
		return &Command{Kind: CommandMotion, Motion: m, Count: count}
	}

	// Any non-motion key after an operator cancels it silently.
	count := r.count.Take()
	if r.pending != OpNone {
		r.pending = OpNone
		return nil
	}

	switch spec {
	case "x":
		return &Command{Kind: CommandDeleteChar, Count: count, Suppress: true}
	case "D":
		return &Command{Kind: CommandDeleteToLineEnd, Count: count, Suppress: true}
	case "p":
		return &Command{Kind: CommandPaste, Count: count}
	case "P":
		return &Command{Kind: CommandPaste, Count: count, Before: true}
	case "u":
		return &Command{Kind: CommandUndo, Count: count, Suppress: true}
	case "Ctrl+r":
		return &Command{Kind: CommandRedo, Count: count, Suppress: true}
	case "i":
		return &Command{Kind: CommandEnterInsert, Placement: PlaceAtCursor}
	case "I":
		return &Command{Kind: CommandEnterInsert, Placement: PlaceAtLineStart}
	case "a":
		return &Command{Kind: CommandEnterInsert, Placement: PlaceAfterCursor}
	case "A":
		return &Command{Kind: CommandEnterInsert, Placement: PlaceAtLineEnd}
	case "o":
		return &Command{Kind: CommandEnterInsert, Placement: PlaceLineBelow}
	case "O":
		return &Command{Kind: CommandEnterInsert, Placement: PlaceLineAbove}
	case "v":
		return &Command{Kind: CommandEnterVisual, Visual: cursor.SelectionCharacter}
	case "V":
		return &Command{Kind: CommandEnterVisual, Visual: cursor.SelectionLine}
	}

	return nil
}
