package vim

import "github.com/dshills/modal/internal/input/key"

// VisualResolver turns visual-mode key events into commands. Visual
// mode has no operators to hold; only a count carries between events.
type VisualResolver struct {
	count CountState
}

// NewVisualResolver returns a resolver with no pending count.
func NewVisualResolver() *VisualResolver {
	return &VisualResolver{}
}

// Reset clears the accumulated count.
func (r *VisualResolver) Reset() {
	r.count.Reset()
}

// Resolve maps one key event to a command. Motions extend the live end
// of the selection; y and d act on it immediately.
func (r *VisualResolver) Resolve(ev key.Event) *Command {
	if ev.IsModifierOnly() {
		return nil
	}

	if ev.IsEscape() {
		r.Reset()
		return &Command{Kind: CommandLeaveVisual, Suppress: true}
	}

	spec := ev.Encode()

	if ev.IsRune() && IsCountDigit(ev.Rune) {
		if r.count.AccumulateDigit(ev.Rune) {
			return &Command{Kind: CommandNone}
		}
	}

	if m := GetMotion(spec); m != nil {
		return &Command{Kind: CommandMotion, Motion: m, Count: r.count.Take()}
	}

	switch spec {
	case "d", "x":
		r.count.Reset()
		return &Command{Kind: CommandVisualDelete, Suppress: true}
	case "y":
		r.count.Reset()
		return &Command{Kind: CommandVisualYank}
	}

	r.count.Reset()
	return nil
}
