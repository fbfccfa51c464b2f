package history

// History manages snapshot-based undo/redo state plus at most one
// in-flight compound snapshot (an insert session collapsed into a
// single undo entry).
//
// Undo and redo report stack exhaustion through their boolean return;
// an empty stack is a normal outcome, not an error.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot

	// pending is the snapshot opened at the start of a compound
	// session, nil when idle.
	pending *Snapshot

	maxEntries int
}

// New creates a history manager.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &History{maxEntries: maxEntries}
}

// RecordChange pushes pre onto the undo stack if the captured content
// actually differs from current, clearing the redo stack on a genuine
// push. Returns true if an entry was recorded.
func (h *History) RecordChange(pre, current Snapshot) bool {
	if pre.Content == current.Content {
		return false
	}

	h.undoStack = append(h.undoStack, pre.clone())
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
	return true
}

// BeginCompound opens a compound session with pre as its pending
// snapshot. Ignored if a session is already open.
func (h *History) BeginCompound(pre Snapshot) {
	if h.pending != nil {
		return
	}
	snap := pre.clone()
	h.pending = &snap
}

// CommitCompound closes the compound session, recording its pending
// snapshot against current. One undo entry covers the whole session,
// and only if content changed. Returns true if an entry was recorded.
func (h *History) CommitCompound(current Snapshot) bool {
	if h.pending == nil {
		return false
	}
	pre := *h.pending
	h.pending = nil
	return h.RecordChange(pre, current)
}

// InCompound returns true while a compound session is open.
func (h *History) InCompound() bool {
	return h.pending != nil
}

// Undo pops the undo stack, pushing current onto the redo stack.
// Returns the snapshot to apply and true, or false if the stack is
// empty (in which case nothing changed).
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}

	snap := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current.clone())
	return snap, true
}

// Redo pops the redo stack, pushing current onto the undo stack.
// Symmetric with Undo. The push bypasses RecordChange so a redo never
// clears the remaining redo entries.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}

	snap := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current.clone())
	return snap, true
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo entries.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo entries.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// Clear removes all history and any pending compound snapshot.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
	h.pending = nil
}
