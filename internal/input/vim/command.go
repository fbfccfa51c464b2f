package vim

import "github.com/dshills/modal/internal/engine/cursor"

// CommandKind identifies what a resolved keystroke asks the editor to
// do.
type CommandKind int

const (
	// CommandMotion moves the cursor.
	CommandMotion CommandKind = iota
	// CommandOperatorMotion applies an operator over a motion range.
	CommandOperatorMotion
	// CommandOperatorLines applies a doubled operator (dd, yy) over
	// whole lines.
	CommandOperatorLines
	// CommandEnterInsert switches to insert mode at a placement.
	CommandEnterInsert
	// CommandEnterVisual starts a visual selection.
	CommandEnterVisual
	// CommandLeaveVisual ends a visual selection.
	CommandLeaveVisual
	// CommandDeleteChar deletes the character under the cursor (x).
	CommandDeleteChar
	// CommandDeleteToLineEnd deletes to end of line (D).
	CommandDeleteToLineEnd
	// CommandPaste inserts register contents (p, P).
	CommandPaste
	// CommandUndo restores the previous snapshot.
	CommandUndo
	// CommandRedo reapplies an undone snapshot.
	CommandRedo
	// CommandVisualDelete deletes the active selection.
	CommandVisualDelete
	// CommandVisualYank yanks the active selection.
	CommandVisualYank
	// CommandNone consumes a key without acting, as when a count
	// digit or pending operator is accumulated.
	CommandNone
)

// Operator is a pending normal-mode operator.
type Operator int

const (
	// OpNone means no operator is pending.
	OpNone Operator = iota
	// OpDelete removes text and yanks it.
	OpDelete
	// OpYank copies text without modifying the buffer.
	OpYank
)

// String returns the operator's key.
func (o Operator) String() string {
	switch o {
	case OpDelete:
		return "d"
	case OpYank:
		return "y"
	default:
		return ""
	}
}

// InsertPlacement says where the cursor lands when entering insert
// mode.
type InsertPlacement int

const (
	// PlaceAtCursor inserts at the current column (i).
	PlaceAtCursor InsertPlacement = iota
	// PlaceAtLineStart inserts at column 0 (I).
	PlaceAtLineStart
	// PlaceAfterCursor inserts one column right (a).
	PlaceAfterCursor
	// PlaceAtLineEnd inserts past the last character (A).
	PlaceAtLineEnd
	// PlaceLineBelow opens a new line below (o).
	PlaceLineBelow
	// PlaceLineAbove opens a new line above (O).
	PlaceLineAbove
)

// Command is a fully resolved editor action. Kind selects which fields
// are meaningful.
type Command struct {
	Kind CommandKind

	// Motion drives CommandMotion and CommandOperatorMotion.
	Motion *Motion

	// Count is the accumulated repeat count, already floored at 1.
	Count int

	// Operator drives CommandOperatorMotion and CommandOperatorLines.
	Operator Operator

	// Placement drives CommandEnterInsert.
	Placement InsertPlacement

	// Visual is the selection type for CommandEnterVisual.
	Visual cursor.SelectionType

	// Before distinguishes P from p for CommandPaste.
	Before bool

	// Suppress tells the host to swallow the originating key event.
	Suppress bool
}
