package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/modal/internal/engine/cursor"
	"github.com/dshills/modal/internal/input/vim"
)

func TestDeleteLineRangeClampsToBuffer(t *testing.T) {
	st := NewState("a\nb\nc")
	reg := vim.NewRegister()
	deleteLineRange(st, reg, 1, 99)
	assert.Equal(t, "a", st.Content())
	assert.Equal(t, "b\nc\n", reg.Get())
	assert.Equal(t, cursor.Position{Row: 0, Col: 0}, st.Cursor())
}

func TestDeleteLineRangeEmptiesToOneLine(t *testing.T) {
	st := NewState("a\nb")
	reg := vim.NewRegister()
	deleteLineRange(st, reg, 0, 1)
	assert.Equal(t, 1, st.LineCount())
	assert.Equal(t, "", st.Content())
}

func TestDeleteLineRangePreservesColumn(t *testing.T) {
	st := NewState("abc\ndef\nghij")
	st.SetCursor(cursor.Position{Row: 0, Col: 2})
	reg := vim.NewRegister()
	deleteLineRange(st, reg, 0, 1)
	assert.Equal(t, cursor.Position{Row: 0, Col: 2}, st.Cursor())
}

func TestYankLineRangeLeavesBufferAlone(t *testing.T) {
	st := NewState("a\nb\nc")
	st.SetCursor(cursor.Position{Row: 1, Col: 0})
	reg := vim.NewRegister()
	yankLineRange(st, reg, 0, 1)
	assert.Equal(t, "a\nb\nc", st.Content())
	assert.Equal(t, "a\nb\n", reg.Get())
	assert.True(t, reg.IsLinewise())
	assert.Equal(t, cursor.Position{Row: 1, Col: 0}, st.Cursor())
}

func TestDeleteCharRangeClamps(t *testing.T) {
	st := NewState("hello")
	reg := vim.NewRegister()
	deleteCharRange(st, reg, 0, 3, 99)
	assert.Equal(t, "hel", st.Content())
	assert.Equal(t, "lo", reg.Get())
	assert.False(t, reg.IsLinewise())
	assert.Equal(t, cursor.Position{Row: 0, Col: 3}, st.Cursor())
}

func TestEmptyCharRangeKeepsRegister(t *testing.T) {
	st := NewState("hello")
	reg := vim.NewRegister()
	reg.Set("kept")
	deleteCharRange(st, reg, 0, 2, 2)
	assert.Equal(t, "hello", st.Content())
	assert.Equal(t, "kept", reg.Get())
}

func TestSelectionTextMultiRow(t *testing.T) {
	st := NewState("abcd\nmiddle\nwxyz")
	span := cursor.Span{StartRow: 0, StartCol: 2, EndRow: 2, EndCol: 2}
	assert.Equal(t, "cd\nmiddle\nwx", selectionText(st, span))
}

func TestPasteLinewiseAfter(t *testing.T) {
	st := NewState("one\ntwo")
	reg := vim.NewRegister()
	reg.SetLinewise([]string{"a", "b"})
	paste(st, reg, false)
	assert.Equal(t, "one\na\nb\ntwo", st.Content())
	assert.Equal(t, cursor.Position{Row: 2, Col: 0}, st.Cursor())
}

func TestPasteLinewiseBefore(t *testing.T) {
	st := NewState("one\ntwo")
	st.SetCursor(cursor.Position{Row: 1, Col: 0})
	reg := vim.NewRegister()
	reg.SetLinewise([]string{"a", "b"})
	paste(st, reg, true)
	assert.Equal(t, "one\na\nb\ntwo", st.Content())
	assert.Equal(t, cursor.Position{Row: 2, Col: 0}, st.Cursor())
}

func TestPasteCharwiseAfterCursor(t *testing.T) {
	st := NewState("ad")
	reg := vim.NewRegister()
	reg.Set("bc")
	paste(st, reg, false)
	assert.Equal(t, "abcd", st.Content())
	assert.Equal(t, cursor.Position{Row: 0, Col: 2}, st.Cursor())
}

func TestPasteCharwiseOnEmptyLine(t *testing.T) {
	st := NewState("")
	reg := vim.NewRegister()
	reg.Set("hi")
	paste(st, reg, false)
	assert.Equal(t, "hi", st.Content())
}

func TestPasteEmptyRegisterIsNoop(t *testing.T) {
	st := NewState("abc")
	reg := vim.NewRegister()
	paste(st, reg, false)
	assert.Equal(t, "abc", st.Content())
}

func TestApplyOperatorDispatch(t *testing.T) {
	st := NewState("abc\ndef")
	reg := vim.NewRegister()
	applyOperator(st, reg, vim.OpYank, vim.LineRange(0, 0))
	require.Equal(t, "abc\n", reg.Get())

	applyOperator(st, reg, vim.OpDelete, vim.CharRange(0, 0, 2))
	assert.Equal(t, "c\ndef", st.Content())
	assert.Equal(t, "ab", reg.Get())
}
