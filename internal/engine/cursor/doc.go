// Package cursor provides buffer positions, clamping, and
// visual-selection geometry.
//
// Selections store only their anchor; the live endpoint is the
// current cursor, and CharSpan/LineSpan normalize the two into the
// ordered ranges operators and copy/delete walk.
package cursor
