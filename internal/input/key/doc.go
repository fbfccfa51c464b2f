// Package key defines keyboard events and their canonical string
// encoding.
//
// Every dispatch table in the interpreter is keyed by the string
// produced by Event.Encode, which joins the active Ctrl/Alt/Meta
// modifiers and the raw key name with "+" in a fixed order. Parse is
// the inverse, used to read key specifications from keymap files.
package key
