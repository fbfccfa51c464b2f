// Package buffer provides the line-oriented text storage the
// interpreter edits.
//
// The buffer contract is deliberately small: line queries and
// mutations plus whole-content extraction and replacement. Any
// implementation with those operations could back the interpreter;
// this one stores lines as rune slices.
package buffer
