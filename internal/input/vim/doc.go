// Package vim resolves key events into editor commands using vi-style
// modal grammar.
//
// The package is pure input interpretation. Resolvers accumulate
// counts and pending operators across events and emit Command values;
// they never touch a buffer. Motions carry two duals, a cursor move
// and an operator range, because the two disagree for motions like
// '$'. The Register holds the single yank/delete slot, with a
// trailing newline marking linewise content.
package vim
