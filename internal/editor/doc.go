// Package editor hosts the dispatcher side of the interpreter: the
// mutable editor state, the operator engine that applies deletes,
// yanks, and pastes against the buffer, insert-mode editing, and the
// Controller that ties resolvers, history, and register together.
//
// Everything here is synchronous and single-writer. A renderer polls
// the controller's observables after each event; the core never pushes.
package editor
