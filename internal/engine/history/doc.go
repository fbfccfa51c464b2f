// Package history provides snapshot-based undo/redo with compound
// sessions.
//
// The dispatcher captures a snapshot before a mutating command and
// records it afterwards; RecordChange only keeps entries whose content
// actually changed. A compound session (entering insert mode) holds
// one pending snapshot open across many keystrokes and commits it as
// a single undo entry when the session ends.
package history
