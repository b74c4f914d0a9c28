// Package buffer provides a versioned text buffer with bounded checkpoint
// history.
//
// A Buffer holds an identifier (typically a file name) and text content
// that only grows through Append. Checkpoint records the current
// identifier and content in the buffer's history; Restore puts a recorded
// state back:
//
//	buf := buffer.NewBuffer("doc.txt")
//
//	buf.Append("A\n")
//	buf.Checkpoint()
//	buf.Append("B\n")
//	buf.Checkpoint()
//	buf.Append("C\n")
//
//	buf.Restore(0) // "A\nB\n"
//	buf.Restore(1) // "A\n"
//	err := buf.Restore(2) // errors.Is(err, buffer.ErrInvalidSteps)
//
// History keeps the four most recent checkpoints by default (see
// WithCapacity). Appending never checkpoints implicitly, and Restore never
// removes checkpoints, so every retained checkpoint stays selectable.
//
// Thread Safety:
//
// All Buffer methods are thread-safe. Checkpoint and Restore each run as a
// single critical section, so no caller can observe a restore that updated
// the identifier but not the content.
package buffer
