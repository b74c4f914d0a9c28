// Package history provides bounded checkpoint history for the text buffer.
//
// A Checkpoint is an immutable snapshot of a buffer's identifier and
// content. History keeps the most recent checkpoints, oldest first, up to
// a fixed capacity:
//
//	h := history.NewHistory(history.DefaultCapacity) // keeps 4
//
//	h.Push(history.NewCheckpoint("doc.txt", "A\n"))
//	h.Push(history.NewCheckpoint("doc.txt", "A\nB\n"))
//
//	cp, _ := h.At(0) // most recent: "A\nB\n"
//	cp, _ = h.At(1)  // one before:  "A\n"
//	_, err := h.At(2) // errors.Is(err, history.ErrInvalidSteps)
//
// # Eviction
//
// Once the history is full, Push drops the oldest checkpoint before
// appending the new one.
//
// # Reading
//
// At selects a checkpoint counting back from the newest entry. It never
// removes or reorders entries, so reading an older checkpoint does not
// discard newer ones; they stay selectable by a later At call.
package history
