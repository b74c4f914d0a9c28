package buffer

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/dshills/patterns/internal/collection"
	"github.com/dshills/patterns/internal/engine/history"
	"github.com/dshills/patterns/internal/event"
	"github.com/dshills/patterns/internal/logging"
)

// Buffer is a text buffer that can checkpoint and restore its state.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	identifier string
	content    strings.Builder
	history    *history.History

	capacity int
	logger   *slog.Logger
	subject  *event.Subject
}

// NewBuffer creates an empty buffer with the given identifier.
func NewBuffer(identifier string, opts ...Option) *Buffer {
	b := &Buffer{
		identifier: identifier,
		capacity:   history.DefaultCapacity,
		logger:     logging.Nop(),
	}

	for _, opt := range opts {
		opt(b)
	}

	b.history = history.NewHistory(b.capacity)
	b.logger = b.logger.With("component", "buffer")
	return b
}

// Append adds text to the end of the content.
// Appending never takes a checkpoint. An empty string is a no-op.
func (b *Buffer) Append(text string) {
	if text == "" {
		return
	}

	b.mu.Lock()
	b.content.WriteString(text)
	change := b.changeLocked()
	b.mu.Unlock()

	b.notify(event.TypeAppended, change)
}

// Checkpoint records the current identifier and content in history,
// evicting the oldest checkpoint when history is full.
func (b *Buffer) Checkpoint() history.Checkpoint {
	b.mu.Lock()
	cp := history.NewCheckpoint(b.identifier, b.content.String())
	evicted, dropped := b.history.Push(cp)
	change := b.changeLocked()
	b.mu.Unlock()

	change.CheckpointID = cp.ID().String()
	change.Evicted = dropped

	if dropped {
		b.logger.Debug("evicted oldest checkpoint",
			"identifier", cp.Identifier(),
			"evicted", evicted.ID().String())
	}
	b.logger.Debug("checkpoint taken",
		"identifier", cp.Identifier(),
		"checkpoint", change.CheckpointID,
		"history", change.HistoryLen)

	b.notify(event.TypeCheckpointed, change)
	return cp
}

// Restore replaces the identifier and content with those of the checkpoint
// steps entries back from the newest one. Restore(0) selects the newest.
//
// If steps is not less than the number of checkpoints held, Restore returns
// an *InvalidStepsError and leaves the buffer unchanged. History itself is
// never modified by Restore.
func (b *Buffer) Restore(steps int) error {
	b.mu.Lock()
	cp, err := b.history.At(steps)
	if err == nil {
		b.identifier = cp.Identifier()
		b.content.Reset()
		b.content.WriteString(cp.Content())
	}
	change := b.changeLocked()
	b.mu.Unlock()

	change.Steps = steps
	if err != nil {
		change.Err = err
		b.logger.Warn("restore rejected",
			"identifier", change.Identifier,
			"steps", steps,
			"history", change.HistoryLen)
		b.notify(event.TypeRestoreFailed, change)
		return err
	}

	change.CheckpointID = cp.ID().String()
	b.logger.Debug("restored checkpoint",
		"identifier", change.Identifier,
		"steps", steps,
		"checkpoint", change.CheckpointID)
	b.notify(event.TypeRestored, change)
	return nil
}

// SetIdentifier changes the buffer identifier. It does not checkpoint.
func (b *Buffer) SetIdentifier(identifier string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.identifier = identifier
}

// Identifier returns the current identifier.
func (b *Buffer) Identifier() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.identifier
}

// Content returns the current content.
func (b *Buffer) Content() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content.String()
}

// State returns the identifier and content read together.
func (b *Buffer) State() (identifier, content string) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.identifier, b.content.String()
}

// Len returns the content length in bytes.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content.Len()
}

// HistoryLen returns the number of checkpoints held.
func (b *Buffer) HistoryLen() int {
	return b.history.Len()
}

// Capacity returns the maximum number of checkpoints held.
func (b *Buffer) Capacity() int {
	return b.history.Capacity()
}

// History returns a copy of the checkpoints, oldest first.
func (b *Buffer) History() []history.Checkpoint {
	return b.history.Entries()
}

// Checkpoints iterates the held checkpoints newest first, so the n-th item
// is the one Restore(n) would select.
func (b *Buffer) Checkpoints() *collection.Iterator[history.Checkpoint] {
	return b.history.ReverseIterator()
}

// changeLocked builds an event payload. Caller must hold b.mu.
func (b *Buffer) changeLocked() event.BufferChange {
	return event.BufferChange{
		Identifier: b.identifier,
		Length:     b.content.Len(),
		HistoryLen: b.history.Len(),
	}
}

// notify publishes a change outside the buffer lock so observers may read
// the buffer.
func (b *Buffer) notify(t event.Type, change event.BufferChange) {
	if b.subject == nil {
		return
	}
	if err := b.subject.Notify(context.Background(), event.New(t, change)); err != nil {
		b.logger.Warn("observer failed", "event", t.String(), "error", err)
	}
}
