package engine

import (
	"log/slog"

	"github.com/dshills/patterns/internal/engine/buffer"
	"github.com/dshills/patterns/internal/engine/history"
	"github.com/dshills/patterns/internal/logging"
)

// Originator is anything whose state can be checkpointed and restored.
type Originator interface {
	Checkpoint() history.Checkpoint
	Restore(steps int) error
}

var _ Originator = (*buffer.Buffer)(nil)

// Caretaker saves and restores originators on request.
type Caretaker struct {
	logger *slog.Logger
}

// NewCaretaker creates a Caretaker with the given options.
func NewCaretaker(opts ...Option) *Caretaker {
	c := &Caretaker{logger: logging.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "caretaker")
	return c
}

// Save checkpoints the originator.
func (c *Caretaker) Save(o Originator) history.Checkpoint {
	return o.Checkpoint()
}

// Undo restores the originator to the checkpoint steps entries back from
// its newest one. Undo(o, 0) restores the newest checkpoint.
// Out of range requests are logged and returned; the originator is left
// unchanged.
func (c *Caretaker) Undo(o Originator, steps int) error {
	if err := o.Restore(steps); err != nil {
		c.logger.Warn("undo failed", "steps", steps, "error", err)
		return err
	}
	return nil
}
