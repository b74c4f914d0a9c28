package buffer

import (
	"log/slog"

	"github.com/dshills/patterns/internal/event"
)

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithCapacity sets the number of checkpoints kept.
// Values below 1 keep the default capacity.
func WithCapacity(capacity int) Option {
	return func(b *Buffer) {
		if capacity > 0 {
			b.capacity = capacity
		}
	}
}

// WithLogger sets the logger used for buffer diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Buffer) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithSubject publishes buffer changes to the given subject.
func WithSubject(subject *event.Subject) Option {
	return func(b *Buffer) {
		b.subject = subject
	}
}
