package engine

import "log/slog"

// Option configures a Caretaker during creation.
type Option func(*Caretaker)

// WithLogger sets the logger used to report rejected undo requests.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Caretaker) {
		if logger != nil {
			c.logger = logger
		}
	}
}
