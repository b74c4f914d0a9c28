package event

import "context"

// Observer receives events from a Subject.
type Observer interface {
	Update(ctx context.Context, e Event) error
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, e Event) error

// Update calls f(ctx, e).
func (f ObserverFunc) Update(ctx context.Context, e Event) error {
	return f(ctx, e)
}
