package event

import "errors"

// Sentinel errors for subjects and observers.
var (
	// ErrNilObserver is returned when a nil observer is attached.
	ErrNilObserver = errors.New("observer cannot be nil")

	// ErrObserverPanic wraps a panic recovered from an observer.
	ErrObserverPanic = errors.New("observer panicked")
)
