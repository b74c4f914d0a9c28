package event

import (
	"time"

	"github.com/google/uuid"
)

// Event is a notification delivered to observers.
// Events are immutable once created.
type Event struct {
	// Type is the event type (e.g., "buffer.appended").
	Type Type

	// Payload contains the event-specific data.
	Payload any

	// Metadata contains standard event information.
	Metadata Metadata
}

// Metadata contains standard information attached to every event.
type Metadata struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies the subject that published the event.
	// Filled in by Subject.Notify when empty.
	Source string
}

// New creates a new event with the given type and payload.
func New(eventType Type, payload any) Event {
	return Event{
		Type:    eventType,
		Payload: payload,
		Metadata: Metadata{
			ID:        uuid.NewString(),
			Timestamp: time.Now(),
		},
	}
}

// BufferChange returns the payload as a BufferChange.
func (e Event) BufferChange() (BufferChange, bool) {
	p, ok := e.Payload.(BufferChange)
	return p, ok
}
