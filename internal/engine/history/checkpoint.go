package history

import (
	"time"

	"github.com/google/uuid"
)

// Checkpoint is an immutable snapshot of a buffer's state.
type Checkpoint struct {
	id         uuid.UUID
	identifier string
	content    string
	timestamp  time.Time
}

// NewCheckpoint creates a checkpoint of the given identifier and content.
func NewCheckpoint(identifier, content string) Checkpoint {
	return Checkpoint{
		id:         uuid.New(),
		identifier: identifier,
		content:    content,
		timestamp:  time.Now(),
	}
}

// ID returns the unique ID assigned when the checkpoint was created.
func (c Checkpoint) ID() uuid.UUID {
	return c.id
}

// Identifier returns the buffer identifier at snapshot time.
func (c Checkpoint) Identifier() string {
	return c.identifier
}

// Content returns the buffer content at snapshot time.
func (c Checkpoint) Content() string {
	return c.content
}

// Timestamp returns when the checkpoint was created.
func (c Checkpoint) Timestamp() time.Time {
	return c.timestamp
}

// Info returns a summary of the checkpoint.
func (c Checkpoint) Info() CheckpointInfo {
	return CheckpointInfo{
		ID:         c.id.String(),
		Identifier: c.identifier,
		Size:       len(c.content),
		Timestamp:  c.timestamp,
	}
}

// CheckpointInfo describes a checkpoint without exposing its content.
type CheckpointInfo struct {
	ID         string    `json:"id"`
	Identifier string    `json:"identifier"`
	Size       int       `json:"size"`
	Timestamp  time.Time `json:"timestamp"`
}
