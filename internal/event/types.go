package event

// Type identifies the kind of an event.
type Type string

// Buffer event types.
const (
	// TypeAppended is emitted after text is appended to a buffer.
	TypeAppended Type = "buffer.appended"

	// TypeCheckpointed is emitted after a buffer checkpoint is taken.
	TypeCheckpointed Type = "buffer.checkpointed"

	// TypeRestored is emitted after a buffer is restored from a checkpoint.
	TypeRestored Type = "buffer.restored"

	// TypeRestoreFailed is emitted when a restore request is out of range.
	TypeRestoreFailed Type = "buffer.restore_failed"
)

// TypeIDEmitted is emitted by the ID emitter demonstration.
const TypeIDEmitted Type = "demo.id_emitted"

// String returns the type name.
func (t Type) String() string {
	return string(t)
}

// BufferChange is the payload of buffer events.
type BufferChange struct {
	Identifier   string `json:"identifier"`
	Length       int    `json:"length"`
	HistoryLen   int    `json:"historyLen"`
	Steps        int    `json:"steps,omitempty"`
	CheckpointID string `json:"checkpointId,omitempty"`
	Evicted      bool   `json:"evicted,omitempty"`
	Err          error  `json:"-"`
}
