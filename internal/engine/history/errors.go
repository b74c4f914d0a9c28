package history

import (
	"errors"
	"fmt"
)

// ErrInvalidSteps is returned when a checkpoint is requested further back
// than the history reaches.
var ErrInvalidSteps = errors.New("invalid number of steps to undo")

// StepsError reports an out of range request against a history.
type StepsError struct {
	Steps     int // Requested number of steps back from the newest checkpoint
	Available int // Number of checkpoints held when the request was made
}

func (e *StepsError) Error() string {
	return fmt.Sprintf("%s: %d (history has %d %s)",
		ErrInvalidSteps, e.Steps, e.Available, pluralCheckpoints(e.Available))
}

// Unwrap returns ErrInvalidSteps.
func (e *StepsError) Unwrap() error {
	return ErrInvalidSteps
}

func pluralCheckpoints(n int) string {
	if n == 1 {
		return "checkpoint"
	}
	return "checkpoints"
}
