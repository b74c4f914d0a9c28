package buffer

import "github.com/dshills/patterns/internal/engine/history"

// ErrInvalidSteps is returned by Restore when steps is not less than the
// number of checkpoints held.
var ErrInvalidSteps = history.ErrInvalidSteps

// InvalidStepsError carries the rejected steps value and the history length.
type InvalidStepsError = history.StepsError
