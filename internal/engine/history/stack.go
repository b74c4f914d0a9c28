package history

import (
	"slices"
	"sync"

	"github.com/dshills/patterns/internal/collection"
)

// DefaultCapacity is the number of checkpoints kept when no capacity is given.
const DefaultCapacity = 4

// History holds the most recent checkpoints, oldest first.
type History struct {
	mu sync.Mutex

	entries  []Checkpoint
	capacity int
}

// NewHistory creates an empty history keeping at most capacity checkpoints.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{
		entries:  make([]Checkpoint, 0, capacity),
		capacity: capacity,
	}
}

// Push appends a checkpoint, evicting the oldest one when full.
// Returns the evicted checkpoint and true if one was dropped.
func (h *History) Push(cp Checkpoint) (Checkpoint, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var evicted Checkpoint
	dropped := false
	if len(h.entries) >= h.capacity {
		evicted = h.entries[0]
		dropped = true
		// Shift in place so the backing array never grows past capacity
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}

	h.entries = append(h.entries, cp)
	return evicted, dropped
}

// At returns the checkpoint steps entries back from the newest one.
// At(0) is the newest checkpoint. The history is left unchanged.
func (h *History) At(steps int) (Checkpoint, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := len(h.entries)
	if steps < 0 || steps >= n {
		return Checkpoint{}, &StepsError{Steps: steps, Available: n}
	}
	return h.entries[n-1-steps], nil
}

// Len returns the number of checkpoints held.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Capacity returns the maximum number of checkpoints held.
func (h *History) Capacity() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.capacity
}

// Entries returns a copy of the checkpoints, oldest first.
func (h *History) Entries() []Checkpoint {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.entries)
}

// ReverseIterator returns an iterator from the newest checkpoint to the oldest.
// The n-th item produced is the checkpoint selected by At(n).
func (h *History) ReverseIterator() *collection.Iterator[Checkpoint] {
	return collection.Reverse(h.Entries())
}
