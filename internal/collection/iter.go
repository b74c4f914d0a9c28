package collection

// Iterator walks a slice in one direction.
type Iterator[T any] struct {
	items []T
	pos   int
	step  int
}

// Forward returns an iterator from the first item to the last.
func Forward[T any](items []T) *Iterator[T] {
	return &Iterator[T]{items: items, pos: 0, step: 1}
}

// Reverse returns an iterator from the last item to the first.
func Reverse[T any](items []T) *Iterator[T] {
	return &Iterator[T]{items: items, pos: len(items) - 1, step: -1}
}

// HasNext returns true if Next will produce an item.
func (it *Iterator[T]) HasNext() bool {
	return it.pos >= 0 && it.pos < len(it.items)
}

// Next returns the current item and advances the cursor.
// Returns the zero value and false once the iterator is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if !it.HasNext() {
		var zero T
		return zero, false
	}
	v := it.items[it.pos]
	it.pos += it.step
	return v, true
}

// Remaining returns the number of items left.
func (it *Iterator[T]) Remaining() int {
	if !it.HasNext() {
		return 0
	}
	if it.step > 0 {
		return len(it.items) - it.pos
	}
	return it.pos + 1
}
