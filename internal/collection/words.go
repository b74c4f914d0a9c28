package collection

import "slices"

// Words is an ordered collection of strings.
type Words struct {
	items []string
}

// NewWords creates a collection holding a copy of items.
func NewWords(items ...string) *Words {
	return &Words{items: slices.Clone(items)}
}

// Add appends an item.
func (w *Words) Add(item string) {
	w.items = append(w.items, item)
}

// Len returns the number of items.
func (w *Words) Len() int {
	return len(w.items)
}

// Iterator returns an iterator in insertion order.
func (w *Words) Iterator() *Iterator[string] {
	return Forward(w.items[:len(w.items):len(w.items)])
}

// ReverseIterator returns an iterator in reverse insertion order.
func (w *Words) ReverseIterator() *Iterator[string] {
	return Reverse(w.items[:len(w.items):len(w.items)])
}
