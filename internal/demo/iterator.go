package demo

import (
	"fmt"
	"io"

	"github.com/dshills/patterns/internal/collection"
)

// IteratorReport is the outcome of the iterator demonstration.
type IteratorReport struct {
	Forward []string `json:"forward"`
	Reverse []string `json:"reverse"`
}

// Iterator walks a word collection forwards and backwards.
func Iterator(w io.Writer, items []string) *IteratorReport {
	words := collection.NewWords()
	for _, item := range items {
		words.Add(item)
	}

	report := &IteratorReport{
		Forward: make([]string, 0, words.Len()),
		Reverse: make([]string, 0, words.Len()),
	}

	fmt.Fprintln(w, "Straight traversal:")
	it := words.Iterator()
	for it.HasNext() {
		item, _ := it.Next()
		fmt.Fprintln(w, item)
		report.Forward = append(report.Forward, item)
	}

	fmt.Fprintln(w, "\nReverse traversal:")
	rev := words.ReverseIterator()
	for item, ok := rev.Next(); ok; item, ok = rev.Next() {
		fmt.Fprintln(w, item)
		report.Reverse = append(report.Reverse, item)
	}

	return report
}
