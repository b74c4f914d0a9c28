// Package collection provides explicit cursor iterators over ordered
// collections.
//
// An Iterator holds its own position and exposes two operations: HasNext
// reports whether another element exists, Next produces the element and
// advances. Iterators never share state, so several can walk the same
// collection at once:
//
//	words := collection.NewWords("First", "Second", "Third")
//
//	it := words.Iterator()
//	for it.HasNext() {
//	    w, _ := it.Next()
//	    fmt.Println(w)
//	}
//
//	rev := words.ReverseIterator()
//	for w, ok := rev.Next(); ok; w, ok = rev.Next() {
//	    fmt.Println(w)
//	}
//
// Iterators read from the slice captured when they were created. Items
// added to a collection afterwards are not visible to existing iterators.
package collection
