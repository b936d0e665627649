package seq

import "fmt"

// Entry is an index/value pair produced by [Sequence.Entries].
//
// Portability note: in JavaScript this maps to the [index, value] pairs
// yielded by Array.prototype.entries(); in Python to enumerate() tuples.
type Entry[T any] struct {
	Index int
	Value T
}

// String returns a human-readable representation: "(index, value)".
func (e Entry[T]) String() string {
	return fmt.Sprintf("(%d, %v)", e.Index, e.Value)
}
