package seq

import (
	"fmt"
	"strings"

	"github.com/maruel/natural"
	"golang.org/x/exp/constraints"
)

// Comparator defines the ordering used by [Sequence.Sort] and
// [Sequence.ToSorted]: negative when a orders before b, positive when a
// orders after b, zero when they rank equally.
type Comparator[T any] func(a, b T) int

// Lexicographic orders elements by their rendered string form, the default
// comparator of Array.prototype.sort. It is well defined for any T, and it
// carries the famous JavaScript quirk along:
//
//	seq.New(10, 9, 1).Sort() // [1 10 9], because "10" < "9"
//
// Pass [Ascending] to Sort for numeric ordering instead.
func Lexicographic[T any](a, b T) int {
	return strings.Compare(stringify(a), stringify(b))
}

// Natural orders elements by the natural ordering of their rendered string
// form, in which embedded digit runs compare numerically: "item2" before
// "item10". Useful for host names, versions and file names where
// [Lexicographic] surprises humans.
func Natural[T any](a, b T) int {
	as, bs := stringify(a), stringify(b)
	switch {
	case as == bs:
		return 0
	case natural.Less(as, bs):
		return -1
	default:
		return 1
	}
}

// Ascending orders elements by the native < of an ordered type.
func Ascending[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Descending is [Ascending] with the operands swapped.
func Descending[T constraints.Ordered](a, b T) int {
	return Ascending(b, a)
}

// Reversed returns a comparator that orders exactly opposite to cmp.
func Reversed[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int { return cmp(b, a) }
}

// stringify renders an element the way the string-based comparators and
// [Sequence.Join] see it.
func stringify[T any](v T) string {
	return fmt.Sprintf("%v", v)
}
