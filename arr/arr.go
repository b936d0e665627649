package arr

import (
	"fmt"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Every reports whether fn(item, index) returns true for every element.
// Short-circuits on the first false; vacuously true for an empty slice.
func Every[T any](items []T, fn func(T, int) bool) bool {
	for i, item := range items {
		if !fn(item, i) {
			return false
		}
	}
	return true
}

// Some reports whether fn(item, index) returns true for at least one element.
// Short-circuits on the first true; vacuously false for an empty slice.
func Some[T any](items []T, fn func(T, int) bool) bool {
	for i, item := range items {
		if fn(item, i) {
			return true
		}
	}
	return false
}

// Find returns the first element satisfying fn(item, index).
// Returns the zero value and false when no element matches.
func Find[T any](items []T, fn func(T, int) bool) (T, bool) {
	for i, item := range items {
		if fn(item, i) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element satisfying fn, or -1.
func FindIndex[T any](items []T, fn func(T, int) bool) int {
	for i, item := range items {
		if fn(item, i) {
			return i
		}
	}
	return -1
}

// FindLast returns the last element satisfying fn, scanning backward.
// Returns the zero value and false when no element matches.
func FindLast[T any](items []T, fn func(T, int) bool) (T, bool) {
	for i := len(items) - 1; i >= 0; i-- {
		if fn(items[i], i) {
			return items[i], true
		}
	}
	var zero T
	return zero, false
}

// FindLastIndex returns the index of the last element satisfying fn, or -1.
func FindLastIndex[T any](items []T, fn func(T, int) bool) int {
	for i := len(items) - 1; i >= 0; i-- {
		if fn(items[i], i) {
			return i
		}
	}
	return -1
}

// Includes reports whether items contains value under same-value-zero
// equality: strict == except that NaN matches NaN. The test is v != v, so
// composite values carrying a NaN field match each other regardless of
// their remaining fields. The optional fromIndex starts the scan there;
// negative values count back from the end, clamped to 0.
func Includes[T comparable](items []T, value T, fromIndex ...int) bool {
	start := 0
	if len(fromIndex) > 0 {
		start = relToIdx(fromIndex[0], len(items))
	}
	for i := start; i < len(items); i++ {
		if sameValueZero(items[i], value) {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first occurrence of value at or after
// fromIndex (default 0), or -1. Comparison is strict ==, so a NaN value is
// never found; use [Includes] for NaN-aware membership.
func IndexOf[T comparable](items []T, value T, fromIndex ...int) int {
	start := 0
	if len(fromIndex) > 0 {
		start = relToIdx(fromIndex[0], len(items))
	}
	for i := start; i < len(items); i++ {
		if items[i] == value {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of value at or
// before fromIndex (default the end), or -1. A negative fromIndex counts
// back from the end; one that still falls before index 0 means the scan
// never starts.
func LastIndexOf[T comparable](items []T, value T, fromIndex ...int) int {
	end := len(items) - 1
	if len(fromIndex) > 0 {
		n := fromIndex[0]
		if n < 0 {
			n += len(items)
			if n < 0 {
				return -1
			}
		}
		end = min(n, len(items)-1)
	}
	for i := end; i >= 0; i-- {
		if items[i] == value {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// ForEach calls fn(item, index) for every element in order.
func ForEach[T any](items []T, fn func(T, int)) {
	for i, item := range items {
		fn(item, i)
	}
}

// Reduce folds items left to right into a single value of type U.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// ReduceWithoutInitial folds items left to right, seeding the accumulator
// with the first element; a single-element slice returns that element
// without invoking fn. Returns [ErrReduceEmpty] for an empty slice.
func ReduceWithoutInitial[T any](items []T, fn func(acc, item T, index int) T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, ErrReduceEmpty
	}
	result := items[0]
	for i, item := range items[1:] {
		result = fn(result, item, i+1)
	}
	return result, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns a copy of the [start, end) window of items. bounds supplies
// an optional start (default 0) and end (default the length); negative
// values count back from the end and out-of-range values are clamped.
func Slice[T any](items []T, bounds ...int) []T {
	start, end := 0, len(items)
	if len(bounds) > 0 {
		start = relToIdx(bounds[0], len(items))
	}
	if len(bounds) > 1 {
		end = relToIdx(bounds[1], len(items))
	}
	if end < start {
		end = start
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// Concat returns a new slice holding items followed by each of the others
// in order. Nil slices contribute nothing.
func Concat[T any](items []T, others ...[]T) []T {
	total := len(items)
	for _, o := range others {
		total += len(o)
	}
	out := make([]T, 0, total)
	out = append(out, items...)
	for _, o := range others {
		out = append(out, o...)
	}
	return out
}

// Join renders every element in its fmt form and concatenates them with a
// separator, "," when none is given.
func Join[T any](items []T, sep ...string) string {
	separator := ","
	if len(sep) > 0 {
		separator = sep[0]
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%v", item)
	}
	return strings.Join(parts, separator)
}

// Fill overwrites every element of items in [start, end) with value and
// returns items for chaining. bounds normalizes and clamps like [Slice].
// Unlike every other helper in the package, Fill mutates its argument;
// Array.prototype.fill works on the array itself.
//
//	arr.Fill([]int{1, 2, 3, 4}, 0, 1, 3) // [1 0 0 4]
func Fill[T any](items []T, value T, bounds ...int) []T {
	start, end := 0, len(items)
	if len(bounds) > 0 {
		start = relToIdx(bounds[0], len(items))
	}
	if len(bounds) > 1 {
		end = relToIdx(bounds[1], len(items))
	}
	for i := start; i < end; i++ {
		items[i] = value
	}
	return items
}

// ─────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ─────────────────────────────────────────────────────────────────────────────

// sameValueZero compares with JavaScript's SameValueZero algorithm: strict
// equality, except NaN equals NaN. The a != a test is true for NaN and for
// any composite value holding one.
func sameValueZero[T comparable](a, b T) bool {
	if a == b {
		return true
	}
	return a != a && b != b
}

// relToIdx normalizes a possibly negative relative index against length,
// clamping into [0, length].
func relToIdx(rel, length int) int {
	if rel >= 0 {
		return min(rel, length)
	}
	return max(length+rel, 0)
}
