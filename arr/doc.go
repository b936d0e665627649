// Package arr provides standalone, framework-agnostic re-implementations of
// the Array.prototype iteration and search methods for plain Go slices.
//
// # Slice helpers
//
// All helpers are generic (Go 1.18+) and operate on plain []T values, no
// wrapper type required:
//
//	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	sum, _ := arr.ReduceWithoutInitial([]int{1, 2, 3}, func(acc, n, _ int) int { return acc + n })
//	arr.Includes([]float64{1, math.NaN()}, math.NaN()) // true
//
// Except for [Fill], whose Array.prototype contract is in-place overwriting,
// every helper treats its input as read-only and returns fresh slices.
//
// # Relationship to package seq
//
// arr covers the dense, value-level subset of the JavaScript array surface.
// The stateful parts (length tracking, holes, push/pop/shift/unshift, sort,
// splice, JSON round-trips) need an owning handle and live on the
// [github.com/hasbyte1/go-jsarray/seq.Sequence] type.
//
// # Portability
//
// All helpers follow the map/filter/reduce pattern and translate directly to
// other languages without Go-specific idioms:
//
//   - JavaScript: Array.prototype.map/filter/reduce/includes/findLast
//   - Python: list comprehensions plus functools.reduce
package arr
