// Package seq provides a generic, mutable Sequence type that reproduces the
// semantics of JavaScript's Array in Go, sparse arrays included.
//
// # Overview
//
// The central type is [Sequence], an index-addressable container backed
// by a slice and a per-slot presence bitmap, exposing the familiar
// Array.prototype surface:
//
//	s := seq.New(3, 1, 2)
//	s.Push(5, 4)                 // [3 1 2 5 4], returns 5
//	s.Sort(seq.Ascending[int])   // [1 2 3 4 5]
//	evens := s.Filter(func(n, _ int, _ *seq.Sequence[int]) bool {
//	    return n%2 == 0
//	})
//	evens.Join(", ")             // "2, 4"
//
// # Mutability
//
// Sequence deliberately mirrors JavaScript's split between mutating and
// copying methods. Push, Pop, Shift, Unshift, Sort, Reverse, Fill,
// CopyWithin, Splice, Set, Delete and SetLength change the receiver in
// place; Map, Filter, Slice, Concat, With, ToSorted, ToReversed and
// ToSpliced return a new Sequence and leave the receiver alone. A Sequence
// is therefore not safe for unsynchronised concurrent use; clone it or keep
// it goroutine-local.
//
// # Holes
//
// Array(5) in JavaScript makes a length-5 array with no elements in it.
// [Sequence] models those empty slots as first-class holes: [WithLength]
// creates them, [Sequence.Delete] punches them, and [Sequence.Has] tells
// them apart from stored zero values. Operations treat holes the way their
// JavaScript namesakes do:
//
//   - Map, Filter, ForEach, Reduce, Every and Some skip holes entirely.
//   - Find, FindIndex, FindLast, FindLastIndex and Includes visit holes and
//     present them as the zero value of T, the undefined analogue.
//   - IndexOf and LastIndexOf skip holes.
//   - Sort and ToSorted move holes after all present elements.
//   - Join renders holes as the empty string; JSON encodes them as null.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are exposed as package-level
// functions:
//
//	// Method-based (returns Sequence[any]):
//	s.Map(func(n, _ int, _ *seq.Sequence[int]) any { return n * 2 })
//
//	// Package-level (returns Sequence[string], fully typed):
//	seq.Map(s, func(n, _ int, _ *seq.Sequence[int]) string { return strconv.Itoa(n) })
//
// The same restriction keeps ==-based searches out of the method set: a
// method cannot require comparable when the type is declared for any T.
//
// Package-level functions: [Map], [FlatMap], [Flat], [Reduce],
// [ReduceRight], [Includes], [IndexOf], [LastIndexOf], [FromJSON].
//
// # Divergences from JavaScript
//
// Where JavaScript leans on undefined, Go wants something typed:
//
//   - "No result" is the (T, bool) comma-ok pair, so an absent answer is
//     distinguishable from a stored zero value.
//   - Out-of-range and invalid-length conditions return sentinel errors
//     ([ErrIndexOutOfRange], [ErrInvalidLength]) instead of throwing.
//   - Copying operations (With, ToSorted, ToSpliced) keep holes as holes
//     instead of materialising undefined, since the zero value of T is a
//     real value here.
//
// # Portability
//
// The Sequence API is named after Array.prototype, so code translates
// almost mechanically:
//
//   - JavaScript: Array.prototype methods, 1-to-1 where listed above
//   - Python: list plus itertools (holes have no direct analogue)
//   - Go without this package: slices and hand-written loops
package seq
