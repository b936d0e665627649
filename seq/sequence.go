package seq

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Sequence is a generic, mutable, index-addressable container of T that
// reproduces the semantics of JavaScript's Array, including sparse arrays:
// an index inside [0, Len()) may hold no element at all (a "hole") while
// still counting toward the length.
//
// # Creating a sequence
//
//	s := seq.New(1, 2, 3, 4, 5)
//	s := seq.From([]string{"a", "b", "c"})
//	s := seq.Empty[int]()
//	s := seq.WithLength[int](5) // five holes, like Array(5)
//
// # Mutating vs copying operations
//
// Unlike its cousins in typical Go collection libraries, Sequence is
// mutable on purpose: Push, Pop, Shift, Unshift, Sort, Reverse, Fill,
// CopyWithin, Splice, Set, Delete and SetLength all operate in place on
// the receiver, exactly as their JavaScript namesakes mutate the array
// they are called on. Every other operation (Map, Filter, Slice, Concat,
// ToSorted, ToReversed, ToSpliced, With, ...) leaves the receiver
// untouched and returns a new Sequence.
//
// # Holes
//
// A hole is an in-range slot with no stored element, tracked by an
// explicit per-slot presence bitmap. Iteration-style operations (Map,
// Filter, ForEach, Every, Some, Reduce) skip holes; search-style
// operations (Find, FindIndex, Includes) visit them and present the zero
// value of T, the closest Go analogue of undefined. Each operation's doc
// comment states its hole behavior.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, nor
// to narrow the receiver's constraint. Operations that change the element
// type (Map, FlatMap, Reduce, ReduceRight, Flat) or require comparable
// elements (Includes, IndexOf, LastIndexOf) are exposed as package-level
// functions:
//
//	squares := seq.Map(s, func(n, _ int, _ *seq.Sequence[int]) int {
//	    return n * n
//	})
//	found := seq.Includes(s, 3)
//
// # JavaScript equivalents
//
// Method names map 1-to-1 to Array.prototype methods where possible.
// Differences:
//   - Callbacks receive (element, index, sequence) with a fixed
//     three-argument signature; there is no thisArg, since Go closures
//     carry their own context.
//   - "No value" results use the (T, bool) comma-ok form instead of
//     undefined, so an absent result is distinguishable from a stored
//     zero value.
//   - Copying operations preserve holes as holes rather than materialising
//     undefined: the zero value of T is a real value here, not a marker.
type Sequence[T any] struct {
	vals    []T
	present *bitset.BitSet
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a dense Sequence from a variadic list of elements (copied).
func New[T any](elements ...T) *Sequence[T] {
	dst := make([]T, len(elements))
	copy(dst, elements)
	return fromDense(dst)
}

// From creates a dense Sequence from a slice (the slice is copied).
func From[T any](elements []T) *Sequence[T] {
	dst := make([]T, len(elements))
	copy(dst, elements)
	return fromDense(dst)
}

// Empty creates an empty Sequence of type T.
func Empty[T any]() *Sequence[T] {
	return &Sequence[T]{vals: []T{}, present: bitset.New(0)}
}

// WithLength creates a Sequence of n holes, the equivalent of Array(n).
// A non-positive n yields an empty sequence.
func WithLength[T any](n int) *Sequence[T] {
	if n < 0 {
		n = 0
	}
	return &Sequence[T]{vals: make([]T, n), present: bitset.New(uint(n))}
}

// ─────────────────────────────────────────────────────────────────────────────
// Length & emptiness
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the length of the sequence, holes included.
func (s *Sequence[T]) Len() int { return len(s.vals) }

// Count is an alias for [Sequence.Len].
func (s *Sequence[T]) Count() int { return s.Len() }

// IsEmpty reports whether the sequence has length 0.
func (s *Sequence[T]) IsEmpty() bool { return len(s.vals) == 0 }

// IsNotEmpty reports whether the sequence has at least one slot.
func (s *Sequence[T]) IsNotEmpty() bool { return len(s.vals) > 0 }

// SetLength truncates or extends the sequence in place, like assigning to
// a JavaScript array's length property. Truncating drops the slots beyond
// n; extending appends holes. Returns [ErrInvalidLength] if n is negative.
func (s *Sequence[T]) SetLength(n int) error {
	if n < 0 {
		return ErrInvalidLength
	}
	if n < len(s.vals) {
		for i := n; i < len(s.vals); i++ {
			s.clearSlot(i)
		}
		s.vals = s.vals[:n]
		return nil
	}
	s.grow(n)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Element access
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range or the slot
// is a hole.
func (s *Sequence[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(s.vals) {
		return zero, false
	}
	if !s.isPresent(index) {
		return zero, false
	}
	return s.vals[index], true
}

// At is [Sequence.Get] with negative indexing: At(-1) addresses the last
// slot, like Array.prototype.at.
func (s *Sequence[T]) At(index int) (T, bool) {
	if index < 0 {
		index += len(s.vals)
	}
	return s.Get(index)
}

// Set stores v at index, making the slot present. Setting at or beyond
// the current length extends the sequence with holes first, exactly like
// indexed assignment past the end of a JavaScript array. Returns
// [ErrIndexOutOfRange] if index is negative.
func (s *Sequence[T]) Set(index int, v T) error {
	if index < 0 {
		return ErrIndexOutOfRange
	}
	if index >= len(s.vals) {
		s.grow(index + 1)
	}
	s.setSlot(index, v)
	return nil
}

// Delete punches a hole at index without changing the length, like the
// delete operator on an array element. Reports whether index was in range.
func (s *Sequence[T]) Delete(index int) bool {
	if index < 0 || index >= len(s.vals) {
		return false
	}
	s.clearSlot(index)
	return true
}

// Has reports whether index is in range and the slot holds an element.
// A hole is not "had" even though it counts toward the length.
func (s *Sequence[T]) Has(index int) bool {
	return index >= 0 && index < len(s.vals) && s.isPresent(index)
}

// ─────────────────────────────────────────────────────────────────────────────
// Snapshots
// ─────────────────────────────────────────────────────────────────────────────

// All returns a full-length dense copy of the sequence, with holes
// rendered as the zero value of T (the spread-operator view).
func (s *Sequence[T]) All() []T {
	out := make([]T, len(s.vals))
	copy(out, s.vals)
	return out
}

// ToSlice is an alias for [Sequence.All].
func (s *Sequence[T]) ToSlice() []T { return s.All() }

// Compact returns only the present elements, in order. The result is
// shorter than Len() when the sequence has holes.
func (s *Sequence[T]) Compact() []T {
	out := make([]T, 0, len(s.vals))
	for i, ok := s.nextPresent(0); ok; i, ok = s.nextPresent(i + 1) {
		out = append(out, s.vals[i])
	}
	return out
}

// Keys returns every index of the sequence (0 … Len()-1), holes included,
// like Array.prototype.keys.
func (s *Sequence[T]) Keys() []int {
	keys := make([]int, len(s.vals))
	for i := range keys {
		keys[i] = i
	}
	return keys
}

// Entries returns the (index, element) pairs of the present slots in
// ascending index order.
func (s *Sequence[T]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, len(s.vals))
	for i, ok := s.nextPresent(0); ok; i, ok = s.nextPresent(i + 1) {
		out = append(out, Entry[T]{Index: i, Value: s.vals[i]})
	}
	return out
}

// Clone returns an independent copy of the sequence, values and holes.
func (s *Sequence[T]) Clone() *Sequence[T] {
	vals := make([]T, len(s.vals))
	copy(vals, s.vals)
	out := &Sequence[T]{vals: vals}
	if s.present != nil {
		out.present = s.present.Clone()
	} else {
		out.present = bitset.New(uint(len(vals)))
	}
	return out
}

// String returns the JSON representation of the sequence, with holes
// rendered as null. It implements [fmt.Stringer].
func (s *Sequence[T]) String() string {
	b, err := s.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", s.vals)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Internal slot bookkeeping
//
// Invariants: no presence bit is ever set at an index >= len(vals), and
// vals[i] is the zero value whenever slot i is a hole. The bitmap may
// track fewer positions than len(vals); untracked slots read as holes.
// A nil bitmap is equivalent to all-holes, so the zero value of Sequence
// is a valid empty sequence.
// ─────────────────────────────────────────────────────────────────────────────

// fromDense wraps vals without copying and marks every slot present.
func fromDense[T any](vals []T) *Sequence[T] {
	b := bitset.New(uint(len(vals)))
	for i := range vals {
		b.Set(uint(i))
	}
	return &Sequence[T]{vals: vals, present: b}
}

// bits returns the presence bitmap, allocating it on first write.
func (s *Sequence[T]) bits() *bitset.BitSet {
	if s.present == nil {
		s.present = bitset.New(uint(len(s.vals)))
	}
	return s.present
}

func (s *Sequence[T]) isPresent(i int) bool {
	return s.present != nil && s.present.Test(uint(i))
}

// setSlot stores v at i and marks the slot present. i must be in range.
func (s *Sequence[T]) setSlot(i int, v T) {
	s.vals[i] = v
	s.bits().Set(uint(i))
}

// clearSlot turns slot i into a hole, zeroing the value so stale elements
// do not pin memory. i must be in range.
func (s *Sequence[T]) clearSlot(i int) {
	var zero T
	s.vals[i] = zero
	if s.present != nil {
		s.present.Clear(uint(i))
	}
}

// copySlot copies slot from onto slot to, hole state included.
func (s *Sequence[T]) copySlot(to, from int) {
	if s.isPresent(from) {
		s.setSlot(to, s.vals[from])
	} else {
		s.clearSlot(to)
	}
}

// deleteBit removes the presence bit at i, shifting higher bits down.
// Skipped for positions the bitmap does not track: no bit is set there,
// and bitset's DeleteAt does not bounds-check its word access.
func (s *Sequence[T]) deleteBit(i int) {
	if s.present != nil && uint(i) < s.present.Len() {
		s.present.DeleteAt(uint(i))
	}
}

// insertBit inserts a cleared presence bit at i, shifting higher bits up.
// Skipped for untracked positions: shifting clear bits changes nothing,
// and InsertAt shares DeleteAt's unchecked word access.
func (s *Sequence[T]) insertBit(i int) {
	if s.present != nil && uint(i) < s.present.Len() {
		s.present.InsertAt(uint(i))
	}
}

// nextPresent returns the first present index at or after from.
func (s *Sequence[T]) nextPresent(from int) (int, bool) {
	if s.present == nil {
		return 0, false
	}
	i, ok := s.present.NextSet(uint(from))
	return int(i), ok
}

// grow extends the sequence to length n with holes. No-op if n <= Len().
func (s *Sequence[T]) grow(n int) {
	if n <= len(s.vals) {
		return
	}
	s.vals = append(s.vals, make([]T, n-len(s.vals))...)
}

// relToIdx normalizes a possibly negative relative index against length,
// clamping into [0, length]: a negative rel counts back from the end.
func relToIdx(rel, length int) int {
	if rel >= 0 {
		return min(rel, length)
	}
	return max(length+rel, 0)
}
