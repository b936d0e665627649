package seq

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls fn(element, index, s) for every present element in ascending
// index order. Holes are skipped, as Array.prototype.forEach skips them.
func (s *Sequence[T]) ForEach(fn func(T, int, *Sequence[T])) {
	for i, ok := s.nextPresent(0); ok; i, ok = s.nextPresent(i + 1) {
		fn(s.vals[i], i, s)
	}
}

// Each is an alias for [Sequence.ForEach].
func (s *Sequence[T]) Each(fn func(T, int, *Sequence[T])) {
	s.ForEach(fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new Sequence[any] of the same length with each present
// element replaced by fn(element, index, s). Holes are skipped (fn is not
// invoked for them) and remain holes in the result, so the sparse shape of
// the receiver is preserved.
//
// For type-safe transformation to a concrete type U, use the package-level
// [Map] function instead.
func (s *Sequence[T]) Map(fn func(T, int, *Sequence[T]) any) *Sequence[any] {
	out := WithLength[any](len(s.vals))
	for i, ok := s.nextPresent(0); ok; i, ok = s.nextPresent(i + 1) {
		out.setSlot(i, fn(s.vals[i], i, s))
	}
	return out
}

// FlatMap maps each present element to a []any via fn and flattens the
// results one level into a dense sequence.
//
// For type-safe flat-mapping, use the package-level [FlatMap] function.
func (s *Sequence[T]) FlatMap(fn func(T, int, *Sequence[T]) []any) *Sequence[any] {
	out := make([]any, 0, len(s.vals))
	for i, ok := s.nextPresent(0); ok; i, ok = s.nextPresent(i + 1) {
		out = append(out, fn(s.vals[i], i, s)...)
	}
	return fromDense(out)
}

// Filter returns a new dense sequence with only the present elements for
// which fn(element, index, s) returns true, in their original order. The
// result's length is the number of kept elements; the receiver is unchanged.
func (s *Sequence[T]) Filter(fn func(T, int, *Sequence[T]) bool) *Sequence[T] {
	out := make([]T, 0, len(s.vals))
	for i, ok := s.nextPresent(0); ok; i, ok = s.nextPresent(i + 1) {
		if fn(s.vals[i], i, s) {
			out = append(out, s.vals[i])
		}
	}
	return fromDense(out)
}

// ─────────────────────────────────────────────────────────────────────────────
// Reduction
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds the present elements left to right into a single value of
// the same type T, starting from initial. Holes are skipped.
//
// For reductions that accumulate into a different type, use the
// package-level [Reduce] function.
func (s *Sequence[T]) Reduce(fn func(acc, v T, index int, s *Sequence[T]) T, initial T) T {
	acc := initial
	for i, ok := s.nextPresent(0); ok; i, ok = s.nextPresent(i + 1) {
		acc = fn(acc, s.vals[i], i, s)
	}
	return acc
}

// ReduceWithoutInitial folds the present elements left to right, seeding
// the accumulator with the first present element, the way a single-argument
// Array.prototype.reduce call does. A sequence with exactly one present
// element returns that element without invoking fn.
//
// Returns [ErrReduceEmpty] when there is no present element to seed from;
// unlike a missing search result, that condition is an error, matching the
// TypeError JavaScript throws.
func (s *Sequence[T]) ReduceWithoutInitial(fn func(acc, v T, index int, s *Sequence[T]) T) (T, error) {
	first, ok := s.nextPresent(0)
	if !ok {
		var zero T
		return zero, ErrReduceEmpty
	}
	acc := s.vals[first]
	for i, ok := s.nextPresent(first + 1); ok; i, ok = s.nextPresent(i + 1) {
		acc = fn(acc, s.vals[i], i, s)
	}
	return acc, nil
}
