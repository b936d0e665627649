package seq

// This file holds the package-level functional transforms whose result type
// differs from the element type of the input sequence.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They are designed to be
// composable with method-chaining calls:
//
//	lengths := seq.Map(
//	    seq.New("go", "js", "py").Filter(func(s string, _ int, _ *seq.Sequence[string]) bool {
//	        return s != "py"
//	    }),
//	    func(s string, _ int, _ *seq.Sequence[string]) int { return len(s) },
//	)

// Map applies fn(element, index, s) to every present element and returns a
// new Sequence[U] of the same length. Holes are skipped and remain holes in
// the result, preserving the sparse shape of s.
//
//	doubled := seq.Map(seq.New(1, 2, 3),
//	    func(n, _ int, _ *seq.Sequence[int]) string { return strconv.Itoa(n * 2) })
func Map[T, U any](s *Sequence[T], fn func(T, int, *Sequence[T]) U) *Sequence[U] {
	out := WithLength[U](len(s.vals))
	for i, ok := s.nextPresent(0); ok; i, ok = s.nextPresent(i + 1) {
		out.setSlot(i, fn(s.vals[i], i, s))
	}
	return out
}

// FlatMap applies fn to every present element (producing a []U per element)
// and flattens the results into a single dense Sequence[U].
//
//	words := seq.FlatMap(seq.New("hello world", "foo bar"),
//	    func(s string, _ int, _ *seq.Sequence[string]) []string { return strings.Fields(s) })
func FlatMap[T, U any](s *Sequence[T], fn func(T, int, *Sequence[T]) []U) *Sequence[U] {
	out := make([]U, 0, len(s.vals))
	for i, ok := s.nextPresent(0); ok; i, ok = s.nextPresent(i + 1) {
		out = append(out, fn(s.vals[i], i, s)...)
	}
	return fromDense(out)
}

// Flat flattens a sequence of sequences one level into a dense Sequence[T].
// Holes in the outer sequence, nil inner sequences and holes inside the
// inner sequences are all dropped, as Array.prototype.flat drops empty slots.
func Flat[T any](s *Sequence[*Sequence[T]]) *Sequence[T] {
	out := make([]T, 0, len(s.vals))
	for i, ok := s.nextPresent(0); ok; i, ok = s.nextPresent(i + 1) {
		if inner := s.vals[i]; inner != nil {
			out = append(out, inner.Compact()...)
		}
	}
	return fromDense(out)
}

// Reduce folds the present elements of s left to right into a single value
// of type U, starting from initial. Holes are skipped.
//
//	sum := seq.Reduce(seq.New(1, 2, 3, 4),
//	    func(acc, n, _ int, _ *seq.Sequence[int]) int { return acc + n }, 0)
func Reduce[T, U any](s *Sequence[T], fn func(U, T, int, *Sequence[T]) U, initial U) U {
	acc := initial
	for i, ok := s.nextPresent(0); ok; i, ok = s.nextPresent(i + 1) {
		acc = fn(acc, s.vals[i], i, s)
	}
	return acc
}

// ReduceRight folds the present elements of s right to left into a single
// value of type U, starting from initial. Holes are skipped.
func ReduceRight[T, U any](s *Sequence[T], fn func(U, T, int, *Sequence[T]) U, initial U) U {
	acc := initial
	for i := len(s.vals) - 1; i >= 0; i-- {
		if s.isPresent(i) {
			acc = fn(acc, s.vals[i], i, s)
		}
	}
	return acc
}
