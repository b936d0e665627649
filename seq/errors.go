package seq

import "errors"

// Sentinel errors returned by Sequence operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := s.ReduceWithoutInitial(add)
//	if errors.Is(err, seq.ErrReduceEmpty) {
//	    // sequence had no elements to seed the accumulator from
//	}
var (
	// ErrReduceEmpty is returned by [Sequence.ReduceWithoutInitial] when the
	// sequence has no present elements to seed the accumulator from. It is
	// the counterpart of JavaScript's "Reduce of empty array with no initial
	// value" TypeError.
	ErrReduceEmpty = errors.New("seq: reduce of empty sequence with no initial value")

	// ErrIndexOutOfRange is returned when an index must name an existing
	// slot but does not: [Sequence.Set] with a negative index, or
	// [Sequence.With] outside [-Len(), Len()).
	ErrIndexOutOfRange = errors.New("seq: index out of range")

	// ErrInvalidLength is returned by [Sequence.SetLength] when the
	// requested length is negative. It is the counterpart of JavaScript's
	// "Invalid array length" RangeError.
	ErrInvalidLength = errors.New("seq: invalid sequence length")
)
