package arr

import "errors"

// ErrReduceEmpty is returned by [ReduceWithoutInitial] when the slice has
// no element to seed the accumulator from, the condition JavaScript reports
// as "TypeError: Reduce of empty array with no initial value".
//
// Use [errors.Is] for comparisons:
//
//	total, err := arr.ReduceWithoutInitial(values, add)
//	if errors.Is(err, arr.ErrReduceEmpty) {
//	    // values was empty
//	}
var ErrReduceEmpty = errors.New("arr: reduce of empty slice with no initial value")
