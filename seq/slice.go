package seq

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Copying operations
//
// Everything here leaves the receiver untouched. Holes are carried into the
// result as holes, never materialized into zero values: the zero value of T
// is a legitimate element, not an undefined marker.
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns a copy of the [start, end) window. bounds supplies an
// optional start (default 0) and end (default the length); negative values
// count back from the end and out-of-range values are clamped, so a
// reversed pair yields an empty sequence, exactly like Array.prototype.slice.
func (s *Sequence[T]) Slice(bounds ...int) *Sequence[T] {
	start, end := s.window(bounds)
	out := WithLength[T](max(end-start, 0))
	for i := start; i < end; i++ {
		if s.isPresent(i) {
			out.setSlot(i-start, s.vals[i])
		}
	}
	return out
}

// Concat returns a new sequence holding the receiver's slots followed by
// each argument's slots in order. A nil argument contributes nothing.
func (s *Sequence[T]) Concat(others ...*Sequence[T]) *Sequence[T] {
	out := s.Clone()
	for _, o := range others {
		if o == nil {
			continue
		}
		base := len(out.vals)
		out.grow(base + len(o.vals))
		for i, ok := o.nextPresent(0); ok; i, ok = o.nextPresent(i + 1) {
			out.setSlot(base+i, o.vals[i])
		}
	}
	return out
}

// Join renders every slot and concatenates them with a separator, "," when
// none is given. Elements render in their fmt form; holes render as the
// empty string, the way Array.prototype.join renders empty slots.
func (s *Sequence[T]) Join(sep ...string) string {
	separator := ","
	if len(sep) > 0 {
		separator = sep[0]
	}
	parts := make([]string, len(s.vals))
	for i := range s.vals {
		if s.isPresent(i) {
			parts[i] = stringify(s.vals[i])
		}
	}
	return strings.Join(parts, separator)
}

// With returns a copy of the sequence with the slot at index replaced by v.
// A negative index counts back from the end. Unlike [Sequence.Set] it never
// grows the sequence: an index outside the current range returns
// [ErrIndexOutOfRange], matching the RangeError Array.prototype.with throws.
func (s *Sequence[T]) With(index int, v T) (*Sequence[T], error) {
	i := index
	if i < 0 {
		i += len(s.vals)
	}
	if i < 0 || i >= len(s.vals) {
		return nil, ErrIndexOutOfRange
	}
	out := s.Clone()
	out.setSlot(i, v)
	return out, nil
}

// ToReversed returns a reversed copy, leaving the receiver untouched.
func (s *Sequence[T]) ToReversed() *Sequence[T] {
	return s.Clone().Reverse()
}

// ToSpliced returns a copy with the [Sequence.Splice] surgery applied,
// leaving the receiver untouched; the removed window is discarded.
func (s *Sequence[T]) ToSpliced(start, deleteCount int, items ...T) *Sequence[T] {
	out := s.Clone()
	out.Splice(start, deleteCount, items...)
	return out
}
