package seq

// ─────────────────────────────────────────────────────────────────────────────
// Adding & removing at the ends
// ─────────────────────────────────────────────────────────────────────────────

// Push appends the items in argument order and returns the new length, as
// Array.prototype.push does.
func (s *Sequence[T]) Push(items ...T) int {
	start := len(s.vals)
	s.vals = append(s.vals, items...)
	for i := range items {
		s.bits().Set(uint(start + i))
	}
	return len(s.vals)
}

// Pop removes the last slot and returns its element. On an empty sequence
// it returns the zero value and false without mutating. Popping a hole also
// returns the zero value and false, but the slot is removed; popping a
// stored zero value reports true, so the two stay distinguishable.
func (s *Sequence[T]) Pop() (T, bool) {
	var zero T
	if len(s.vals) == 0 {
		return zero, false
	}
	last := len(s.vals) - 1
	v, ok := s.vals[last], s.isPresent(last)
	s.clearSlot(last)
	s.vals = s.vals[:last]
	return v, ok
}

// Shift removes the first slot and returns its element, moving every
// remaining slot (and its hole state) down one index. The empty and hole
// cases report like [Sequence.Pop]. O(n).
func (s *Sequence[T]) Shift() (T, bool) {
	var zero T
	if len(s.vals) == 0 {
		return zero, false
	}
	v, ok := s.vals[0], s.isPresent(0)
	copy(s.vals, s.vals[1:])
	s.deleteBit(0)
	last := len(s.vals) - 1
	s.clearSlot(last)
	s.vals = s.vals[:last]
	return v, ok
}

// Unshift inserts the items in argument order at the front, moving the
// existing slots (and their hole state) up by len(items). Returns the new
// length, as Array.prototype.unshift does. O(n + len(items)).
func (s *Sequence[T]) Unshift(items ...T) int {
	if len(items) == 0 {
		return len(s.vals)
	}
	vals := make([]T, 0, len(items)+len(s.vals))
	vals = append(vals, items...)
	s.vals = append(vals, s.vals...)
	for range items {
		s.insertBit(0)
	}
	for i := range items {
		s.bits().Set(uint(i))
	}
	return len(s.vals)
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place rearrangement
// ─────────────────────────────────────────────────────────────────────────────

// Reverse reverses the sequence in place, holes travelling to their
// mirrored positions, and returns the receiver. Use [Sequence.ToReversed]
// for the non-mutating variant.
func (s *Sequence[T]) Reverse() *Sequence[T] {
	for i, j := 0, len(s.vals)-1; i < j; i, j = i+1, j-1 {
		pi, pj := s.isPresent(i), s.isPresent(j)
		s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
		s.bits().SetTo(uint(i), pj)
		s.bits().SetTo(uint(j), pi)
	}
	return s
}

// Fill overwrites every slot in [start, end) with v, making holes in that
// window present, and returns the receiver. bounds supplies an optional
// start (default 0) and end (default the length); negative values count
// back from the end and out-of-range values are clamped, the
// Array.prototype.fill rule. The length never changes.
//
//	seq.New(1, 2, 3, 4).Fill(0, 1, 3) // [1 0 0 4]
func (s *Sequence[T]) Fill(v T, bounds ...int) *Sequence[T] {
	start, end := s.window(bounds)
	for i := start; i < end; i++ {
		s.setSlot(i, v)
	}
	return s
}

// CopyWithin copies the [start, end) window of the sequence onto the slots
// beginning at target, in place, and returns the receiver. target and the
// optional bounds normalize and clamp like [Sequence.Fill]; the copied
// count is truncated so it never writes past the end. Hole state is copied
// along with the elements, and an overlapping window is handled
// back-to-front so slots are read before they are overwritten.
func (s *Sequence[T]) CopyWithin(target int, bounds ...int) *Sequence[T] {
	to := relToIdx(target, len(s.vals))
	from, end := s.window(bounds)
	count := min(end-from, len(s.vals)-to)
	if count <= 0 {
		return s
	}
	if from < to && to < from+count {
		for i := count - 1; i >= 0; i-- {
			s.copySlot(to+i, from+i)
		}
		return s
	}
	for i := 0; i < count; i++ {
		s.copySlot(to+i, from+i)
	}
	return s
}

// Splice removes deleteCount slots beginning at start and inserts items in
// their place, shifting the tail as needed; the removed window is returned
// as a new Sequence with its hole state intact. start normalizes and clamps
// like [Sequence.Fill]; deleteCount is clamped into [0, Len()-start], so
// Splice(i, s.Len()) deletes through the end. Use [Sequence.ToSpliced] for
// the non-mutating variant.
func (s *Sequence[T]) Splice(start, deleteCount int, items ...T) *Sequence[T] {
	from := relToIdx(start, len(s.vals))
	dc := min(max(deleteCount, 0), len(s.vals)-from)

	removed := s.Slice(from, from+dc)

	if dc > 0 {
		copy(s.vals[from:], s.vals[from+dc:])
		for i := 0; i < dc; i++ {
			s.deleteBit(from)
		}
		newLen := len(s.vals) - dc
		for i := newLen; i < len(s.vals); i++ {
			s.clearSlot(i)
		}
		s.vals = s.vals[:newLen]
	}

	if len(items) > 0 {
		s.vals = append(s.vals, make([]T, len(items))...)
		copy(s.vals[from+len(items):], s.vals[from:len(s.vals)-len(items)])
		for range items {
			s.insertBit(from)
		}
		for i, v := range items {
			s.setSlot(from+i, v)
		}
	}
	return removed
}

// window resolves an optional [start[, end]] bounds pair against the
// current length: both values normalize negative offsets and clamp into
// [0, Len()], so a reversed or out-of-range pair yields an empty window
// rather than a panic.
func (s *Sequence[T]) window(bounds []int) (start, end int) {
	start, end = 0, len(s.vals)
	if len(bounds) > 0 {
		start = relToIdx(bounds[0], len(s.vals))
	}
	if len(bounds) > 1 {
		end = relToIdx(bounds[1], len(s.vals))
	}
	return start, end
}
