package seq

import "sort"

// Sort sorts the sequence in place and returns the receiver for chaining.
// Without an argument it orders by [Lexicographic], the JavaScript default;
// pass a [Comparator] to override. Holes are moved after all present
// elements, the way Array.prototype.sort sends empty slots to the tail.
//
// The algorithm is the classic exchange sort: position i is compared against
// every later position and swapped whenever the pair is out of order, so
// each pass settles the minimum of the remainder. It runs in O(n²) and is
// NOT stable: elements that compare equal may not keep their relative
// order. Use [Sequence.ToSorted] when stability matters.
func (s *Sequence[T]) Sort(cmp ...Comparator[T]) *Sequence[T] {
	c := comparatorOrDefault(cmp)
	tmp := s.Compact()
	for i := 0; i < len(tmp)-1; i++ {
		for j := i + 1; j < len(tmp); j++ {
			if c(tmp[i], tmp[j]) > 0 {
				tmp[i], tmp[j] = tmp[j], tmp[i]
			}
		}
	}
	s.scatterSorted(tmp)
	return s
}

// ToSorted returns a sorted copy, leaving the receiver untouched. Unlike
// [Sequence.Sort] the ordering is stable (sort.SliceStable underneath), so
// equal-ranking elements keep their relative order. Holes move to the tail
// of the copy.
func (s *Sequence[T]) ToSorted(cmp ...Comparator[T]) *Sequence[T] {
	c := comparatorOrDefault(cmp)
	out := s.Clone()
	tmp := out.Compact()
	sort.SliceStable(tmp, func(i, j int) bool { return c(tmp[i], tmp[j]) < 0 })
	out.scatterSorted(tmp)
	return out
}

// scatterSorted writes the sorted present elements back to the front of the
// sequence and turns every slot after them into a hole.
func (s *Sequence[T]) scatterSorted(sorted []T) {
	for i, v := range sorted {
		s.setSlot(i, v)
	}
	for i := len(sorted); i < len(s.vals); i++ {
		s.clearSlot(i)
	}
}

func comparatorOrDefault[T any](cmps []Comparator[T]) Comparator[T] {
	if len(cmps) > 0 && cmps[0] != nil {
		return cmps[0]
	}
	return Lexicographic[T]
}
