package seq

// ─────────────────────────────────────────────────────────────────────────────
// Predicate tests
// ─────────────────────────────────────────────────────────────────────────────

// Every reports whether fn(element, index, s) returns true for every present
// element. It short-circuits on the first false result. Holes are skipped,
// and a sequence with no present elements is vacuously true, like
// Array.prototype.every on an empty array.
func (s *Sequence[T]) Every(fn func(T, int, *Sequence[T]) bool) bool {
	for i, ok := s.nextPresent(0); ok; i, ok = s.nextPresent(i + 1) {
		if !fn(s.vals[i], i, s) {
			return false
		}
	}
	return true
}

// Some reports whether fn(element, index, s) returns true for at least one
// present element. It short-circuits on the first true result. Holes are
// skipped, and a sequence with no present elements is vacuously false.
func (s *Sequence[T]) Some(fn func(T, int, *Sequence[T]) bool) bool {
	for i, ok := s.nextPresent(0); ok; i, ok = s.nextPresent(i + 1) {
		if fn(s.vals[i], i, s) {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicate search
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element for which fn(element, index, s) returns
// true. Unlike [Sequence.ForEach], Find visits every index: a hole is
// presented to fn as the zero value of T, the way Array.prototype.find sees
// undefined for empty slots. Returns the zero value and false when nothing
// matches.
func (s *Sequence[T]) Find(fn func(T, int, *Sequence[T]) bool) (T, bool) {
	for i, v := range s.vals {
		if fn(v, i, s) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element for which fn returns
// true, or -1. Holes are visited as the zero value of T, like [Sequence.Find].
func (s *Sequence[T]) FindIndex(fn func(T, int, *Sequence[T]) bool) int {
	for i, v := range s.vals {
		if fn(v, i, s) {
			return i
		}
	}
	return -1
}

// FindLast returns the last element for which fn returns true, scanning
// from the highest index down. Holes are visited as the zero value of T.
// Returns the zero value and false when nothing matches.
func (s *Sequence[T]) FindLast(fn func(T, int, *Sequence[T]) bool) (T, bool) {
	for i := len(s.vals) - 1; i >= 0; i-- {
		if fn(s.vals[i], i, s) {
			return s.vals[i], true
		}
	}
	var zero T
	return zero, false
}

// FindLastIndex returns the index of the last element for which fn returns
// true, scanning from the highest index down, or -1. Holes are visited as
// the zero value of T.
func (s *Sequence[T]) FindLastIndex(fn func(T, int, *Sequence[T]) bool) int {
	for i := len(s.vals) - 1; i >= 0; i-- {
		if fn(s.vals[i], i, s) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Equality search (package level)
//
// A method cannot narrow its receiver's constraint from any to comparable,
// so the ==-based searches live here as stand-alone functions, mirroring the
// type-changing transforms in funcs.go.
// ─────────────────────────────────────────────────────────────────────────────

// Includes reports whether the sequence contains v, compared with
// same-value-zero equality: strict == except that a NaN element matches a
// NaN target, which plain == can never do. Holes participate as the zero
// value of T, so Includes can "see" empty slots the way
// [1,,3].includes(undefined) does.
//
// The NaN test is v != v, so for composite element types any two values
// that are each unequal to themselves (structs with a NaN field) match
// regardless of their remaining fields.
//
// The optional fromIndex starts the scan at that index; a negative value
// counts back from the end and is clamped to 0.
func Includes[T comparable](s *Sequence[T], v T, fromIndex ...int) bool {
	start := 0
	if len(fromIndex) > 0 {
		start = relToIdx(fromIndex[0], len(s.vals))
	}
	for i := start; i < len(s.vals); i++ {
		if sameValueZero(s.vals[i], v) {
			return true
		}
	}
	return false
}

// IndexOf returns the first index at or after fromIndex (default 0) whose
// element is strictly equal to v, or -1. Strict equality means a NaN target
// is never found; use [Includes] for NaN-aware membership. Holes are
// skipped, as Array.prototype.indexOf skips empty slots.
func IndexOf[T comparable](s *Sequence[T], v T, fromIndex ...int) int {
	start := 0
	if len(fromIndex) > 0 {
		start = relToIdx(fromIndex[0], len(s.vals))
	}
	for i := start; i < len(s.vals); i++ {
		if s.isPresent(i) && s.vals[i] == v {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the last index at or before fromIndex (default the
// end) whose element is strictly equal to v, or -1. A negative fromIndex
// counts back from the end; one that still falls before index 0 means the
// scan never starts. Holes are skipped.
func LastIndexOf[T comparable](s *Sequence[T], v T, fromIndex ...int) int {
	end := len(s.vals) - 1
	if len(fromIndex) > 0 {
		n := fromIndex[0]
		if n < 0 {
			n += len(s.vals)
			if n < 0 {
				return -1
			}
		}
		end = min(n, len(s.vals)-1)
	}
	for i := end; i >= 0; i-- {
		if s.isPresent(i) && s.vals[i] == v {
			return i
		}
	}
	return -1
}

// sameValueZero compares with JavaScript's SameValueZero algorithm: strict
// equality, except NaN equals NaN. The a != a test is true for NaN and for
// any composite value holding one, so the exception widens to those too.
func sameValueZero[T comparable](a, b T) bool {
	if a == b {
		return true
	}
	return a != a && b != b
}
