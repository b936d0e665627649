package seq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-jsarray/seq"
)

// ─────────────────────────────────────────────────────────────────────────────
// Push & Pop
// ─────────────────────────────────────────────────────────────────────────────

func TestPush(t *testing.T) {
	s := ints(1)
	require.Equal(t, 3, s.Push(2, 3), "push returns the new length")
	require.Equal(t, []int{1, 2, 3}, s.All())
	require.Equal(t, 3, s.Push(), "pushing nothing still reports the length")
}

func TestPushAfterHoles(t *testing.T) {
	s := seq.WithLength[int](2)
	require.Equal(t, 3, s.Push(9))
	require.Equal(t, []int{0, 1}, holesOf(s), "existing holes are untouched")
	v, ok := s.Get(2)
	require.True(t, ok)
	require.Equal(t, 9, v)
}

func TestPop(t *testing.T) {
	s := ints(1, 2, 3)
	v, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, 3, v)
	require.Equal(t, []int{1, 2}, s.All())
}

func TestPopEmpty(t *testing.T) {
	s := seq.Empty[int]()
	v, ok := s.Pop()
	require.False(t, ok)
	require.Zero(t, v)
	require.Zero(t, s.Len(), "popping empty does not mutate")
}

func TestPopHoleVsStoredZero(t *testing.T) {
	hole := seq.WithLength[int](2)
	v, ok := hole.Pop()
	require.False(t, ok, "a popped hole is absent")
	require.Zero(t, v)
	require.Equal(t, 1, hole.Len(), "the slot is removed all the same")

	zero := seq.New(0)
	v, ok = zero.Pop()
	require.True(t, ok, "a stored zero value is a real element")
	require.Zero(t, v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Shift & Unshift
// ─────────────────────────────────────────────────────────────────────────────

func TestShift(t *testing.T) {
	s := ints(1, 2, 3)
	v, ok := s.Shift()
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, []int{2, 3}, s.All())

	_, ok = seq.Empty[int]().Shift()
	require.False(t, ok)
}

func TestShiftMovesHolesDown(t *testing.T) {
	s := sparse(3, map[int]int{1: 9})
	v, ok := s.Shift()
	require.False(t, ok, "index 0 was a hole")
	require.Zero(t, v)
	require.Equal(t, 2, s.Len())

	got, ok := s.Get(0)
	require.True(t, ok, "the element formerly at index 1 moved down")
	require.Equal(t, 9, got)
	require.Equal(t, []int{1}, holesOf(s))
}

func TestShiftAfterGrowingEmpty(t *testing.T) {
	// Lengthening a sequence that began empty leaves every slot a hole; the
	// first shift must treat them like any other holes.
	s := seq.Empty[int]()
	require.NoError(t, s.SetLength(3))

	v, ok := s.Shift()
	require.False(t, ok, "the shifted slot was a hole")
	require.Zero(t, v)
	require.Equal(t, 2, s.Len())
	require.Equal(t, []int{0, 1}, holesOf(s))
}

func TestUnshift(t *testing.T) {
	s := seq.New(3, 4)
	require.Equal(t, 4, s.Unshift(1, 2), "unshift returns the new length")
	require.Equal(t, []int{1, 2, 3, 4}, s.All(), "items land in argument order")
	require.Equal(t, 4, s.Unshift(), "unshifting nothing changes nothing")
}

func TestUnshiftMovesHolesUp(t *testing.T) {
	s := sparse(2, map[int]int{1: 9})
	require.Equal(t, 3, s.Unshift(7))

	v, ok := s.Get(0)
	require.True(t, ok)
	require.Equal(t, 7, v)
	require.Equal(t, []int{1}, holesOf(s), "the old hole moved up with its neighbours")

	v, ok = s.Get(2)
	require.True(t, ok)
	require.Equal(t, 9, v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Reverse
// ─────────────────────────────────────────────────────────────────────────────

func TestReverse(t *testing.T) {
	s := ints(1, 2, 3)
	require.Same(t, s, s.Reverse(), "Reverse mutates in place and returns the receiver")
	require.Equal(t, []int{3, 2, 1}, s.All())

	require.Equal(t, []int{2, 1}, ints(1, 2).Reverse().All())
	require.Equal(t, []int{}, seq.Empty[int]().Reverse().All())
}

func TestReverseCarriesHoles(t *testing.T) {
	s := sparse(3, map[int]int{0: 1})
	s.Reverse()
	require.Equal(t, []int{0, 1}, holesOf(s), "the element moved to the far end, holes mirrored")
	v, ok := s.Get(2)
	require.True(t, ok)
	require.Equal(t, 1, v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Fill
// ─────────────────────────────────────────────────────────────────────────────

func TestFill(t *testing.T) {
	require.Equal(t, []int{1, 0, 0, 4}, ints(1, 2, 3, 4).Fill(0, 1, 3).All())
	require.Equal(t, []int{9, 9, 9}, ints(1, 2, 3).Fill(9).All(), "no bounds fills everything")
	require.Equal(t, []int{1, 2, 3, 9, 9}, ints(1, 2, 3, 4, 5).Fill(9, -2).All(),
		"negative start counts back from the end")
}

func TestFillClampsBounds(t *testing.T) {
	require.Equal(t, []int{1, 2, 3}, ints(1, 2, 3).Fill(9, 10).All(),
		"start past the end writes nothing")
	require.Equal(t, []int{9, 9, 9}, ints(1, 2, 3).Fill(9, -10, 99).All(),
		"far out-of-range bounds clamp to the full window")
	require.Equal(t, []int{1, 2, 3}, ints(1, 2, 3).Fill(9, 2, 1).All(),
		"a reversed window writes nothing")
}

func TestFillMakesHolesPresent(t *testing.T) {
	s := seq.WithLength[int](3).Fill(1)
	require.Empty(t, holesOf(s))
	require.Equal(t, []int{1, 1, 1}, s.All())

	partial := seq.WithLength[int](4).Fill(5, 1, 3)
	require.Equal(t, []int{0, 3}, holesOf(partial), "slots outside the window stay holes")
}

func TestFillReturnsReceiver(t *testing.T) {
	s := ints(1, 2)
	require.Same(t, s, s.Fill(0))
}

// ─────────────────────────────────────────────────────────────────────────────
// CopyWithin
// ─────────────────────────────────────────────────────────────────────────────

func TestCopyWithin(t *testing.T) {
	require.Equal(t, []int{4, 5, 3, 4, 5}, ints(1, 2, 3, 4, 5).CopyWithin(0, 3).All())
	require.Equal(t, []int{1, 4, 3, 4, 5}, ints(1, 2, 3, 4, 5).CopyWithin(1, 3, 4).All())
	require.Equal(t, []int{1, 2, 3, 1, 2}, ints(1, 2, 3, 4, 5).CopyWithin(-2).All(),
		"negative target counts back from the end")
}

func TestCopyWithinOverlap(t *testing.T) {
	// Window and destination overlap; slots must be read before they are
	// overwritten.
	require.Equal(t, []int{1, 1, 2, 3, 5}, ints(1, 2, 3, 4, 5).CopyWithin(1, 0, 3).All())
}

func TestCopyWithinPropagatesHoles(t *testing.T) {
	s := sparse(4, map[int]int{0: 1, 1: 2}) // [1 2 _ _]
	s.CopyWithin(0, 2)                      // copy the two trailing holes onto the front
	require.Equal(t, []int{0, 1, 2, 3}, holesOf(s), "copied holes punch holes")
}

func TestCopyWithinNoop(t *testing.T) {
	s := ints(1, 2, 3)
	require.Same(t, s, s.CopyWithin(3))
	require.Equal(t, []int{1, 2, 3}, s.All(), "an empty window changes nothing")
}

// ─────────────────────────────────────────────────────────────────────────────
// Splice
// ─────────────────────────────────────────────────────────────────────────────

func TestSpliceRemove(t *testing.T) {
	s := ints(1, 2, 3, 4, 5)
	removed := s.Splice(1, 2)
	require.Equal(t, []int{2, 3}, removed.All())
	require.Equal(t, []int{1, 4, 5}, s.All())
}

func TestSpliceInsert(t *testing.T) {
	s := ints(1, 4)
	removed := s.Splice(1, 0, 2, 3)
	require.Zero(t, removed.Len())
	require.Equal(t, []int{1, 2, 3, 4}, s.All())
}

func TestSpliceReplace(t *testing.T) {
	s := ints(1, 2, 3)
	removed := s.Splice(1, 1, 9, 8)
	require.Equal(t, []int{2}, removed.All())
	require.Equal(t, []int{1, 9, 8, 3}, s.All())
}

func TestSpliceNegativeStart(t *testing.T) {
	s := ints(1, 2, 3)
	removed := s.Splice(-1, 1)
	require.Equal(t, []int{3}, removed.All())
	require.Equal(t, []int{1, 2}, s.All())
}

func TestSpliceClampsDeleteCount(t *testing.T) {
	s := ints(1, 2, 3, 4)
	removed := s.Splice(1, 99)
	require.Equal(t, []int{2, 3, 4}, removed.All(), "deleteCount clamps to the remaining slots")
	require.Equal(t, []int{1}, s.All())

	s2 := ints(1, 2, 3)
	require.Zero(t, s2.Splice(1, -5).Len(), "negative deleteCount clamps to 0")
	require.Equal(t, []int{1, 2, 3}, s2.All())
}

func TestSpliceAppendsAtEnd(t *testing.T) {
	s := ints(1, 2)
	s.Splice(s.Len(), 0, 3)
	require.Equal(t, []int{1, 2, 3}, s.All())
}

func TestSpliceKeepsHoleState(t *testing.T) {
	s := sparse(5, map[int]int{0: 1, 2: 3, 4: 5}) // [1 _ 3 _ 5]
	removed := s.Splice(1, 3, 9)

	require.Equal(t, 3, removed.Len())
	require.Equal(t, []int{0, 2}, holesOf(removed), "the removed window keeps its holes")
	require.Equal(t, []int{3}, removed.Compact())

	require.Equal(t, []int{1, 9, 5}, s.All())
	require.Empty(t, holesOf(s))
}

func TestSpliceAfterGrowingEmpty(t *testing.T) {
	s := seq.New[int]()
	require.NoError(t, s.SetLength(3))

	removed := s.Splice(0, 1)
	require.Equal(t, 1, removed.Len())
	require.Equal(t, []int{0}, holesOf(removed), "the removed slot was a hole")
	require.Equal(t, 2, s.Len())
	require.Equal(t, []int{0, 1}, holesOf(s))
}

func TestSpliceInsertFarIntoGrownSequence(t *testing.T) {
	s := seq.WithLength[int](0)
	require.NoError(t, s.SetLength(100))

	s.Splice(70, 0, 9)
	require.Equal(t, 101, s.Len())

	v, ok := s.Get(70)
	require.True(t, ok)
	require.Equal(t, 9, v)
	require.False(t, s.Has(69))
	require.False(t, s.Has(71))
}
