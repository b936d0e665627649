package seq_test

import (
	"testing"

	"github.com/hasbyte1/go-jsarray/seq"
)

// FuzzFromJSON ensures that FromJSON never panics on arbitrary input and that
// any sequence it accepts survives a serialise/re-parse round trip unchanged,
// holes included.
//
// Run with: go test -fuzz=FuzzFromJSON ./seq/
func FuzzFromJSON(f *testing.F) {
	seeds := []string{
		"[]",
		"[1,2,3]",
		"[1,null,3]",
		"[null,null]",
		"not json",
		"{}",
		`["a"]`,
		"[[1],null]",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		s, err := seq.FromJSON[int](data)
		if err != nil {
			return // rejecting the input is fine, panicking is not
		}
		out, err := s.ToJSON()
		if err != nil {
			t.Fatalf("ToJSON failed after FromJSON succeeded: %v", err)
		}
		again, err := seq.FromJSON[int](out)
		if err != nil {
			t.Fatalf("re-parsing own output %q failed: %v", out, err)
		}
		if again.Len() != s.Len() {
			t.Fatalf("round-trip length mismatch: %d != %d", again.Len(), s.Len())
		}
		if again.String() != s.String() {
			t.Fatalf("round-trip mismatch: %s != %s", again, s)
		}
	})
}

// FuzzIndexNormalization ensures the operations that take relative start/end
// indices clamp every input into range instead of panicking, and that their
// length bookkeeping stays consistent.
//
// Run with: go test -fuzz=FuzzIndexNormalization ./seq/
func FuzzIndexNormalization(f *testing.F) {
	f.Add(uint8(5), 1, 3)
	f.Add(uint8(5), -2, -1)
	f.Add(uint8(0), 0, 0)
	f.Add(uint8(3), -100, 100)
	f.Add(uint8(10), 9, 2)

	f.Fuzz(func(t *testing.T, n uint8, a, b int) {
		base := makeInts(int(n))

		sl := base.Slice(a, b)
		if sl.Len() > base.Len() {
			t.Fatalf("Slice(%d, %d) on len %d produced len %d", a, b, base.Len(), sl.Len())
		}

		filled := base.Clone().Fill(7, a, b)
		if filled.Len() != base.Len() {
			t.Fatalf("Fill(%d, %d) changed length: %d != %d", a, b, filled.Len(), base.Len())
		}

		spliced := base.Clone()
		removed := spliced.Splice(a, b)
		if spliced.Len()+removed.Len() != base.Len() {
			t.Fatalf("Splice(%d, %d): %d kept + %d removed != %d",
				a, b, spliced.Len(), removed.Len(), base.Len())
		}

		cw := base.Clone().CopyWithin(a, b)
		if cw.Len() != base.Len() {
			t.Fatalf("CopyWithin(%d, %d) changed length: %d != %d", a, b, cw.Len(), base.Len())
		}

		// A sequence grown from empty tracks no presence bits yet; the
		// structural mutators must cope with that all-hole shape too.
		grown := seq.Empty[int]()
		if err := grown.SetLength(int(n)); err != nil {
			t.Fatalf("SetLength(%d) failed: %v", n, err)
		}
		grown.Shift()
		before := grown.Len()
		gone := grown.Splice(a, b, 7)
		if grown.Len()+gone.Len() != before+1 {
			t.Fatalf("Splice(%d, %d, x) after regrowth: %d kept + %d removed != %d + 1",
				a, b, grown.Len(), gone.Len(), before)
		}
	})
}
