package seq

import (
	"bytes"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	json "github.com/goccy/go-json"
)

// MarshalJSON encodes the sequence as a JSON array with every hole encoded
// as null, matching what JSON.stringify produces for a sparse array.
func (s *Sequence[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := range s.vals {
		if i > 0 {
			buf.WriteByte(',')
		}
		if !s.isPresent(i) {
			buf.WriteString("null")
			continue
		}
		b, err := json.Marshal(s.vals[i])
		if err != nil {
			return nil, fmt.Errorf("seq: marshal element %d: %w", i, err)
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON array into the sequence, replacing its
// contents. A null element decodes to a hole, the inverse of
// [Sequence.MarshalJSON]. That mapping makes null indistinguishable from a
// hole on the wire: element types whose own encoding is null (a nil
// pointer, a nil any) round-trip into holes rather than present nil values.
func (s *Sequence[T]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("seq: unmarshal: %w", err)
	}
	vals := make([]T, len(raw))
	present := bitset.New(uint(len(raw)))
	for i, msg := range raw {
		if isJSONNull(msg) {
			continue
		}
		if err := json.Unmarshal(msg, &vals[i]); err != nil {
			return fmt.Errorf("seq: unmarshal element %d: %w", i, err)
		}
		present.Set(uint(i))
	}
	s.vals = vals
	s.present = present
	return nil
}

// ToJSON serialises the sequence to a JSON array, holes as null.
func (s *Sequence[T]) ToJSON() ([]byte, error) {
	return s.MarshalJSON()
}

// FromJSON builds a sequence from a JSON array, null elements becoming
// holes.
//
//	s, err := seq.FromJSON[int]([]byte("[1,null,3]"))
func FromJSON[T any](data []byte) (*Sequence[T], error) {
	s := &Sequence[T]{}
	if err := s.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return s, nil
}

func isJSONNull(msg json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(msg), []byte("null"))
}
