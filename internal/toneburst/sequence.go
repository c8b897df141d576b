package toneburst

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// MinSequenceLength and MaxSequenceLength bound the repeat count of a sequence.
	MinSequenceLength = 1
	MaxSequenceLength = 65534
)

var (
	ErrEmptySequence   = errors.New("sequence is empty")
	ErrCountOutOfRange = errors.New("count out of range")
	ErrInvalidSequence = errors.New("invalid toneburst sequence")
)

// SequenceModel is one obfuscation byte pattern paired with its repeat count.
type SequenceModel struct {
	Sequence []byte `json:"sequence"`
	Length   uint16 `json:"length"`
}

// NewSequenceModel builds a sequence from the UTF-8 bytes of text.
func NewSequenceModel(text string, count int) (SequenceModel, error) {
	return NewSequenceModelBytes([]byte(text), count)
}

// NewSequenceModelBytes is the single validation gate for SequenceModel.
// It does not assume any earlier validation ran.
func NewSequenceModelBytes(seq []byte, count int) (SequenceModel, error) {
	if len(seq) == 0 {
		return SequenceModel{}, fmt.Errorf("%w: %w", ErrInvalidSequence, ErrEmptySequence)
	}
	if !ValidCount(count) {
		return SequenceModel{}, fmt.Errorf("%w: %w: %d (must be between %d and %d)",
			ErrInvalidSequence, ErrCountOutOfRange, count, MinSequenceLength, MaxSequenceLength)
	}
	buf := make([]byte, len(seq))
	copy(buf, seq)
	return SequenceModel{Sequence: buf, Length: uint16(count)}, nil
}

// ValidCount reports whether count is an acceptable repeat length.
func ValidCount(count int) bool {
	return count >= MinSequenceLength && count <= MaxSequenceLength
}

// UnmarshalJSON routes decoded values back through NewSequenceModelBytes.
func (s *SequenceModel) UnmarshalJSON(data []byte) error {
	var raw struct {
		Sequence []byte `json:"sequence"`
		Length   int    `json:"length"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSequence, err)
	}
	model, err := NewSequenceModelBytes(raw.Sequence, raw.Length)
	if err != nil {
		return err
	}
	*s = model
	return nil
}
