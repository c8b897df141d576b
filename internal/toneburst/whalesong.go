package toneburst

import (
	"encoding/json"
	"errors"
	"fmt"
)

// VariantWhalesong is the discriminant name of the Whalesong variant.
const VariantWhalesong = "whalesong"

var ErrInvalidWhalesongSequence = errors.New("invalid whalesong sequence")

// WhalesongClient holds the add and remove sequence sets of a Whalesong handshake.
type WhalesongClient struct {
	AddSequences    []SequenceModel `json:"addSequences"`
	RemoveSequences []SequenceModel `json:"removeSequences"`
}

// NewWhalesongClient requires both lists to be non-empty. Sequences are
// independent; no cross-sequence checks are made.
func NewWhalesongClient(add []SequenceModel, remove []SequenceModel) (WhalesongClient, error) {
	if len(add) == 0 {
		return WhalesongClient{}, fmt.Errorf("%w: add sequences are empty", ErrInvalidWhalesongSequence)
	}
	if len(remove) == 0 {
		return WhalesongClient{}, fmt.Errorf("%w: remove sequences are empty", ErrInvalidWhalesongSequence)
	}
	return WhalesongClient{
		AddSequences:    append([]SequenceModel(nil), add...),
		RemoveSequences: append([]SequenceModel(nil), remove...),
	}, nil
}

// VariantName implements Variant.
func (WhalesongClient) VariantName() string {
	return VariantWhalesong
}

func whalesongSpec() VariantSpec {
	return VariantSpec{
		Name:        VariantWhalesong,
		Description: "Whalesong add/remove byte sequences",
		Build: func(add, remove []SequenceModel) (Variant, error) {
			client, err := NewWhalesongClient(add, remove)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
		Decode: decodeWhalesong,
	}
}

func decodeWhalesong(data json.RawMessage) (Variant, error) {
	var raw struct {
		AddSequences    []SequenceModel `json:"addSequences"`
		RemoveSequences []SequenceModel `json:"removeSequences"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWhalesongSequence, err)
	}
	client, err := NewWhalesongClient(raw.AddSequences, raw.RemoveSequences)
	if err != nil {
		return nil, err
	}
	return client, nil
}
