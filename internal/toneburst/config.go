package toneburst

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnknownVariant  = errors.New("unknown toneburst variant")
	ErrMalformedConfig = errors.New("malformed toneburst client config")
)

// Variant is one ToneBurst protocol payload.
type Variant interface {
	VariantName() string
}

// ClientConfig wraps exactly one ToneBurst variant. Its JSON form is a single
// key object keyed by the variant name, so readers can pick the variant
// without knowing it in advance.
type ClientConfig struct {
	variant Variant
}

// NewClientConfig wraps v.
func NewClientConfig(v Variant) (ClientConfig, error) {
	if v == nil {
		return ClientConfig{}, fmt.Errorf("%w: nil variant", ErrMalformedConfig)
	}
	if v.VariantName() == "" {
		return ClientConfig{}, fmt.Errorf("%w: variant has no name", ErrMalformedConfig)
	}
	return ClientConfig{variant: v}, nil
}

// Name returns the active variant's discriminant.
func (c ClientConfig) Name() string {
	if c.variant == nil {
		return ""
	}
	return c.variant.VariantName()
}

// Variant returns the active payload.
func (c ClientConfig) Variant() Variant {
	return c.variant
}

func (c ClientConfig) MarshalJSON() ([]byte, error) {
	if c.variant == nil {
		return nil, fmt.Errorf("%w: no variant set", ErrMalformedConfig)
	}
	return json.Marshal(map[string]Variant{c.variant.VariantName(): c.variant})
}

// UnmarshalJSON decodes against DefaultRegistry.
func (c *ClientConfig) UnmarshalJSON(data []byte) error {
	cfg, err := DecodeClientConfig(data, DefaultRegistry())
	if err != nil {
		return err
	}
	*c = cfg
	return nil
}

// DecodeClientConfig reads a config, resolving its single variant key in registry.
func DecodeClientConfig(data []byte, registry *Registry) (ClientConfig, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return ClientConfig{}, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}
	if len(raw) != 1 {
		return ClientConfig{}, fmt.Errorf("%w: expected exactly one variant key, found %d", ErrMalformedConfig, len(raw))
	}
	for name, payload := range raw {
		spec, ok := registry.Resolve(name)
		if !ok {
			return ClientConfig{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
		}
		v, err := spec.Decode(payload)
		if err != nil {
			return ClientConfig{}, err
		}
		return NewClientConfig(v)
	}
	return ClientConfig{}, ErrMalformedConfig
}
