package toneburst

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrVariantExists      = errors.New("toneburst variant already registered")
	ErrInvalidVariantSpec = errors.New("invalid toneburst variant spec")
)

// BuildFunc composes a variant payload from add and remove sequence lists.
type BuildFunc func(add []SequenceModel, remove []SequenceModel) (Variant, error)

// DecodeFunc decodes a variant payload keyed under the variant's name.
type DecodeFunc func(data json.RawMessage) (Variant, error)

// VariantSpec describes one registered ToneBurst variant.
type VariantSpec struct {
	Name        string
	Description string
	Build       BuildFunc
	Decode      DecodeFunc
}

// Registry stores variant specs by discriminant name.
type Registry struct {
	items map[string]VariantSpec
}

// NewRegistry creates an empty variant registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]VariantSpec)}
}

// DefaultRegistry returns a registry with every supported variant.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(whalesongSpec())
	return r
}

// Register adds a variant spec.
func (r *Registry) Register(spec VariantSpec) error {
	name := strings.TrimSpace(spec.Name)
	if name == "" || name != spec.Name {
		return fmt.Errorf("%w: invalid name %q", ErrInvalidVariantSpec, spec.Name)
	}
	if spec.Build == nil || spec.Decode == nil {
		return fmt.Errorf("%w: %s requires build and decode funcs", ErrInvalidVariantSpec, name)
	}
	if _, ok := r.items[name]; ok {
		return fmt.Errorf("%w: %s", ErrVariantExists, name)
	}
	r.items[name] = spec
	return nil
}

// Resolve returns a variant spec by exact, case-sensitive name.
func (r *Registry) Resolve(name string) (VariantSpec, bool) {
	spec, ok := r.items[name]
	return spec, ok
}

// Names returns registered variant names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns registered specs ordered by name.
func (r *Registry) List() []VariantSpec {
	names := r.Names()
	out := make([]VariantSpec, 0, len(names))
	for _, name := range names {
		out = append(out, r.items[name])
	}
	return out
}
