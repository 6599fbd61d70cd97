package data

import (
	"fmt"
	"sort"
)

// Builder constructs an uninitialized Data value of one concrete type.
type Builder func() Data

// Registry maps data-file type tags to builders. It is an explicit value,
// constructed once and handed to the line parser that feeds the module —
// there is no package-level mutable registry.
type Registry struct {
	builders map[string]Builder
}

// NewRegistry returns a registry with all built-in data types registered.
func NewRegistry() *Registry {
	r := &Registry{builders: make(map[string]Builder)}

	// Built-in registrations cannot collide.
	_ = r.Register(TypeConjugateFaults, func() Data { return NewConjugateFaults() })
	_ = r.Register(TypeCompactionShearBands, func() Data { return NewCompactionShearBands() })
	_ = r.Register(TypeNeoformedStriatedPlane, func() Data { return NewNeoformedStriatedPlane() })
	_ = r.Register(TypeStriatedDilatantShearBand, func() Data { return NewStriatedDilatantShearBand() })
	_ = r.Register(TypeFocalMechanism, func() Data { return NewFocalMechanism(AngleMisfit) })

	return r
}

// Register adds a builder under tag. Registering an existing tag yields
// ErrDuplicateDataType.
func (r *Registry) Register(tag string, b Builder) error {
	if _, exists := r.builders[tag]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateDataType, tag)
	}
	r.builders[tag] = b

	return nil
}

// Build constructs and initializes a Data value for the given type tag and
// input lines. Unknown tags yield ErrUnknownDataType; initialization errors
// pass through unchanged.
func (r *Registry) Build(tag string, lines []Line) (Data, error) {
	b, ok := r.builders[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataType, tag)
	}

	d := b()
	if err := d.Initialize(lines); err != nil {
		return nil, err
	}

	return d, nil
}

// Types returns the registered tags in lexical order.
func (r *Registry) Types() []string {
	tags := make([]string, 0, len(r.builders))
	for tag := range r.builders {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return tags
}
