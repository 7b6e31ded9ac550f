package mapping

import (
	"fmt"
	"slices"

	"github.com/mcortesi/dinjector/errors"
)

// ResolveFunc turns an argument key into a value. The container hands one
// to CreateObject; resolving a key that names another mapping builds that
// mapping first.
type ResolveFunc func(key string) (any, error)

// Type is a named construction strategy (singleton, factory, ...).
type Type interface {
	// Name is the value raw mappings use in their "type" field.
	Name() string

	// Preprocess normalizes a raw mapping. It never resolves arguments or
	// constructs objects.
	Preprocess(name string, raw RawMapping) (*Mapping, error)

	// Validate checks a normalized mapping's structure.
	Validate(m *Mapping) Result

	// CreateObject builds the object, resolving declared arguments through resolve.
	CreateObject(m *Mapping, resolve ResolveFunc) (any, error)
}

// Registry maps type names to strategies. It is built once and never
// modified afterwards.
type Registry struct {
	types map[string]Type
	names []string
}

// NewRegistry creates a registry holding types. Registering two types under
// the same name is an error.
func NewRegistry(types ...Type) (*Registry, error) {
	r := &Registry{types: make(map[string]Type, len(types))}
	for i, t := range types {
		if t == nil {
			return nil, fmt.Errorf("mapping: type at position %d is nil", i)
		}
		name := t.Name()
		if name == "" {
			return nil, fmt.Errorf("mapping: type at position %d has an empty name", i)
		}
		if _, exists := r.types[name]; exists {
			return nil, errors.DuplicateType(name)
		}
		r.types[name] = t
		r.names = append(r.names, name)
	}
	return r, nil
}

// Lookup returns the strategy registered under name.
func (r *Registry) Lookup(name string) (Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Names returns the registered type names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}
