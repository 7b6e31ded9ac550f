package mapping

import (
	"slices"

	"github.com/mcortesi/dinjector/errors"
)

// Store is the normalized collection of mappings, in definition order.
type Store struct {
	entries []*Mapping
	lookup  map[string]*Mapping
}

func newStore(capacity int) *Store {
	return &Store{
		entries: make([]*Mapping, 0, capacity),
		lookup:  make(map[string]*Mapping, capacity),
	}
}

// Preprocess normalizes every definition with its mapping type. A mapping
// whose type is not registered fails with TYPE_NOT_FOUND; a type that
// cannot normalize its mapping fails with INVALID_MAPPING. The first
// failure aborts.
func Preprocess(defs *Definitions, registry *Registry) (*Store, error) {
	s := newStore(defs.Len())

	for _, name := range defs.names {
		raw := defs.raw[name]

		typeName := DefaultType
		switch t := raw[KeyType].(type) {
		case nil:
		case string:
			if t != "" {
				typeName = t
			}
		default:
			return nil, errors.InvalidMapping(name, "type must be a string").WithDetail("type", t)
		}

		mt, ok := registry.Lookup(typeName)
		if !ok {
			return nil, errors.TypeNotFound(name, typeName)
		}

		input := make(RawMapping, len(raw)+2)
		for k, v := range raw {
			input[k] = v
		}
		input[KeyName] = name
		input[KeyType] = typeName

		m, err := mt.Preprocess(name, input)
		if err != nil {
			if errors.IsAppError(err) {
				return nil, err
			}
			return nil, errors.InvalidMapping(name, err.Error()).WithCause(err)
		}
		if m == nil || m.name != name {
			return nil, errors.InvalidMapping(name, "type "+typeName+" returned a mapping for a different name")
		}
		s.entries = append(s.entries, m)
		s.lookup[name] = m
	}
	return s, nil
}

// Get returns the mapping stored under name.
func (s *Store) Get(name string) (*Mapping, bool) {
	m, ok := s.lookup[name]
	return m, ok
}

// Has reports whether name is defined.
func (s *Store) Has(name string) bool {
	_, ok := s.lookup[name]
	return ok
}

// Len returns the number of mappings.
func (s *Store) Len() int {
	return len(s.entries)
}

// Names returns every mapping name in definition order.
func (s *Store) Names() []string {
	names := make([]string, len(s.entries))
	for i, m := range s.entries {
		names[i] = m.name
	}
	return names
}

// All returns every mapping in definition order.
func (s *Store) All() []*Mapping {
	return slices.Clone(s.entries)
}

// WithTags returns, in definition order, the mappings carrying every tag.
func (s *Store) WithTags(tags ...string) []*Mapping {
	out := make([]*Mapping, 0, len(s.entries))
	for _, m := range s.entries {
		if m.HasTags(tags...) {
			out = append(out, m)
		}
	}
	return out
}

// Validate runs every mapping through its type's Validate and returns all
// invalid results, in definition order.
func (s *Store) Validate(registry *Registry) []Result {
	var invalid []Result
	for _, m := range s.entries {
		mt, ok := registry.Lookup(m.typeName)
		if !ok {
			// Preprocess guarantees the type exists; a store built against a
			// different registry reports the mismatch as a problem.
			invalid = append(invalid, missingType(m))
			continue
		}
		if r := mt.Validate(m); r != nil && !r.IsValid() {
			invalid = append(invalid, r)
		}
	}
	return invalid
}

// ValidateArguments asks validate about every declared argument and
// returns every pair it rejects, in definition order.
func (s *Store) ValidateArguments(validate func(key string) bool) []errors.ArgumentFailure {
	var failures []errors.ArgumentFailure
	for _, m := range s.entries {
		for _, arg := range m.arguments {
			if !validate(arg) {
				failures = append(failures, errors.ArgumentFailure{Mapping: m.name, Argument: arg})
			}
		}
	}
	return failures
}
