package mapping

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Mapping is the normalized, immutable form of a raw mapping. The generic
// fields (name, type, arguments, cache, tags) are read by the container;
// everything else is strategy-specific and reached through Field.
type Mapping struct {
	name      string
	typeName  string
	arguments []string
	cache     bool
	tags      []string
	fields    map[string]any
}

// Normalize parses the generic fields of raw and keeps the remaining keys
// as strategy fields. raw is not modified.
func Normalize(name, typeName string, raw RawMapping) (*Mapping, error) {
	m := &Mapping{
		name:     name,
		typeName: typeName,
		fields:   make(map[string]any, len(raw)),
	}

	var err error
	if m.arguments, err = stringList(raw[KeyArguments]); err != nil {
		return nil, fmt.Errorf("%s: %w", KeyArguments, err)
	}
	if m.tags, err = tagSet(raw[KeyTags]); err != nil {
		return nil, fmt.Errorf("%s: %w", KeyTags, err)
	}
	if m.cache, err = flag(raw[KeyCache]); err != nil {
		return nil, fmt.Errorf("%s: %w", KeyCache, err)
	}

	for k, v := range raw {
		switch k {
		case KeyName, KeyType, KeyArguments, KeyCache, KeyTags:
		default:
			m.fields[k] = v
		}
	}
	return m, nil
}

// Name returns the mapping's key in the store.
func (m *Mapping) Name() string { return m.name }

// Type returns the name of the mapping type that builds this mapping.
func (m *Mapping) Type() string { return m.typeName }

// Cache reports whether the constructed object is memoized.
func (m *Mapping) Cache() bool { return m.cache }

// Arguments returns the declared argument keys in order.
func (m *Mapping) Arguments() []string { return slices.Clone(m.arguments) }

// Tags returns the mapping's tags.
func (m *Mapping) Tags() []string { return slices.Clone(m.tags) }

// Field returns a strategy-specific field.
func (m *Mapping) Field(key string) (any, bool) {
	v, ok := m.fields[key]
	return v, ok
}

// HasTags reports whether every requested tag is present on the mapping.
// An empty request matches every mapping.
func (m *Mapping) HasTags(tags ...string) bool {
	for _, t := range tags {
		if !slices.Contains(m.tags, t) {
			return false
		}
	}
	return true
}

// With returns a copy of m with a strategy field set.
func (m *Mapping) With(key string, value any) *Mapping {
	c := m.clone()
	c.fields[key] = value
	return c
}

// WithCache returns a copy of m with the cache flag set.
func (m *Mapping) WithCache(cache bool) *Mapping {
	c := m.clone()
	c.cache = cache
	return c
}

// WithArguments returns a copy of m with its argument list replaced.
func (m *Mapping) WithArguments(args ...string) *Mapping {
	c := m.clone()
	c.arguments = slices.Clone(args)
	return c
}

func (m *Mapping) String() string {
	return fmt.Sprintf("%s(%s)", m.name, m.typeName)
}

func (m *Mapping) clone() *Mapping {
	return &Mapping{
		name:      m.name,
		typeName:  m.typeName,
		arguments: slices.Clone(m.arguments),
		cache:     m.cache,
		tags:      slices.Clone(m.tags),
		fields:    maps.Clone(m.fields),
	}
}

// --- coercion helpers ---

func stringList(v any) ([]string, error) {
	switch list := v.(type) {
	case nil:
		return []string{}, nil
	case []string:
		return slices.Clone(list), nil
	case []any:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d is %T, expected string", i, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a list of strings, got %T", v)
	}
}

func tagSet(v any) ([]string, error) {
	var tags []string
	switch t := v.(type) {
	case string:
		tags = []string{t}
	case map[string]bool:
		for _, k := range slices.Sorted(maps.Keys(t)) {
			if t[k] {
				tags = append(tags, k)
			}
		}
	case map[string]any:
		// YAML !!set values decode with null members.
		tags = slices.Sorted(maps.Keys(t))
	default:
		list, err := stringList(v)
		if err != nil {
			return nil, err
		}
		tags = list
	}

	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if !slices.Contains(out, tag) {
			out = append(out, tag)
		}
	}
	return out, nil
}

func flag(v any) (bool, error) {
	switch b := v.(type) {
	case nil:
		return false, nil
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(b)
		if err != nil {
			return false, fmt.Errorf("expected a boolean, got %q", b)
		}
		return parsed, nil
	default:
		return false, fmt.Errorf("expected a boolean, got %T", v)
	}
}
