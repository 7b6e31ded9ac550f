package resolver

import "maps"

// Values resolves a fixed set of keys to static values.
type Values struct {
	values map[string]any
}

// NewValues creates a resolver claiming exactly the keys of values.
// The map is copied.
func NewValues(values map[string]any) *Values {
	return &Values{values: maps.Clone(values)}
}

func (v *Values) CanResolve(key string) bool {
	_, ok := v.values[key]
	return ok
}

func (v *Values) Resolve(key string) (any, error) {
	return v.values[key], nil
}

func (v *Values) Validate(key string) bool {
	return v.CanResolve(key)
}
