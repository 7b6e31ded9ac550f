package mappingtype

import (
	"github.com/mcortesi/dinjector/mapping"
)

// Catalog maps names to constructor functions so definitions loaded from
// files can refer to code.
type Catalog map[string]any

// lookup replaces a string-valued field with the catalog function of that
// name. Unknown names are left in place for validation to report.
func (c Catalog) lookup(m *mapping.Mapping, field string) *mapping.Mapping {
	v, ok := m.Field(field)
	if !ok {
		return m
	}
	name, ok := v.(string)
	if !ok {
		return m
	}
	if fn, found := c[name]; found {
		return m.With(field, fn)
	}
	return m
}

// Defaults returns every stock type, resolving function names through catalog.
func Defaults(catalog Catalog) []mapping.Type {
	return []mapping.Type{
		NewSingleton(catalog),
		NewFactory(catalog),
		NewValue(),
		NewAlias(),
	}
}
