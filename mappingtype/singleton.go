package mappingtype

import (
	"github.com/mcortesi/dinjector/mapping"
	"github.com/mcortesi/dinjector/validation"
)

// SingletonType yields one object per container: either a prebuilt
// instance or the result of calling the constructor once. The cache flag
// defaults to true; an explicit false is a validation problem.
type SingletonType struct {
	catalog Catalog
}

// NewSingleton creates the singleton type. String constructors are looked up in catalog.
func NewSingleton(catalog Catalog) *SingletonType {
	return &SingletonType{catalog: catalog}
}

func (t *SingletonType) Name() string { return Singleton }

func (t *SingletonType) Preprocess(name string, raw mapping.RawMapping) (*mapping.Mapping, error) {
	m, err := mapping.Normalize(name, Singleton, raw)
	if err != nil {
		return nil, err
	}
	m = t.catalog.lookup(m, FieldConstructor)
	if raw[mapping.KeyCache] == nil {
		m = m.WithCache(true)
	}
	return m, nil
}

func (t *SingletonType) Validate(m *mapping.Mapping) mapping.Result {
	v := validation.New()
	v.Custom(m.Cache(), mapping.KeyCache, "cannot be disabled on a "+Singleton)
	ctor, hasCtor := m.Field(FieldConstructor)
	_, hasInstance := m.Field(FieldInstance)

	switch {
	case hasCtor && hasInstance:
		v.AddError(FieldConstructor, "cannot be combined with "+FieldInstance)
	case hasCtor:
		checkSignature(v, FieldConstructor, ctor, len(m.Arguments()))
	case hasInstance:
		v.Empty(mapping.KeyArguments, m.Arguments())
	default:
		v.AddError(FieldConstructor, "either "+FieldConstructor+" or "+FieldInstance+" is required")
	}
	return mapping.NewResult(m.Name(), v)
}

func (t *SingletonType) CreateObject(m *mapping.Mapping, resolve mapping.ResolveFunc) (any, error) {
	if instance, ok := m.Field(FieldInstance); ok {
		return instance, nil
	}
	ctor, _ := m.Field(FieldConstructor)
	return call(ctor, m, resolve)
}
