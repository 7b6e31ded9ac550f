package mappingtype

import (
	"github.com/mcortesi/dinjector/mapping"
	"github.com/mcortesi/dinjector/validation"
)

type factorySpec struct {
	Factory any `mapping:"factory" validate:"required,func"`
}

// FactoryType calls the mapping's factory with its resolved arguments.
// Objects are rebuilt on every resolution unless the mapping sets cache.
type FactoryType struct {
	catalog Catalog
}

// NewFactory creates the factory type. String factories are looked up in catalog.
func NewFactory(catalog Catalog) *FactoryType {
	return &FactoryType{catalog: catalog}
}

func (t *FactoryType) Name() string { return Factory }

func (t *FactoryType) Preprocess(name string, raw mapping.RawMapping) (*mapping.Mapping, error) {
	m, err := mapping.Normalize(name, Factory, raw)
	if err != nil {
		return nil, err
	}
	return t.catalog.lookup(m, FieldFactory), nil
}

func (t *FactoryType) Validate(m *mapping.Mapping) mapping.Result {
	fn, _ := m.Field(FieldFactory)

	// Names the catalog could not resolve get their own message.
	v := validation.New()
	if _, named := fn.(string); named || !v.Struct(factorySpec{Factory: fn}).HasErrors() {
		checkSignature(v, FieldFactory, fn, len(m.Arguments()))
	}
	return mapping.NewResult(m.Name(), v)
}

func (t *FactoryType) CreateObject(m *mapping.Mapping, resolve mapping.ResolveFunc) (any, error) {
	fn, _ := m.Field(FieldFactory)
	return call(fn, m, resolve)
}
