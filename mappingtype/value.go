package mappingtype

import (
	"github.com/mcortesi/dinjector/mapping"
	"github.com/mcortesi/dinjector/validation"
)

// ValueType returns the mapping's literal value.
type ValueType struct{}

func NewValue() *ValueType { return &ValueType{} }

func (t *ValueType) Name() string { return Value }

func (t *ValueType) Preprocess(name string, raw mapping.RawMapping) (*mapping.Mapping, error) {
	return mapping.Normalize(name, Value, raw)
}

func (t *ValueType) Validate(m *mapping.Mapping) mapping.Result {
	_, ok := m.Field(FieldValue)
	v := validation.New().
		Custom(ok, FieldValue, "is required").
		Empty(mapping.KeyArguments, m.Arguments())
	return mapping.NewResult(m.Name(), v)
}

func (t *ValueType) CreateObject(m *mapping.Mapping, _ mapping.ResolveFunc) (any, error) {
	value, _ := m.Field(FieldValue)
	return value, nil
}
