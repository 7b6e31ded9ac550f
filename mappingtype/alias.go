package mappingtype

import (
	"slices"

	"github.com/mcortesi/dinjector/mapping"
	"github.com/mcortesi/dinjector/validation"
)

// AliasType resolves another key in place of the mapping. The target is
// recorded as the mapping's only argument, so it is validated like any
// other argument when the container is built.
type AliasType struct{}

func NewAlias() *AliasType { return &AliasType{} }

func (t *AliasType) Name() string { return Alias }

func (t *AliasType) Preprocess(name string, raw mapping.RawMapping) (*mapping.Mapping, error) {
	m, err := mapping.Normalize(name, Alias, raw)
	if err != nil {
		return nil, err
	}
	if target, ok := m.Field(FieldTarget); ok && len(m.Arguments()) == 0 {
		if s, isString := target.(string); isString && s != "" {
			return m.WithArguments(s), nil
		}
	}
	return m, nil
}

func (t *AliasType) Validate(m *mapping.Mapping) mapping.Result {
	v := validation.New()
	raw, _ := m.Field(FieldTarget)
	target, ok := raw.(string)
	if !ok {
		v.AddError(FieldTarget, "must be a string")
		return mapping.NewResult(m.Name(), v)
	}
	if v.Required(FieldTarget, target).HasErrors() {
		return mapping.NewResult(m.Name(), v)
	}
	v.Custom(target != m.Name(), FieldTarget, "cannot refer to the alias itself")
	v.Custom(slices.Equal(m.Arguments(), []string{target}), mapping.KeyArguments, "cannot be declared on an alias")
	return mapping.NewResult(m.Name(), v)
}

func (t *AliasType) CreateObject(m *mapping.Mapping, resolve mapping.ResolveFunc) (any, error) {
	target, _ := m.Field(FieldTarget)
	return resolve(target.(string))
}
