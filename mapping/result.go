package mapping

import (
	"github.com/mcortesi/dinjector/validation"
)

// Result is the outcome of validating one mapping.
type Result interface {
	IsValid() bool
	Mapping() string
	Problems() []validation.FieldError
	Error() string
}

type result struct {
	name string
	v    *validation.Validator
}

// NewResult wraps the problems collected by v for the named mapping.
// A nil or empty validator yields a valid result.
func NewResult(name string, v *validation.Validator) Result {
	if v == nil {
		v = validation.New()
	}
	return &result{name: name, v: v}
}

// Valid returns a result with no problems.
func Valid(name string) Result {
	return NewResult(name, nil)
}

func (r *result) IsValid() bool                     { return !r.v.HasErrors() }
func (r *result) Mapping() string                   { return r.name }
func (r *result) Problems() []validation.FieldError { return r.v.Errors() }

func (r *result) Error() string {
	if r.IsValid() {
		return r.name + ": valid"
	}
	return r.name + ": " + r.v.Error()
}

func missingType(m *Mapping) Result {
	v := validation.New()
	v.AddError(KeyType, "type "+m.typeName+" is not registered")
	return NewResult(m.name, v)
}
