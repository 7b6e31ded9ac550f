// Package validation collects structural validation problems.
//
// It supports both struct tag validation (using the validator library) and
// programmatic checks. Both feed the same Validator, so a mapping type can
// mix declarative rules on its spec struct with ad-hoc checks and report
// every problem at once.
//
// # Struct Tag Validation
//
//	type factorySpec struct {
//	    Factory any `mapping:"factory" validate:"required,func"`
//	}
//	v := validation.New().Struct(spec)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Custom(len(args) == 0, "arguments", "must be empty")
//	err := v.Err()
package validation
