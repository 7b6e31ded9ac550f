package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Use mapping/yaml tag names for field names in error messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"mapping", "yaml", "mapstructure"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return toSnakeCase(fld.Name)
		})

		// func: the field holds a non-nil function value
		_ = validate.RegisterValidation("func", func(fl validator.FieldLevel) bool {
			field := fl.Field()
			return field.Kind() == reflect.Func && !field.IsNil()
		})
	})
	return validate
}

// Struct validates s using `validate` struct tags and records every failing
// field. A non-struct argument is recorded as a single problem.
func (v *Validator) Struct(s any) *Validator {
	err := getValidator().Struct(s)
	if err == nil {
		return v
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		v.AddError("", err.Error())
		return v
	}

	for _, e := range validationErrors {
		v.AddError(e.Field(), formatValidationError(e))
	}
	return v
}

// ValidateStruct validates a struct using struct tags and returns the
// problems as an error, or nil.
func ValidateStruct(s any) error {
	return New().Struct(s).Err()
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "func":
		return "must be a function"
	case "min":
		return "must have at least " + e.Param() + " element(s)"
	case "max":
		return "must have at most " + e.Param() + " element(s)"
	case "oneof":
		return "must be one of: " + e.Param()
	case "excluded_with":
		return "cannot be combined with " + e.Param()
	case "required_without":
		return "is required when " + e.Param() + " is not set"
	default:
		return "is invalid"
	}
}

// toSnakeCase converts a field name to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		if r >= 'A' && r <= 'Z' {
			result.WriteRune(r + 32) // lowercase
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
