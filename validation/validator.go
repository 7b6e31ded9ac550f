package validation

import (
	"fmt"
	"slices"
	"strings"
)

// Validator collects validation errors.
type Validator struct {
	errors []FieldError
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{
		errors: make([]FieldError, 0),
	}
}

// AddError adds a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Error joins every collected problem into one line.
func (v *Validator) Error() string {
	messages := make([]string, len(v.errors))
	for i, e := range v.errors {
		messages[i] = e.String()
	}
	return strings.Join(messages, "; ")
}

// Err returns the validator as an error if it holds problems, nil otherwise.
func (v *Validator) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return fmt.Errorf("validation failed: %s", v.Error())
}

// Required checks if a string is non-empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
	}
	return v
}

// Empty checks that a slice has no elements.
func (v *Validator) Empty(field string, values []string) *Validator {
	if len(values) > 0 {
		v.AddError(field, fmt.Sprintf("must be empty (got %d)", len(values)))
	}
	return v
}

// Unique checks that a slice holds no repeated values.
func (v *Validator) Unique(field string, values []string) *Validator {
	seen := make(map[string]bool, len(values))
	for _, s := range values {
		if seen[s] {
			v.AddError(field, fmt.Sprintf("duplicate value %q", s))
			continue
		}
		seen[s] = true
	}
	return v
}

// OneOf checks if a value is one of the allowed values.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	if value == "" {
		return v
	}
	if !slices.Contains(allowed, value) {
		v.AddError(field, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
	}
	return v
}

// Custom applies a custom validation condition.
func (v *Validator) Custom(condition bool, field, message string) *Validator {
	if !condition {
		v.AddError(field, message)
	}
	return v
}

// Merge appends every problem held by other.
func (v *Validator) Merge(other *Validator) *Validator {
	if other != nil {
		v.errors = append(v.errors, other.errors...)
	}
	return v
}
