package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// AppError is the unified error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// ArgumentFailure names a declared argument that no resolver could validate.
type ArgumentFailure struct {
	Mapping  string `json:"mapping"`
	Argument string `json:"argument"`
}

func (f ArgumentFailure) String() string {
	return f.Mapping + "." + f.Argument
}

// --- Constructors ---

// TypeNotFound creates an error for a mapping whose type is not registered.
func TypeNotFound(mapping, typeName string) *AppError {
	return &AppError{
		Code:    ErrCodeTypeNotFound,
		Message: fmt.Sprintf("mapping %q references unknown type %q", mapping, typeName),
		Details: map[string]any{"mapping": mapping, "type": typeName},
	}
}

// DuplicateType creates an error for a mapping type registered twice.
func DuplicateType(typeName string) *AppError {
	return &AppError{
		Code:    ErrCodeDuplicateType,
		Message: fmt.Sprintf("mapping type %q registered more than once", typeName),
		Details: map[string]any{"type": typeName},
	}
}

// InvalidMapping creates an error for a raw mapping that could not be normalized.
func InvalidMapping(mapping, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidMapping,
		Message: fmt.Sprintf("mapping %q is malformed: %s", mapping, reason),
		Details: map[string]any{"mapping": mapping},
	}
}

// ValidationFailed creates an error listing every mapping that failed validation.
// results holds the complete set of invalid results, in mapping order.
func ValidationFailed(names []string, results any) *AppError {
	return &AppError{
		Code:    ErrCodeValidationFailed,
		Message: fmt.Sprintf("%d mapping(s) failed validation: %s", len(names), strings.Join(names, ", ")),
		Details: map[string]any{"mappings": names, "results": results},
	}
}

// InvalidArguments creates an error listing every unresolvable (mapping, argument) pair.
func InvalidArguments(failures []ArgumentFailure) *AppError {
	parts := make([]string, 0, len(failures))
	for _, f := range failures {
		parts = append(parts, f.String())
	}
	return &AppError{
		Code:    ErrCodeInvalidArguments,
		Message: fmt.Sprintf("unresolvable arguments: %s", strings.Join(parts, ", ")),
		Details: map[string]any{"arguments": failures},
	}
}

// ConfigurationNotDefined creates an error for a key that has no mapping.
func ConfigurationNotDefined(key string) *AppError {
	return &AppError{
		Code:    ErrCodeConfigurationNotDefined,
		Message: fmt.Sprintf("configuration not defined for %q", key),
		Details: map[string]any{"key": key},
	}
}

// ArgumentUnresolvable creates an error for a key no resolver accepts.
func ArgumentUnresolvable(key string) *AppError {
	return &AppError{
		Code:    ErrCodeArgumentUnresolvable,
		Message: fmt.Sprintf("no resolver accepts argument %q", key),
		Details: map[string]any{"key": key},
	}
}

// ConstructionFailed creates an error for a mapping whose object could not be created.
func ConstructionFailed(mapping string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeConstructionFailed,
		Message: fmt.Sprintf("failed to create %q", mapping),
		Details: map[string]any{"mapping": mapping},
		Cause:   cause,
	}
}

// --- Helpers ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is, or wraps, an AppError with the given code.
// The whole chain is inspected, so a CONSTRUCTION_FAILED error wrapping a
// nested CONFIGURATION_NOT_DEFINED matches both codes.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.Code == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}
