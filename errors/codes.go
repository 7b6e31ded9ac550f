package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Construction errors. Any of these aborts building an application context.
const (
	// ErrCodeTypeNotFound indicates a mapping references an unregistered mapping type.
	ErrCodeTypeNotFound ErrorCode = "TYPE_NOT_FOUND"
	// ErrCodeDuplicateType indicates two mapping types were registered under the same name.
	ErrCodeDuplicateType ErrorCode = "DUPLICATE_TYPE"
	// ErrCodeInvalidMapping indicates a raw mapping could not be normalized.
	ErrCodeInvalidMapping ErrorCode = "INVALID_MAPPING"
	// ErrCodeValidationFailed indicates one or more mappings failed structural validation.
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	// ErrCodeInvalidArguments indicates declared arguments no resolver can validate.
	ErrCodeInvalidArguments ErrorCode = "INVALID_ARGUMENTS"
)

// Resolution errors. These are local to the call that raised them.
const (
	// ErrCodeConfigurationNotDefined indicates a key with no mapping was requested.
	ErrCodeConfigurationNotDefined ErrorCode = "CONFIGURATION_NOT_DEFINED"
	// ErrCodeArgumentUnresolvable indicates no resolver in the chain accepted a key.
	ErrCodeArgumentUnresolvable ErrorCode = "ARGUMENT_UNRESOLVABLE"
	// ErrCodeConstructionFailed indicates a mapping type failed to create its object.
	ErrCodeConstructionFailed ErrorCode = "CONSTRUCTION_FAILED"
)

var constructionCodes = map[ErrorCode]bool{
	ErrCodeTypeNotFound:     true,
	ErrCodeDuplicateType:    true,
	ErrCodeInvalidMapping:   true,
	ErrCodeValidationFailed: true,
	ErrCodeInvalidArguments: true,
}

// IsConstructionCode returns true if the code is raised while building an
// application context rather than while resolving from one.
func IsConstructionCode(code ErrorCode) bool {
	return constructionCodes[code]
}
