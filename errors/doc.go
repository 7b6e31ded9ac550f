// Package errors provides the structured error type used across dinjector.
//
// Every failure raised by the container is an *AppError carrying a
// machine-readable ErrorCode and a details map identifying the offending
// mapping, type or argument. Construction-time codes abort building an
// application context; call-time codes are local to a single resolution.
//
//	if errors.HasCode(err, errors.ErrCodeConfigurationNotDefined) {
//	    // the requested key has no mapping
//	}
package errors
