// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnavailable,
//	    "failed to load scaler artifact",
//	    cause,
//	    map[string]any{
//	        "path": scalerPath,
//	    },
//	)
package errors
