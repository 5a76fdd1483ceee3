// Package errors provides structured error types for better observability
// and programmatic error handling across the runtime.
//
// Example usage:
//
//	err := errors.Wrap(
//	    errors.ErrCodeLookup,
//	    "unknown encoding: shift-jis-2004",
//	    cause,
//	)
//
// Error codes mirror the failure taxonomy of the codec subsystem: lookup
// errors (unknown names), type errors (malformed protocol values), value
// errors (bad spans), and the three Unicode error discriminants used by the
// error-handler machinery.
package errors
