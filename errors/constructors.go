package errors

import "fmt"

// New creates a new Error with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeNotFound, "git directory not found")
func New(code ErrorCode, message string) Error {
	return &taxonomyError{code: code, message: message}
}

// Newf creates a new Error with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidInput, "invalid directory: %q", path)
func Newf(code ErrorCode, format string, args ...any) Error {
	return &taxonomyError{code: code, message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a code and message while preserving the original
// error chain for errors.Is and errors.As. Returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) Error {
	if err == nil {
		return nil
	}
	return &taxonomyError{code: code, message: message, cause: err}
}

// Wrapf wraps an error with a formatted message. Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...any) Error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetails attaches a diagnostic payload to an error, merging with any
// existing details. New keys override existing ones. Non-Error values are
// converted to CodeUnknown first. Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithDetails(err, map[string]any{
//		"exit_code": result.ExitCode,
//		"stderr":    result.Stderr,
//	})
func WithDetails(err error, details map[string]any) Error {
	if err == nil {
		return nil
	}

	e := asTaxonomyError(err)
	merged := make(map[string]any, len(e.details)+len(details))
	for k, v := range e.details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}

	return &taxonomyError{
		code:    e.code,
		message: e.message,
		details: merged,
		cause:   e.cause,
	}
}

// asTaxonomyError converts an arbitrary error into the concrete type,
// wrapping foreign errors under CodeUnknown.
func asTaxonomyError(err error) *taxonomyError {
	if e, ok := err.(*taxonomyError); ok {
		return e
	}
	return &taxonomyError{code: CodeUnknown, message: err.Error(), cause: err}
}
