package errors

import "fmt"

// Error is the interface implemented by all gitwrap errors. It extends the
// standard error interface with a stable code for programmatic branching and
// a details map carrying diagnostic payloads (exit codes, stderr text).
type Error interface {
	error

	// Code returns the error code.
	Code() ErrorCode

	// Message returns the human-readable message without the code prefix.
	Message() string

	// Details returns a copy of the diagnostic payload, or nil.
	Details() map[string]any

	// Unwrap returns the wrapped cause, if any.
	Unwrap() error
}

// taxonomyError is the concrete implementation of Error. It is private to
// enforce construction through the package functions.
type taxonomyError struct {
	code    ErrorCode
	message string
	details map[string]any
	cause   error
}

// Error returns "[CODE] message" or "[CODE] message: cause".
func (e *taxonomyError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *taxonomyError) Code() ErrorCode {
	return e.code
}

// Message returns the error message.
func (e *taxonomyError) Message() string {
	return e.message
}

// Details returns a defensive copy of the details map. Returns nil when no
// details are attached.
func (e *taxonomyError) Details() map[string]any {
	if e.details == nil {
		return nil
	}
	details := make(map[string]any, len(e.details))
	for k, v := range e.details {
		details[k] = v
	}
	return details
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *taxonomyError) Unwrap() error {
	return e.cause
}
