package errors

import stderrors "errors"

// Is reports whether any error in err's chain matches target. Convenience
// wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target. Convenience
// wrapper around the standard library errors.As.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error. Returns CodeUnknown if the
// error is nil or no Error is present in the chain.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}
	var e Error
	if stderrors.As(err, &e) {
		return e.Code()
	}
	return CodeUnknown
}

// IsCode reports whether the outermost Error in err's chain carries the
// given code.
//
// Example:
//
//	if errors.IsCode(err, errors.CodeNotFound) {
//		// handle the missing reference
//	}
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// GetDetails extracts the diagnostic payload from an error. Returns nil if
// the error carries none.
func GetDetails(err error) map[string]any {
	if err == nil {
		return nil
	}
	var e Error
	if stderrors.As(err, &e) {
		return e.Details()
	}
	return nil
}
