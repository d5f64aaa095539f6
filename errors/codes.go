// Package errors provides the typed error taxonomy for gitwrap.
// It extends Go's standard error handling with structured error codes,
// diagnostic payloads, and a fixed mapping to POSIX-style error numbers for
// callers that expect conventional process exit semantics.
package errors

// ErrorCode identifies a specific error condition. Codes are string-based
// for debuggability.
type ErrorCode string

const (
	// Resolution errors.

	// CodeNotFound indicates a requested entity does not exist: no git
	// directory among a path's ancestors, a reference missing from a remote,
	// or a file absent from the tracked tree.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeInvalidInput indicates the provided input is invalid: a relative
	// path that cannot be canonicalized, an unknown reference, or an invalid
	// configuration key.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeAccessDenied indicates required process state could not be read,
	// such as an unreadable current working directory.
	CodeAccessDenied ErrorCode = "ACCESS_DENIED"

	// Precondition errors.

	// CodePreconditionFailed indicates an operation requires a working tree
	// but the repository is bare.
	CodePreconditionFailed ErrorCode = "PRECONDITION_FAILED"

	// CodeWorkTreeDirty indicates an operation requires a clean working tree.
	CodeWorkTreeDirty ErrorCode = "WORK_TREE_DIRTY"

	// Configuration errors.

	// CodeInvalidConfig indicates an invalid or unreadable backing
	// configuration file.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// CodeWriteFailed indicates a configuration value could not be written.
	CodeWriteFailed ErrorCode = "WRITE_FAILED"

	// External tool errors.

	// CodeExecutionFailed indicates git ran and exited with a documented
	// non-zero code outside the expected precondition set. The diagnostic
	// text and exit code travel in the error details.
	CodeExecutionFailed ErrorCode = "EXECUTION_FAILED"

	// CodeParseFailed indicates git produced output that cannot be split
	// into the expected structure.
	CodeParseFailed ErrorCode = "PARSE_FAILED"

	// Generic errors.

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)
