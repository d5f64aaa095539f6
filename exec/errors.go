package exec

import "fmt"

// Error describes a failed command invocation. When the process ran but
// exited non-zero, ExitCode and the captured streams are populated; when it
// could not be started at all, ExitCode is -1 and Err holds the cause.
type Error struct {
	// Command is the full argument vector that was executed.
	Command []string

	// ExitCode is the exit code, or -1 if the process never ran.
	ExitCode int

	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// Err is the underlying error from os/exec, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("command %v failed with exit code %d: %v", e.Command, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command %v failed with exit code %d", e.Command, e.ExitCode)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
