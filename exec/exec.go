package exec

import (
	"context"
	"time"
)

// Executor is the capability for running external commands. It provides a
// fluent API for configuring a single invocation; configuration applied
// through the With* methods lasts until the next Run.
//
// Implementations must capture both output streams in full. Production code
// uses the concrete *Command type; tests substitute scripted implementations
// that return canned results.
type Executor interface {
	// WithEnv sets environment variables for the next invocation. These are
	// local settings that override any global environment variables.
	WithEnv(env map[string]string) Executor

	// WithDir sets the working directory for the next invocation.
	WithDir(dir string) Executor

	// WithContext sets the context for the next invocation. The command is
	// killed if the context is canceled.
	WithContext(ctx context.Context) Executor

	// WithTimeout bounds the next invocation with a deadline.
	WithTimeout(timeout time.Duration) Executor

	// WithInheritEnv passes the parent process environment through to the
	// command, in addition to any variables set with WithEnv.
	WithInheritEnv() Executor

	// Run executes the command described by args. Whenever the process
	// actually ran, the returned Result is non-nil and carries the exit code
	// and both captured streams, even if the exit code is non-zero. A nil
	// Result means the process could not be started at all.
	Run(args ...string) (*Result, error)

	// Clone returns an independent executor with the same global
	// configuration and no pending local settings.
	Clone() Executor
}

// Result is the outcome of a single command invocation.
type Result struct {
	// Stdout is the fully captured standard output.
	Stdout string

	// Stderr is the fully captured standard error.
	Stderr string

	// ExitCode is the exit code returned by the command.
	ExitCode int
}

// Option configures a Command with global settings. Globals are applied at
// creation time and can be overridden per-invocation through the Executor
// methods.
type Option func(*Command)

// WithEnv returns an Option that sets global environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.config.globalEnv[k] = v
		}
	}
}

// WithDir returns an Option that sets the global working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.config.globalDir = dir
	}
}

// WithInheritEnv returns an Option that globally enables environment
// inheritance.
func WithInheritEnv() Option {
	return func(c *Command) {
		c.config.globalInheritEnv = true
	}
}
