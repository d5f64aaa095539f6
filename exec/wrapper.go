package exec

import (
	"context"
	"time"
)

// Wrapper adapts an Executor to a single tool by prepending the tool name to
// every Run. It implements Executor itself, so it can be used anywhere an
// Executor is expected and layered over mocks in tests.
type Wrapper struct {
	executor Executor
	name     string
}

// NewWrapper creates a Wrapper that prepends name to all Run calls.
func NewWrapper(executor Executor, name string) *Wrapper {
	return &Wrapper{executor: executor, name: name}
}

// WithEnv sets environment variables for the next invocation.
func (w *Wrapper) WithEnv(env map[string]string) Executor {
	w.executor = w.executor.WithEnv(env)
	return w
}

// WithDir sets the working directory for the next invocation.
func (w *Wrapper) WithDir(dir string) Executor {
	w.executor = w.executor.WithDir(dir)
	return w
}

// WithContext sets the context for the next invocation.
func (w *Wrapper) WithContext(ctx context.Context) Executor {
	w.executor = w.executor.WithContext(ctx)
	return w
}

// WithTimeout bounds the next invocation with a deadline.
func (w *Wrapper) WithTimeout(timeout time.Duration) Executor {
	w.executor = w.executor.WithTimeout(timeout)
	return w
}

// WithInheritEnv passes the parent environment through to the command.
func (w *Wrapper) WithInheritEnv() Executor {
	w.executor = w.executor.WithInheritEnv()
	return w
}

// Run executes the wrapped tool with the given arguments.
func (w *Wrapper) Run(args ...string) (*Result, error) {
	return w.executor.Run(append([]string{w.name}, args...)...)
}

// Clone returns an independent wrapper over a clone of the underlying
// executor.
func (w *Wrapper) Clone() Executor {
	return &Wrapper{executor: w.executor.Clone(), name: w.name}
}
