package exec

import (
	"bytes"
	"context"
	"errors"
	osexec "os/exec"
	"time"
)

// Command is the concrete implementation of Executor backed by os/exec.
// The zero value is not usable; construct instances with New.
type Command struct {
	config  *config
	ctx     context.Context
	timeout time.Duration
}

// New creates a Command with the given global options.
func New(opts ...Option) *Command {
	cmd := &Command{
		config: newConfig(),
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(cmd)
	}
	return cmd
}

// WithEnv sets environment variables for the next invocation.
func (c *Command) WithEnv(env map[string]string) Executor {
	for k, v := range env {
		c.config.localEnv[k] = v
	}
	return c
}

// WithDir sets the working directory for the next invocation.
func (c *Command) WithDir(dir string) Executor {
	c.config.localDir = dir
	return c
}

// WithContext sets the context for the next invocation.
func (c *Command) WithContext(ctx context.Context) Executor {
	c.ctx = ctx
	return c
}

// WithTimeout bounds the next invocation with a deadline.
func (c *Command) WithTimeout(timeout time.Duration) Executor {
	c.timeout = timeout
	return c
}

// WithInheritEnv passes the parent environment through to the command.
func (c *Command) WithInheritEnv() Executor {
	val := true
	c.config.localInheritEnv = &val
	return c
}

// Run executes the command described by args, blocking until it exits and
// capturing both output streams in full. Local configuration is consumed by
// the call and reset afterwards.
func (c *Command) Run(args ...string) (*Result, error) {
	defer c.reset()

	if len(args) == 0 {
		return nil, &Error{Command: args, ExitCode: -1, Err: osexec.ErrNotFound}
	}

	ctx := c.ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)
	if dir := c.config.effectiveDir(); dir != "" {
		cmd.Dir = dir
	}
	if env := c.config.effectiveEnv(); env != nil {
		cmd.Env = env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *osexec.ExitError
		if !errors.As(err, &exitErr) {
			// The process never ran: binary missing, start failure, or the
			// context expired before exec.
			return nil, &Error{Command: args, ExitCode: -1, Err: err}
		}
	}

	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}

	if err != nil {
		return result, &Error{
			Command:  args,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Err:      err,
		}
	}
	return result, nil
}

// Clone returns an independent Command with the same global configuration.
// Pending single-invocation settings, the context and timeout included, are
// not carried over.
func (c *Command) Clone() Executor {
	return &Command{
		config: c.config.clone(),
		ctx:    context.Background(),
	}
}

// reset clears local configuration so it does not leak into the next Run.
func (c *Command) reset() {
	c.config.resetLocal()
	c.ctx = context.Background()
	c.timeout = 0
}
