// Package testutil provides testing utilities for gitwrap: a scripted
// executor for exercising exit-code classification without a git binary,
// and on-disk repository fixtures built with go-git.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/kalidis/gitwrap/exec"
)

// Call records a single invocation observed by a ScriptedExecutor.
type Call struct {
	// Args is the full argument vector, command name included.
	Args []string

	// Env holds the environment variables accumulated through WithEnv at
	// the time of the call.
	Env map[string]string

	// Dir is the working directory set through WithDir, if any.
	Dir string
}

// ScriptedExecutor implements exec.Executor with canned outcomes. Each Run
// consumes the next scripted result in order and records the call; once the
// script is exhausted, Run reports success with empty output. The zero
// value is ready to use.
type ScriptedExecutor struct {
	// Calls holds every invocation in order.
	Calls []Call

	results []*exec.Result
	errs    []error

	env map[string]string
	dir string
}

// Script appends a canned outcome to the queue.
func (s *ScriptedExecutor) Script(res *exec.Result, err error) *ScriptedExecutor {
	s.results = append(s.results, res)
	s.errs = append(s.errs, err)
	return s
}

// ScriptExit is shorthand for scripting an exit with the given code and
// output streams.
func (s *ScriptedExecutor) ScriptExit(code int, stdout, stderr string) *ScriptedExecutor {
	return s.Script(&exec.Result{Stdout: stdout, Stderr: stderr, ExitCode: code}, nil)
}

// LastCall returns the most recent recorded invocation, failing the test
// when nothing has been invoked yet.
func (s *ScriptedExecutor) LastCall(t *testing.T) Call {
	t.Helper()

	if len(s.Calls) == 0 {
		t.Fatal("no command was invoked")
	}
	return s.Calls[len(s.Calls)-1]
}

func (s *ScriptedExecutor) WithEnv(env map[string]string) exec.Executor {
	if s.env == nil {
		s.env = make(map[string]string)
	}
	for k, v := range env {
		s.env[k] = v
	}
	return s
}

func (s *ScriptedExecutor) WithDir(dir string) exec.Executor {
	s.dir = dir
	return s
}

func (s *ScriptedExecutor) WithContext(_ context.Context) exec.Executor { return s }

func (s *ScriptedExecutor) WithTimeout(_ time.Duration) exec.Executor { return s }

func (s *ScriptedExecutor) WithInheritEnv() exec.Executor { return s }

func (s *ScriptedExecutor) Run(args ...string) (*exec.Result, error) {
	env := make(map[string]string, len(s.env))
	for k, v := range s.env {
		env[k] = v
	}
	s.Calls = append(s.Calls, Call{Args: args, Env: env, Dir: s.dir})
	s.env = nil
	s.dir = ""

	if len(s.results) == 0 {
		return &exec.Result{}, nil
	}
	res, err := s.results[0], s.errs[0]
	s.results, s.errs = s.results[1:], s.errs[1:]
	if res == nil && err == nil {
		return &exec.Result{}, nil
	}
	return res, err
}

func (s *ScriptedExecutor) Clone() exec.Executor { return s }
