package exec

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"
)

// recordingExecutor is a minimal Executor that records the argument vectors
// it receives instead of spawning processes.
type recordingExecutor struct {
	calls  [][]string
	result *Result
	err    error
}

func (r *recordingExecutor) WithEnv(map[string]string) Executor   { return r }
func (r *recordingExecutor) WithDir(string) Executor              { return r }
func (r *recordingExecutor) WithContext(context.Context) Executor { return r }
func (r *recordingExecutor) WithTimeout(time.Duration) Executor   { return r }
func (r *recordingExecutor) WithInheritEnv() Executor             { return r }
func (r *recordingExecutor) Clone() Executor                      { return r }

func (r *recordingExecutor) Run(args ...string) (*Result, error) {
	r.calls = append(r.calls, args)
	if r.result == nil {
		return &Result{}, r.err
	}
	return r.result, r.err
}

func TestWrapperPrependsName(t *testing.T) {
	rec := &recordingExecutor{}
	git := NewWrapper(rec, "git")

	if _, err := git.Run("rev-parse", "HEAD"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"git", "rev-parse", "HEAD"}
	if len(rec.calls) != 1 || !reflect.DeepEqual(rec.calls[0], want) {
		t.Errorf("expected call %v, got: %v", want, rec.calls)
	}
}

func TestWrapperPassesResultThrough(t *testing.T) {
	rec := &recordingExecutor{result: &Result{Stdout: "ok\n", ExitCode: 0}}
	git := NewWrapper(rec, "git")

	result, err := git.Run("status")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Stdout != "ok\n" {
		t.Errorf("expected passthrough result, got: %+v", result)
	}
}

func TestWrapperWithRealCommand(t *testing.T) {
	echo := NewWrapper(New(), "echo")
	result, err := echo.Run("wrapped")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.Stdout, "wrapped") {
		t.Errorf("expected stdout to contain 'wrapped', got: %s", result.Stdout)
	}
}

func TestWrapperClone(t *testing.T) {
	git := NewWrapper(New(), "echo")
	clone := git.Clone()

	if _, ok := clone.(*Wrapper); !ok {
		t.Fatalf("expected clone to be a *Wrapper, got: %T", clone)
	}
}
