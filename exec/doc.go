// Package exec provides a testable capability for running external commands.
//
// It wraps the standard library's os/exec with a small fluent API. The
// concrete Command type implements the Executor interface; consuming code
// accepts the interface, so tests can substitute scripted implementations
// that return canned results instead of spawning real processes.
//
// # Basic usage
//
//	cmd := exec.New(exec.WithInheritEnv())
//	result, err := cmd.Run("git", "status")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Stdout)
//
// Configuration is split between global options (set at creation time) and
// local settings (set per-invocation). Local settings override globals and
// are reset after each Run:
//
//	result, err := cmd.
//		WithDir("/repo").
//		WithEnv(map[string]string{"GIT_DIR": "/repo/.git"}).
//		Run("git", "rev-parse", "HEAD")
//
// # Wrappers
//
// For tools invoked repeatedly, a Wrapper prepends the tool name to every
// Run:
//
//	git := exec.NewWrapper(cmd, "git")
//	result, err := git.WithDir("/repo").Run("status")
//
// # Errors and exit codes
//
// Run captures both output streams in full and reports the exit code in the
// Result. A non-zero exit yields both the Result and an *Error carrying the
// exit code and output, so callers can classify documented failure codes
// while still reading the diagnostics:
//
//	result, err := git.Run("config", key)
//	if result != nil && result.ExitCode == 1 {
//		// documented failure, inspect result.Stderr
//	}
//
// A nil Result means the process never ran (binary not found, spawn
// failure, context expired before exec).
package exec
