package gitwrap

import (
	"fmt"
	"strings"

	"github.com/kalidis/gitwrap/errors"
	"github.com/kalidis/gitwrap/exec"
)

// Config returns the value for a configuration key. Expected git-config(1)
// exit codes are 0, 1 (invalid section or key) and 3 (invalid config file).
func (r *Repository) Config(key string) (string, error) {
	res := r.run("config", key)
	switch res.ExitCode {
	case 0:
		return strings.TrimSpace(res.Stdout), nil
	case 1:
		return "", errors.Newf(errors.CodeInvalidInput, "invalid section or key: %q", key)
	case 3:
		return "", errors.Newf(errors.CodeInvalidConfig, "invalid config file: %s", strings.TrimSpace(res.Stderr))
	default:
		unexpectedExit("config", res)
		return "", nil // unreachable
	}
}

// ConfigFileSet writes a key to a value in the given configuration file,
// independent of any repository context. Expected git-config(1) exit codes
// are 0, 1 (invalid section or key), 3 (invalid config file) and 4 (write
// failure).
func ConfigFileSet(file, key, value string, opts ...Option) error {
	o := newOptions(opts)

	git := exec.NewWrapper(o.command, "git")
	res, err := git.Run("config", "--file", file, key, value)
	if res == nil {
		panic(fmt.Sprintf("gitwrap: failed to execute git-config(1): %v", err))
	}
	switch res.ExitCode {
	case 0:
		return nil
	case 1:
		return errors.Newf(errors.CodeInvalidInput, "invalid section or key: %q", key)
	case 3:
		return errors.Newf(errors.CodeInvalidConfig, "invalid config file: %s", strings.TrimSpace(res.Stderr))
	case 4:
		return errors.Newf(errors.CodeWriteFailed, "failed to write config file: %s", strings.TrimSpace(res.Stderr))
	default:
		unexpectedExit("config", res)
		return nil // unreachable
	}
}
