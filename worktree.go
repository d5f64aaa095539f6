package gitwrap

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/util"

	"github.com/kalidis/gitwrap/errors"
)

// Stage adds a file to the index. Absolute paths must lie inside the
// working tree and are rebased onto it before invocation.
func (r *Repository) Stage(path string) error {
	if r.IsBare() {
		return errors.New(errors.CodePreconditionFailed, "bare repository has no working tree")
	}

	rel := path
	if filepath.IsAbs(path) {
		var err error
		rel, err = filepath.Rel(r.workTree.String(), path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return errors.Newf(errors.CodeInvalidInput, "path outside working tree: %q", path)
		}
	}

	res := r.run("add", "--", rel)
	switch res.ExitCode {
	case 0:
		return nil
	case 128:
		return errors.Newf(errors.CodeNotFound, "file does not exist: %q", rel)
	default:
		return execFailure("add", res)
	}
}

// ResetHard resets the working tree and index to the given revision.
func (r *Repository) ResetHard(rev string) error {
	res := r.run("reset", "--hard", "--quiet", rev)
	if res.ExitCode != 0 {
		return execFailure("reset", res)
	}
	return nil
}

// SparseCheckoutAdd adds a pattern to the sparse-checkout definition.
func (r *Repository) SparseCheckoutAdd(pattern string) error {
	res := r.run("sparse-checkout", "add", pattern)
	if res.ExitCode != 0 {
		return execFailure("sparse-checkout", res)
	}
	return nil
}

// ReadFile reads a tracked file. Non-bare repositories read from the
// working tree through the repository filesystem; bare repositories read
// the staged blob via git-show(1).
func (r *Repository) ReadFile(path string) ([]byte, error) {
	if !r.IsBare() {
		data, err := util.ReadFile(r.fs, path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Newf(errors.CodeNotFound, "file does not exist: %q", path)
			}
			return nil, errors.Wrapf(err, errors.CodeUnknown, "failed to read file: %q", path)
		}
		return data, nil
	}

	res := r.run("show", ":"+path)
	switch res.ExitCode {
	case 0:
		return []byte(res.Stdout), nil
	case 128:
		return nil, errors.Newf(errors.CodeNotFound, "file not in tree: %q", path)
	default:
		return nil, execFailure("show", res)
	}
}
