package gitwrap

import (
	"strings"

	"github.com/kalidis/gitwrap/errors"
)

// Commit records the staged changes with the given message.
func (r *Repository) Commit(message string) error {
	if r.IsBare() {
		return errors.New(errors.CodePreconditionFailed, "bare repository has no working tree")
	}

	res := r.run("commit", "-m", message)
	if res.ExitCode != 0 {
		return execFailure("commit", res)
	}
	return nil
}

// MergeBase finds the best common ancestor of the given commits. It returns
// an empty id without error when there is none. Expected git-merge-base(1)
// exit codes are 0, 1 and 128.
func (r *Repository) MergeBase(revs ...string) (string, error) {
	res := r.run(append([]string{"merge-base"}, revs...)...)
	switch res.ExitCode {
	case 0:
		return strings.TrimSpace(res.Stdout), nil
	case 1:
		return "", nil
	case 128:
		return "", errors.Newf(errors.CodeInvalidInput, "invalid reference or commit id: %v", revs)
	default:
		unexpectedExit("merge-base", res)
		return "", nil // unreachable
	}
}

// IsAncestor reports whether first is an ancestor of second.
func (r *Repository) IsAncestor(first, second string) bool {
	return r.run("merge-base", "--is-ancestor", first, second).ExitCode == 0
}
