package gitwrap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/kalidis/gitwrap/errors"
	"github.com/kalidis/gitwrap/exec"
)

// Repository is the resolved context for one git repository: the metadata
// directory and, for non-bare repositories, the working tree. A Repository
// is immutable after construction; operations never change its fields, and
// read-only sharing across goroutines is safe. The core provides no locking,
// so callers must not issue concurrent mutating operations against the same
// context.
type Repository struct {
	gitDir   AbsDir
	workTree AbsDir // empty for bare repositories
	command  exec.Executor
	fs       billy.Filesystem // scoped to the working tree; nil when bare
}

// newRepository assembles a Repository from resolved paths. An empty
// workTree means the repository is bare.
func newRepository(gitDir, workTree AbsDir, o *options) *Repository {
	r := &Repository{
		gitDir:   gitDir,
		workTree: workTree,
		command:  o.command,
	}
	if workTree != "" {
		if o.fs != nil {
			r.fs = o.fs
		} else {
			r.fs = osfs.New(workTree.String())
		}
	}
	return r
}

// Init creates a non-bare repository in path, which must already exist.
func Init(path string, opts ...Option) (*Repository, error) {
	o := newOptions(opts)

	res, err := o.command.WithDir(path).Run("git", "init")
	if res == nil {
		return nil, errors.Wrap(err, errors.CodeExecutionFailed, "failed to execute git-init(1)")
	}
	if res.ExitCode != 0 {
		return nil, execFailure("init", res)
	}

	workTree, err := newAbsDir(path)
	if err != nil {
		return nil, err
	}
	gitDir, err := gitDirFromWorkTree(workTree)
	if err != nil {
		return nil, err
	}
	return newRepository(gitDir, workTree, o), nil
}

// InitBare creates a bare repository in path, which must already exist.
func InitBare(path string, opts ...Option) (*Repository, error) {
	o := newOptions(opts)

	res, err := o.command.WithDir(path).Run("git", "init", "--bare")
	if res == nil {
		return nil, errors.Wrap(err, errors.CodeExecutionFailed, "failed to execute git-init(1)")
	}
	if res.ExitCode != 0 {
		return nil, execFailure("init", res)
	}

	gitDir, err := newAbsDir(path)
	if err != nil {
		return nil, err
	}
	return newRepository(gitDir, "", o), nil
}

// IsBare reports whether the repository has no working tree.
func (r *Repository) IsBare() bool {
	return r.workTree == ""
}

// GitDir returns the metadata directory path.
func (r *Repository) GitDir() string {
	return r.gitDir.String()
}

// WorkTree returns the working-tree path, or false for bare repositories.
func (r *Repository) WorkTree() (string, bool) {
	if r.IsBare() {
		return "", false
	}
	return r.workTree.String(), true
}

// git returns an executor prepared with the repository environment: GIT_DIR
// always, plus GIT_WORK_TREE and the working directory for non-bare
// repositories. The parent environment is inherited so git can find its
// own helpers. Each call clones the underlying executor, so pending
// per-invocation settings are never shared between concurrent operations.
func (r *Repository) git() exec.Executor {
	g := exec.NewWrapper(r.command.Clone(), "git").
		WithInheritEnv().
		WithEnv(map[string]string{gitDirEnv: r.gitDir.String()})
	if !r.IsBare() {
		g = g.WithEnv(map[string]string{workTreeEnv: r.workTree.String()}).
			WithDir(r.workTree.String())
	}
	return g
}

// run executes one git subcommand against the repository context and
// returns the outcome for classification. Failing to spawn git at all is a
// broken contract with the host system and aborts.
func (r *Repository) run(args ...string) *exec.Result {
	res, err := r.git().Run(args...)
	if res == nil {
		panic(fmt.Sprintf("gitwrap: failed to execute git %s: %v", strings.Join(args, " "), err))
	}
	return res
}

// unexpectedExit aborts on an exit code outside the documented contract of
// a subcommand. Converting it into a typed error would mask an incompatible
// git version, so the operation terminates abnormally instead.
func unexpectedExit(subcommand string, res *exec.Result) {
	panic(fmt.Sprintf("gitwrap: unexpected git-%s(1) exit code %d: %s",
		subcommand, res.ExitCode, strings.TrimSpace(res.Stderr)))
}

// execFailure builds the typed error for a documented failure of a git
// subcommand, preserving the diagnostic text and exit code verbatim.
func execFailure(subcommand string, res *exec.Result) errors.Error {
	stderr := strings.TrimSpace(res.Stderr)
	return errors.WithDetails(
		errors.Newf(errors.CodeExecutionFailed, "git-%s(1) failed: %s", subcommand, stderr),
		map[string]any{
			"exit_code": res.ExitCode,
			"stderr":    stderr,
		},
	)
}

// Head returns the commit id HEAD points at.
func (r *Repository) Head() (string, error) {
	res := r.run("rev-parse", "HEAD")
	if res.ExitCode != 0 {
		return "", errors.New(errors.CodeNotFound, "HEAD is not resolvable")
	}
	return strings.TrimSpace(res.Stdout), nil
}

// ShortRef resolves a reference to its abbreviated commit id.
func (r *Repository) ShortRef(ref string) (string, error) {
	res := r.run("rev-parse", "--short", ref)
	if res.ExitCode != 0 {
		return "", errors.Newf(errors.CodeInvalidInput, "invalid reference: %q", ref)
	}
	return strings.TrimSpace(res.Stdout), nil
}

// IsClean reports whether the working tree has no unstaged changes and HEAD
// resolves to a commit.
func (r *Repository) IsClean() bool {
	if res := r.run("diff", "--quiet"); res.ExitCode != 0 {
		return false
	}
	return r.run("rev-parse", "HEAD").ExitCode == 0
}

// IsSparse reports whether the repository has a sparse-checkout configured.
func (r *Repository) IsSparse() bool {
	_, err := os.Stat(filepath.Join(r.gitDir.String(), "info", "sparse-checkout"))
	return err == nil
}
