package gitwrap

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kalidis/gitwrap/errors"
	"github.com/kalidis/gitwrap/exec"
)

// Environment variables consulted when Resolve is given no hints.
const (
	gitDirEnv   = "GIT_DIR"
	workTreeEnv = "GIT_WORK_TREE"
)

// AbsDir is an absolute path to a directory that existed when the value was
// constructed. Construction is the sole validation point: the path is never
// re-validated afterwards.
type AbsDir string

// newAbsDir canonicalizes a path into an AbsDir. Absolute inputs are trusted
// as-is without an existence check; relative inputs are resolved through the
// filesystem, which fails if any segment does not exist.
func newAbsDir(path string) (AbsDir, error) {
	if filepath.IsAbs(path) {
		return AbsDir(filepath.Clean(path)), nil
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.CodeInvalidInput, "failed to canonicalize path: %q", path)
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", errors.Wrapf(err, errors.CodeInvalidInput, "failed to canonicalize path: %q", path)
	}
	return AbsDir(abs), nil
}

// String returns the underlying path.
func (d AbsDir) String() string {
	return string(d)
}

// Join appends path elements to the directory.
func (d AbsDir) Join(elem ...string) string {
	return filepath.Join(append([]string{string(d)}, elem...)...)
}

// parent returns the parent directory, or false when the directory is the
// filesystem root.
func (d AbsDir) parent() (AbsDir, bool) {
	parent := filepath.Dir(string(d))
	if parent == string(d) {
		return "", false
	}
	return AbsDir(parent), true
}

// Resolve determines the repository context from the given hints, or fails
// deterministically.
//
// With no hints at all, the GIT_DIR and GIT_WORK_TREE environment variables
// are consulted before falling back to an upward search from the current
// working directory. A git-dir hint alone derives the working tree from the
// bareness of the repository. A work-tree hint alone constructs the git
// directory as the fixed-name entry inside it, without searching. When both
// hints are given they are canonicalized independently and no
// cross-validation is performed; the caller asserts their consistency.
// Relative hints are rooted under WithRootDir when one is given.
func Resolve(opts ...Option) (*Repository, error) {
	o := newOptions(opts)

	if o.rootDir == "" && o.gitDir == "" && o.workTree == "" {
		return resolveFromEnvironment(o)
	}

	switch {
	case o.gitDir != "" && o.workTree == "":
		gitDir, err := newAbsDir(under(o.rootDir, o.gitDir))
		if err != nil {
			return nil, err
		}
		workTree, err := workTreeFromGitDir(gitDir, o.command)
		if err != nil {
			return nil, err
		}
		return newRepository(gitDir, workTree, o), nil

	case o.gitDir == "" && o.workTree != "":
		workTree, err := newAbsDir(under(o.rootDir, o.workTree))
		if err != nil {
			return nil, err
		}
		gitDir, err := gitDirFromWorkTree(workTree)
		if err != nil {
			return nil, err
		}
		return newRepository(gitDir, workTree, o), nil

	case o.gitDir != "" && o.workTree != "":
		gitDir, err := newAbsDir(under(o.rootDir, o.gitDir))
		if err != nil {
			return nil, err
		}
		workTree, err := newAbsDir(under(o.rootDir, o.workTree))
		if err != nil {
			return nil, err
		}
		return newRepository(gitDir, workTree, o), nil

	default: // root directory only
		gitDir, err := searchGitDir(o.rootDir)
		if err != nil {
			return nil, err
		}
		workTree, err := workTreeFromGitDir(gitDir, o.command)
		if err != nil {
			return nil, err
		}
		return newRepository(gitDir, workTree, o), nil
	}
}

// resolveFromEnvironment implements the no-hint path: environment variables
// first, then an upward search from the current working directory.
func resolveFromEnvironment(o *options) (*Repository, error) {
	var gitDir AbsDir
	if value, ok := os.LookupEnv(gitDirEnv); ok {
		var err error
		gitDir, err = newAbsDir(value)
		if err != nil {
			return nil, err
		}
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeAccessDenied, "failed to access current working directory")
		}
		gitDir, err = searchGitDir(cwd)
		if err != nil {
			return nil, err
		}
	}

	var workTree AbsDir
	if value, ok := os.LookupEnv(workTreeEnv); ok {
		var err error
		workTree, err = newAbsDir(value)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		workTree, err = workTreeFromGitDir(gitDir, o.command)
		if err != nil {
			return nil, err
		}
	}

	return newRepository(gitDir, workTree, o), nil
}

// Discover locates the repository containing path by upward search and
// resolves its context.
func Discover(path string, opts ...Option) (*Repository, error) {
	o := newOptions(opts)

	gitDir, err := searchGitDir(path)
	if err != nil {
		return nil, err
	}
	workTree, err := workTreeFromGitDir(gitDir, o.command)
	if err != nil {
		return nil, err
	}
	return newRepository(gitDir, workTree, o), nil
}

// under roots a relative path below root. Absolute paths and paths with no
// root pass through unchanged.
func under(root, path string) string {
	if root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// searchGitDir finds the metadata directory for start. The start directory
// itself wins when it carries the structural markers of a git directory;
// otherwise its ancestors, start included, are walked looking for a .git
// directory entry, nearest match first.
func searchGitDir(start string) (AbsDir, error) {
	path := start
	if !filepath.IsAbs(path) {
		resolved, err := filepath.EvalSymlinks(path)
		if err != nil {
			return "", errors.Newf(errors.CodeInvalidInput, "invalid directory: %q", start)
		}
		path, err = filepath.Abs(resolved)
		if err != nil {
			return "", errors.Newf(errors.CodeInvalidInput, "invalid directory: %q", start)
		}
	}
	path = filepath.Clean(path)

	if isGitDir(path) {
		return AbsDir(path), nil
	}

	for dir := path; ; {
		candidate := filepath.Join(dir, ".git")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return AbsDir(candidate), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", errors.New(errors.CodeNotFound, "git directory not found")
}

// isGitDir reports whether path carries the two structural markers of a
// metadata directory: a HEAD file and an objects subdirectory.
func isGitDir(path string) bool {
	head, err := os.Stat(filepath.Join(path, "HEAD"))
	if err != nil || !head.Mode().IsRegular() {
		return false
	}
	objects, err := os.Stat(filepath.Join(path, "objects"))
	return err == nil && objects.IsDir()
}

// workTreeFromGitDir derives the working tree for a metadata directory. The
// bareness probe compares git's answer against the literal "true" token;
// any probe failure classifies as not bare. A bare repository yields an
// empty working tree.
func workTreeFromGitDir(gitDir AbsDir, command exec.Executor) (AbsDir, error) {
	git := exec.NewWrapper(command, "git")
	res, err := git.Run("--git-dir", gitDir.String(), "rev-parse", "--is-bare-repository")
	if err == nil && res.ExitCode == 0 && strings.TrimSpace(res.Stdout) == "true" {
		return "", nil
	}

	parent, ok := gitDir.parent()
	if !ok {
		return "", nil
	}
	return parent, nil
}

// gitDirFromWorkTree constructs the metadata directory path as the
// fixed-name entry inside the working tree. The path is constructed, not
// searched: no existence check is performed beyond the working tree's own
// canonicalization.
func gitDirFromWorkTree(workTree AbsDir) (AbsDir, error) {
	return newAbsDir(workTree.Join(".git"))
}
