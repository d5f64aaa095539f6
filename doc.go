// Package gitwrap wraps the git(1) command line at the process boundary:
// repository discovery, subprocess invocation, and the translation of git
// exit codes and diagnostics into typed platform errors.
//
// Unlike libraries that reimplement Git object access in process, gitwrap
// delegates every operation to the installed git binary. What it adds is a
// stable contract on top of that boundary.
//
// # Repository Context
//
// A Repository captures a resolved pair of absolute paths: the metadata
// directory (GIT_DIR) and, for non-bare repositories, the working tree
// (GIT_WORK_TREE). Resolve builds that pair from explicit hints, the
// process environment, or an upward filesystem search:
//
//	// Discover from the current directory
//	repo, err := gitwrap.Discover(".")
//
//	// Resolve from explicit hints
//	repo, err := gitwrap.Resolve(
//	    gitwrap.WithGitDir("/srv/repos/project.git"),
//	)
//
// Every subsequent invocation runs with GIT_DIR and GIT_WORK_TREE pinned
// in the child environment, so results do not depend on the caller's
// working directory.
//
// # Error Classification
//
// Each operation documents the exit codes its git subcommand can produce
// and maps them onto the error taxonomy in the errors sub-package
// (CodeNotFound, CodeInvalidInput, CodeExecutionFailed, and so on):
//
//	if err := repo.Stage("missing.txt"); giterrors.IsCode(err, giterrors.CodeNotFound) {
//	    // the path does not exist in the working tree
//	}
//
// An exit code outside an operation's documented contract indicates an
// incompatible git version and aborts with a panic rather than returning
// a typed error.
//
// # Process Execution
//
// The exec sub-package supplies the Executor abstraction the repository
// invokes git through. The default executor spawns real processes; tests
// substitute scripted implementations that return canned Result values,
// so classification logic can be exercised without a git binary:
//
//	repo, err := gitwrap.Resolve(
//	    gitwrap.WithGitDir(dir),
//	    gitwrap.WithExecutor(scripted),
//	)
//
// # Filesystem Access
//
// Working-tree file reads go through the go-billy filesystem abstraction.
// By default files are read from the OS filesystem rooted at the working
// tree; tests can provide a memory filesystem via WithFilesystem. Bare
// repositories have no working tree, so ReadFile falls back to git-show(1)
// against HEAD.
package gitwrap
