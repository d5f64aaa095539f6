package gitwrap

import (
	"github.com/go-git/go-billy/v5"

	"github.com/kalidis/gitwrap/exec"
)

// Option configures resolution and repository construction.
type Option func(*options)

// options holds the configuration assembled from Option values.
type options struct {
	rootDir  string
	gitDir   string
	workTree string
	command  exec.Executor
	fs       billy.Filesystem
}

func newOptions(opts []Option) *options {
	o := &options{command: exec.New()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithRootDir roots relative git-dir and work-tree hints under dir.
func WithRootDir(dir string) Option {
	return func(o *options) {
		o.rootDir = dir
	}
}

// WithGitDir supplies an explicit metadata-directory hint.
func WithGitDir(dir string) Option {
	return func(o *options) {
		o.gitDir = dir
	}
}

// WithWorkTree supplies an explicit working-tree hint.
func WithWorkTree(dir string) Option {
	return func(o *options) {
		o.workTree = dir
	}
}

// WithExecutor sets the executor used for every git invocation. The default
// spawns real processes; tests substitute scripted implementations that
// return canned outcomes.
func WithExecutor(command exec.Executor) Option {
	return func(o *options) {
		o.command = command
	}
}

// WithFilesystem sets the billy filesystem used for working-tree file reads.
// If not provided, the OS filesystem rooted at the working tree is used.
// Memory filesystems only make sense for testing ReadFile; git itself always
// operates on the real filesystem.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}
