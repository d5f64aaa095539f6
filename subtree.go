package gitwrap

import (
	"github.com/kalidis/gitwrap/errors"
)

// subtreePreconditions rejects subtree operations on bare repositories and,
// when requireClean is set, on dirty working trees. Subtree merges touch the
// index and HEAD, so git refuses them with uncommitted changes present.
func (r *Repository) subtreePreconditions(requireClean bool) error {
	if r.IsBare() {
		return errors.New(errors.CodePreconditionFailed, "subtree operations require a working tree")
	}
	if requireClean && !r.IsClean() {
		return errors.New(errors.CodeWorkTreeDirty, "working tree has uncommitted changes")
	}
	return nil
}

// SubtreeAdd imports a repository at revision into the subdirectory prefix,
// recording the merge with the given commit message.
func (r *Repository) SubtreeAdd(prefix, url, revision, message string) error {
	if err := r.subtreePreconditions(true); err != nil {
		return err
	}
	res := r.run("subtree", "add", "-q", "-P", prefix, url, revision, "-m", message)
	if res.ExitCode != 0 {
		return execFailure("subtree", res)
	}
	return nil
}

// SubtreePull merges new upstream history of a subtree into prefix.
func (r *Repository) SubtreePull(prefix, remote, ref, message string) error {
	if err := r.subtreePreconditions(true); err != nil {
		return err
	}
	res := r.run("subtree", "pull", "-q", "-P", prefix, remote, ref, "-m", message)
	if res.ExitCode != 0 {
		return execFailure("subtree", res)
	}
	return nil
}

// SubtreePush extracts the history of prefix and pushes it to ref on the
// remote. Pushing never rewrites the local tree, so a dirty work tree is
// allowed.
func (r *Repository) SubtreePush(prefix, remote, ref string) error {
	if err := r.subtreePreconditions(false); err != nil {
		return err
	}
	res := r.run("subtree", "push", "-q", "-P", prefix, remote, ref)
	if res.ExitCode != 0 {
		return execFailure("subtree", res)
	}
	return nil
}

// SubtreeSplit rewrites the history of prefix into a synthetic branch and
// rejoins it onto HEAD so later splits only walk new commits.
func (r *Repository) SubtreeSplit(prefix string) error {
	if err := r.subtreePreconditions(true); err != nil {
		return err
	}
	res := r.run("subtree", "split", "-P", prefix, "--rejoin", "HEAD")
	if res.ExitCode != 0 {
		return execFailure("subtree", res)
	}
	return nil
}
