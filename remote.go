package gitwrap

import (
	"strings"

	"github.com/kalidis/gitwrap/errors"
	"github.com/kalidis/gitwrap/exec"
)

// Remote describes a configured remote with its fetch and push URLs. An
// empty URL means the direction is not configured.
type Remote struct {
	Name  string
	Fetch string
	Push  string
}

// Remotes lists the configured remotes keyed by name, parsed from the
// tab-and-space structure of git-remote(1) verbose output.
func (r *Repository) Remotes() (map[string]Remote, error) {
	res := r.run("remote", "-v")
	if res.ExitCode != 0 {
		return nil, execFailure("remote", res)
	}

	remotes := make(map[string]Remote)
	for _, line := range strings.Split(res.Stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		name, rest, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, errors.Newf(errors.CodeParseFailed, "malformed git-remote(1) line: %q", line)
		}
		url, direction, ok := strings.Cut(rest, " ")
		if !ok {
			return nil, errors.Newf(errors.CodeParseFailed, "malformed git-remote(1) line: %q", line)
		}

		remote := remotes[name]
		remote.Name = name
		if direction == "(fetch)" {
			remote.Fetch = url
		} else {
			remote.Push = url
		}
		remotes[name] = remote
	}
	return remotes, nil
}

// RemoteRefToID resolves a reference on a remote to its object id. The
// three failure modes are distinct: a non-zero exit reports the query
// failure with git's diagnostics, an empty listing means the reference does
// not exist, and a listing line that cannot be split is a parse failure.
func (r *Repository) RemoteRefToID(remote, ref string) (string, error) {
	res, err := r.git().Run("ls-remote", remote, ref)
	if res == nil {
		return "", errors.Wrap(err, errors.CodeExecutionFailed, "failed to execute git-ls-remote(1)")
	}
	if res.ExitCode != 0 {
		return "", execFailure("ls-remote", res)
	}

	line, _, _ := strings.Cut(res.Stdout, "\n")
	if strings.TrimSpace(line) == "" {
		return "", errors.Newf(errors.CodeNotFound, "reference not found on remote: %q", ref)
	}
	id, _, ok := strings.Cut(line, "\t")
	if !ok {
		return "", errors.Newf(errors.CodeParseFailed, "malformed git-ls-remote(1) line: %q", line)
	}
	return id, nil
}

// ResolveHead determines the default branch of a remote via the symbolic
// HEAD listing.
func (r *Repository) ResolveHead(remote string) (string, error) {
	res, err := r.git().Run("ls-remote", "--symref", remote, "HEAD")
	if res == nil {
		return "", errors.Wrap(err, errors.CodeExecutionFailed, "failed to execute git-ls-remote(1)")
	}
	if res.ExitCode != 0 {
		return "", execFailure("ls-remote", res)
	}

	line, _, _ := strings.Cut(res.Stdout, "\n")
	target, _, _ := strings.Cut(line, "\t")
	name, ok := refName(target)
	if !ok {
		return "", errors.Newf(errors.CodeParseFailed, "cannot parse HEAD from remote: %q", line)
	}
	return name, nil
}

// TagsFromRemote lists the tag names of a remote given its URL. Lines that
// do not carry a two-level reference prefix are skipped.
func TagsFromRemote(url string, opts ...Option) ([]string, error) {
	o := newOptions(opts)

	git := exec.NewWrapper(o.command, "git")
	res, err := git.Run("ls-remote", "--refs", "--tags", url)
	if res == nil {
		return nil, errors.Wrap(err, errors.CodeExecutionFailed, "failed to execute git-ls-remote(1)")
	}
	if res.ExitCode != 0 {
		return nil, execFailure("ls-remote", res)
	}

	var tags []string
	for _, line := range strings.Split(res.Stdout, "\n") {
		if name, ok := refName(line); ok {
			tags = append(tags, name)
		}
	}
	return tags, nil
}

// refName discards exactly the first two "/"-separated segments of a
// reference listing line and keeps the remainder verbatim, embedded "/"
// characters included.
func refName(line string) (string, bool) {
	parts := strings.SplitN(line, "/", 3)
	if len(parts) < 3 {
		return "", false
	}
	return parts[2], true
}
