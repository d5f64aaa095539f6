// Package main provides the entry point for the gitwrap CLI, a thin
// command-line surface over the repository resolver and query operations.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/kalidis/gitwrap"
	giterrors "github.com/kalidis/gitwrap/errors"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2026-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCmd()
	if err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion())); err != nil {
		return giterrors.Errno(err)
	}
	return 0
}

// newRootCmd creates the root command for the gitwrap CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gitwrap",
		Short: "Resolve and query git repositories at the process boundary",
		Long: `Gitwrap resolves a git repository context from hints, environment
variables or an upward search, and runs queries against it through the
installed git binary.

Exit codes follow POSIX errno conventions: 2 when something was not
found, 22 on invalid input, and the git exit code verbatim when an
invocation fails.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("git-dir", "", "Path to the repository metadata directory")
	cmd.PersistentFlags().String("work-tree", "", "Path to the working tree")
	cmd.PersistentFlags().String("root", "", "Directory relative hints are rooted under")

	cmd.AddCommand(
		newResolveCmd(),
		newHeadCmd(),
		newRemotesCmd(),
		newConfigCmd(),
		newTagsCmd(),
		newDefaultBranchCmd(),
	)

	return cmd
}

// repositoryFromFlags resolves the repository context described by the
// persistent flags. With no flags set, resolution falls back to the
// environment and an upward search from the current directory.
func repositoryFromFlags(cmd *cobra.Command) (*gitwrap.Repository, error) {
	flags := cmd.Root().PersistentFlags()

	var opts []gitwrap.Option
	if dir, _ := flags.GetString("git-dir"); dir != "" {
		opts = append(opts, gitwrap.WithGitDir(dir))
	}
	if dir, _ := flags.GetString("work-tree"); dir != "" {
		opts = append(opts, gitwrap.WithWorkTree(dir))
	}
	if dir, _ := flags.GetString("root"); dir != "" {
		opts = append(opts, gitwrap.WithRootDir(dir))
	}

	return gitwrap.Resolve(opts...)
}
