package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var labelStyle = lipgloss.NewStyle().Bold(true).Width(10)

// newResolveCmd creates the resolve command.
func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Show the resolved repository context",
		Long: `Resolve the repository context from the given hints and print the
metadata directory, the working tree and the bareness determination.

Examples:
  gitwrap resolve                          # environment, then upward search
  gitwrap resolve --git-dir /srv/repo.git  # explicit metadata directory`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := repositoryFromFlags(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("git-dir"), repo.GitDir())
			if workTree, ok := repo.WorkTree(); ok {
				fmt.Fprintf(out, "%s %s\n", labelStyle.Render("work-tree"), workTree)
			}
			fmt.Fprintf(out, "%s %t\n", labelStyle.Render("bare"), repo.IsBare())
			return nil
		},
	}
}
