package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// newRemotesCmd creates the remotes command.
func newRemotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remotes",
		Short: "List the configured remotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := repositoryFromFlags(cmd)
			if err != nil {
				return err
			}

			remotes, err := repo.Remotes()
			if err != nil {
				return err
			}

			names := make([]string, 0, len(remotes))
			for name := range remotes {
				names = append(names, name)
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			for _, name := range names {
				remote := remotes[name]
				fmt.Fprintf(out, "%s %s", labelStyle.Render(remote.Name), remote.Fetch)
				if remote.Push != remote.Fetch && remote.Push != "" {
					fmt.Fprintf(out, " (push: %s)", remote.Push)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
