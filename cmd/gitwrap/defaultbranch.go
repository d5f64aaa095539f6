package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newDefaultBranchCmd creates the default-branch command.
func newDefaultBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default-branch [<remote>]",
		Short: "Print the default branch of a remote",
		Long: `Resolve the branch a remote's HEAD points at. The remote defaults
to origin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := repositoryFromFlags(cmd)
			if err != nil {
				return err
			}

			remote := "origin"
			if len(args) > 0 {
				remote = args[0]
			}

			branch, err := repo.ResolveHead(remote)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), branch)
			return nil
		},
	}
}
