package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newHeadCmd creates the head command.
func newHeadCmd() *cobra.Command {
	var shortFlag bool

	cmd := &cobra.Command{
		Use:   "head",
		Short: "Print the commit id HEAD points at",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := repositoryFromFlags(cmd)
			if err != nil {
				return err
			}

			var id string
			if shortFlag {
				id, err = repo.ShortRef("HEAD")
			} else {
				id, err = repo.Head()
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&shortFlag, "short", false, "Print the abbreviated commit id")

	return cmd
}
