package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kalidis/gitwrap"
)

// newTagsCmd creates the tags command.
func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags <url>",
		Short: "List the tags of a remote by URL",
		Long: `List the tag names of a remote repository without cloning it.

Examples:
  gitwrap tags https://example.com/project.git`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := gitwrap.TagsFromRemote(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, tag := range tags {
				fmt.Fprintln(out, tag)
			}
			return nil
		},
	}
}
