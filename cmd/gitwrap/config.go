package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kalidis/gitwrap"
)

// newConfigCmd creates the config command with its get and set subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and write git configuration",
	}

	cmd.AddCommand(newConfigGetCmd(), newConfigSetCmd())

	return cmd
}

// newConfigGetCmd creates the config get subcommand.
func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a configuration value from the resolved repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := repositoryFromFlags(cmd)
			if err != nil {
				return err
			}

			value, err := repo.Config(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

// newConfigSetCmd creates the config set subcommand. It writes to an
// explicit file and needs no repository context.
func newConfigSetCmd() *cobra.Command {
	var fileFlag string

	cmd := &cobra.Command{
		Use:   "set --file <path> <key> <value>",
		Short: "Write a configuration value to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return gitwrap.ConfigFileSet(fileFlag, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&fileFlag, "file", "", "Configuration file to write to")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
