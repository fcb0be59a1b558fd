package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	return newRootCommandWith(buildServices)
}

func newRootCommandWith(build func() (*services, error)) *cobra.Command {
	var jsonFlag bool

	ctx := newCommandContext(&jsonFlag, build)

	rootCmd := &cobra.Command{
		Use:           "moviectl",
		Short:         "Movie lookup engine CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Print raw JSON instead of a table")

	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newGetCommand(ctx))
	rootCmd.AddCommand(newHydrateBacklogCommand(ctx))
	rootCmd.AddCommand(newPurgeNegativeCommand(ctx))

	return rootCmd
}
