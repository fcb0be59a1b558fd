package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newPurgeNegativeCommand(ctx *commandContext) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "purge-negative",
		Short: "Delete cached \"no results\" searches older than a cutoff",
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan < 0 {
				return fmt.Errorf("--older-than must not be negative, got %s", olderThan)
			}
			svc, err := ctx.services()
			if err != nil {
				return err
			}

			n, err := svc.purger.PurgeNegativeSearches(cmd.Context(), olderThan)
			if err != nil {
				return fmt.Errorf("purge negative searches: %w", err)
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]int{"purged": n})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Purged %d negative search(es) older than %s\n", n, olderThan)
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "Only purge entries created before now minus this duration")
	return cmd
}
