package main

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
)

const defaultHydrateLimit = 100

func newHydrateBacklogCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "hydrate-backlog",
		Short: "Queue detail lookups for movies only known from searches",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}
			svc, err := ctx.services()
			if err != nil {
				return err
			}
			if svc.hydrator == nil {
				return errNoQueue
			}

			lock := flock.New(svc.lockPath)
			ok, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock: %w", err)
			}
			if !ok {
				return errors.New("another hydrate-backlog run is in progress (lock " + svc.lockPath + ")")
			}
			defer func() { _ = lock.Unlock() }()

			n, err := svc.hydrator.HydrateBacklog(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("hydrate backlog: %w", err)
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]int{"enqueued": n})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Enqueued %d hydrate task(s)\n", n)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultHydrateLimit, "Maximum number of movies to enqueue")
	return cmd
}
