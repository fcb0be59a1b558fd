package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fhuszti/movies-ms-go/internal/dto"
	"github.com/fhuszti/movies-ms-go/internal/port"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "Search movies by title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return fmt.Errorf("search text is empty")
			}
			svc, err := ctx.services()
			if err != nil {
				return err
			}

			res, err := svc.searcher.SearchMovies(cmd.Context(), port.SearchMoviesInput{Query: query})
			if err != nil {
				return fmt.Errorf("search %q: %w", query, err)
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, dto.FromSearchResult(res))
			}

			out := cmd.OutOrStdout()
			if !res.Success {
				fmt.Fprintf(out, "No results for %q: %s\n", query, res.Error)
				return nil
			}
			rows := make([][]string, 0, len(res.Items))
			for i, it := range res.Items {
				rows = append(rows, []string{strconv.Itoa(i + 1), it.IMDbID, it.Title, it.Year, it.Type.String()})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "IMDb ID", "Title", "Year", "Type"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
			))
			fmt.Fprintf(out, "%d shown, %s total upstream\n", len(res.Items), res.TotalResults)
			return nil
		},
	}
}
