package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fhuszti/movies-ms-go/internal/dto"
	"github.com/fhuszti/movies-ms-go/internal/port"
	movieSvc "github.com/fhuszti/movies-ms-go/internal/usecase/movie"
)

func newGetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "get <imdb-id>",
		Short: "Show the full record of a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if id == "" {
				return fmt.Errorf("IMDb ID is empty")
			}
			svc, err := ctx.services()
			if err != nil {
				return err
			}

			d, err := svc.getter.GetMovie(cmd.Context(), port.GetMovieInput{ID: id})
			if errors.Is(err, movieSvc.ErrMovieNotFound) {
				return fmt.Errorf("movie %s not found", id)
			}
			if err != nil {
				return fmt.Errorf("get %s: %w", id, err)
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, dto.FromMovieDetail(d))
			}

			rows := [][]string{
				{"IMDb ID", d.IMDbID},
				{"Title", d.Title},
				{"Year", d.Year},
				{"Type", d.Type.String()},
				{"Genre", d.Genre},
				{"Runtime", d.Runtime},
				{"Director", d.Director},
				{"Actors", d.Actors},
				{"IMDb rating", d.IMDbRating},
				{"Plot", d.Plot},
				{"Poster", d.Poster},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
			return nil
		},
	}
}
