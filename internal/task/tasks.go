package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeHydrateMovie = "movie:hydrate"

type HydrateMoviePayload struct {
	IMDbID string `json:"imdb_id"`
}

// NewHydrateMovieTask creates an Asynq task for fetching the details of a movie by IMDb ID.
func NewHydrateMovieTask(imdbID string) (*asynq.Task, error) {
	p := HydrateMoviePayload{IMDbID: imdbID}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal hydrate-movie payload: %w", err)
	}
	return asynq.NewTask(TypeHydrateMovie, data), nil
}

// ParseHydrateMoviePayload parses the task payload to HydrateMoviePayload.
func ParseHydrateMoviePayload(t *asynq.Task) (HydrateMoviePayload, error) {
	var p HydrateMoviePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return HydrateMoviePayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	if p.IMDbID == "" {
		return HydrateMoviePayload{}, fmt.Errorf("payload has no imdb_id")
	}
	return p, nil
}
