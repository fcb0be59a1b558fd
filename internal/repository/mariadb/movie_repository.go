package mariadb

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/fhuszti/movies-ms-go/internal/model"
	"github.com/fhuszti/movies-ms-go/internal/port"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type MovieRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// compile-time check: *MovieRepository must satisfy port.MovieRepository
var _ port.MovieRepository = (*MovieRepository)(nil)

func NewMovieRepository(db *sql.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) conn() dbtx {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *MovieRepository) WithinTx(ctx context.Context, fn func(repo port.MovieRepository) error) error {
	if r.tx != nil {
		return fn(r)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(&MovieRepository{db: r.db, tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("rollback failed: %v", rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *MovieRepository) GetMovieByID(ctx context.Context, imdbID string) (*model.Movie, error) {
	log.Printf("fetching movie %q from the database...", imdbID)

	const query = `
      SELECT imdb_id, title, year, type, poster, plot, director, actors, runtime, genre, imdb_rating, created_at, updated_at
      FROM movies
      WHERE imdb_id = ?
    `
	var (
		m   model.Movie
		row movieColumns
	)
	err := r.conn().QueryRowContext(ctx, query, imdbID).Scan(
		&m.IMDbID, &m.Title, &row.year, &m.Type, &row.poster,
		&row.plot, &row.director, &row.actors, &row.runtime, &row.genre, &row.imdbRating,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	row.apply(&m)

	return &m, nil
}

func (r *MovieRepository) UpsertMovie(ctx context.Context, movie *model.Movie) error {
	log.Printf("upserting database record for movie %q...", movie.IMDbID)

	const query = `
      INSERT INTO movies
        (imdb_id, title, year, type, poster, plot, director, actors, runtime, genre, imdb_rating)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      ON DUPLICATE KEY UPDATE
        title       = VALUES(title),
        year        = VALUES(year),
        type        = VALUES(type),
        poster      = VALUES(poster),
        plot        = VALUES(plot),
        director    = VALUES(director),
        actors      = VALUES(actors),
        runtime     = VALUES(runtime),
        genre       = VALUES(genre),
        imdb_rating = VALUES(imdb_rating)
    `
	args := []any{movie.IMDbID, movie.Title, movie.Year, movie.Type, movie.Poster}
	args = append(args, detailArgs(movie.Details)...)
	_, err := r.conn().ExecContext(ctx, query, args...)
	return err
}

func (r *MovieRepository) GetSearchQueryByText(ctx context.Context, text string) (*model.SearchQuery, error) {
	log.Printf("fetching search query %q from the database...", text)

	const query = `
      SELECT sq.id, sq.search_text, sq.total_results, sq.response, sq.error_message, sq.created_at, sq.updated_at,
        sr.imdb_id, sr.position,
        m.title, m.year, m.type, m.poster, m.plot, m.director, m.actors, m.runtime, m.genre, m.imdb_rating
      FROM search_queries sq
      LEFT JOIN search_results sr ON sr.search_query_id = sq.id
      LEFT JOIN movies m ON m.imdb_id = sr.imdb_id
      WHERE sq.search_text = ?
      ORDER BY sr.position
    `
	rows, err := r.conn().QueryContext(ctx, query, text)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var sq *model.SearchQuery
	for rows.Next() {
		var (
			q        model.SearchQuery
			imdbID   sql.NullString
			position sql.NullInt64
			title    sql.NullString
			typ      model.MediaType
			movie    movieColumns
		)
		if err := rows.Scan(
			&q.ID, &q.SearchText, &q.TotalResults, &q.Response, &q.ErrorMessage, &q.CreatedAt, &q.UpdatedAt,
			&imdbID, &position,
			&title, &movie.year, &typ, &movie.poster,
			&movie.plot, &movie.director, &movie.actors, &movie.runtime, &movie.genre, &movie.imdbRating,
		); err != nil {
			return nil, err
		}
		if sq == nil {
			sq = &q
		}
		if !imdbID.Valid {
			continue
		}
		m := model.Movie{IMDbID: imdbID.String, Title: title.String, Type: typ}
		movie.apply(&m)
		sq.Results = append(sq.Results, model.SearchResult{
			IMDbID:   imdbID.String,
			Position: int(position.Int64),
			Movie:    m,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if sq == nil {
		return nil, sql.ErrNoRows
	}

	return sq, nil
}

func (r *MovieRepository) CreateSearchQuery(ctx context.Context, sq *model.SearchQuery) error {
	log.Printf("creating database record for search query %q with %d results...", sq.SearchText, len(sq.Results))

	return r.WithinTx(ctx, func(repo port.MovieRepository) error {
		c := repo.(*MovieRepository).conn()

		const insertQuery = `
          INSERT INTO search_queries
            (id, search_text, total_results, response, error_message)
          VALUES (?, ?, ?, ?, ?)
        `
		if _, err := c.ExecContext(ctx, insertQuery,
			sq.ID, sq.SearchText, sq.TotalResults, sq.Response, sq.ErrorMessage,
		); err != nil {
			return err
		}

		const insertResult = `
          INSERT INTO search_results
            (search_query_id, imdb_id, position)
          VALUES (?, ?, ?)
        `
		for _, res := range sq.Results {
			if _, err := c.ExecContext(ctx, insertResult, sq.ID, res.IMDbID, res.Position); err != nil {
				return fmt.Errorf("link movie %q: %w", res.IMDbID, err)
			}
		}
		return nil
	})
}

func (r *MovieRepository) ListMoviesWithoutDetails(ctx context.Context, limit int) ([]string, error) {
	log.Printf("listing up to %d movies without details...", limit)

	const query = `
      SELECT imdb_id
      FROM movies
      WHERE plot IS NULL
      ORDER BY created_at, imdb_id
      LIMIT ?
    `
	return collectStrings(r.conn().QueryContext(ctx, query, limit))
}

func (r *MovieRepository) DeleteNegativeSearchQueriesBefore(ctx context.Context, before time.Time) ([]string, error) {
	log.Printf("deleting negative search queries created before %s...", before.UTC().Format(time.RFC3339))

	var texts []string
	err := r.WithinTx(ctx, func(repo port.MovieRepository) error {
		c := repo.(*MovieRepository).conn()

		const selectQuery = `
          SELECT search_text
          FROM search_queries
          WHERE response = FALSE AND created_at < ?
          FOR UPDATE
        `
		var err error
		texts, err = collectStrings(c.QueryContext(ctx, selectQuery, before.UTC()))
		if err != nil {
			return err
		}
		if len(texts) == 0 {
			return nil
		}

		const deleteQuery = `
          DELETE FROM search_queries
          WHERE response = FALSE AND created_at < ?
        `
		_, err = c.ExecContext(ctx, deleteQuery, before.UTC())
		return err
	})
	if err != nil {
		return nil, err
	}

	return texts, nil
}

// movieColumns holds the nullable columns of a movies row.
type movieColumns struct {
	year, poster                                       sql.NullString
	plot, director, actors, runtime, genre, imdbRating sql.NullString
}

func (c movieColumns) apply(m *model.Movie) {
	m.Year = c.year.String
	m.Poster = c.poster.String
	if !c.plot.Valid {
		m.Details = nil
		return
	}
	m.Details = &model.MovieDetails{
		Plot:       c.plot.String,
		Director:   c.director.String,
		Actors:     c.actors.String,
		Runtime:    c.runtime.String,
		Genre:      c.genre.String,
		IMDbRating: c.imdbRating.String,
	}
}

func detailArgs(d *model.MovieDetails) []any {
	if d == nil {
		return []any{nil, nil, nil, nil, nil, nil}
	}
	return []any{d.Plot, d.Director, d.Actors, d.Runtime, d.Genre, d.IMDbRating}
}

func collectStrings(rows *sql.Rows, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
