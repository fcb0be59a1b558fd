package repository

import (
	"fmt"

	"github.com/fhuszti/movies-ms-go/internal/db"
	"github.com/fhuszti/movies-ms-go/internal/port"
	"github.com/fhuszti/movies-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/movies-ms-go/internal/repository/sqlite"
)

// NewMovieRepository returns the movie store matching the database dialect.
func NewMovieRepository(database *db.Database) (port.MovieRepository, error) {
	switch database.Driver {
	case db.DriverMySQL:
		return mariadb.NewMovieRepository(database.DB), nil
	case db.DriverSQLite:
		return sqlite.NewMovieRepository(database.DB), nil
	default:
		return nil, fmt.Errorf("no movie repository for driver %q", database.Driver)
	}
}
