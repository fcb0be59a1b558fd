package repository

import (
	"database/sql"
	"testing"

	"github.com/fhuszti/movies-ms-go/internal/db"
	"github.com/fhuszti/movies-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/movies-ms-go/internal/repository/sqlite"
)

func TestNewMovieRepository(t *testing.T) {
	sqlDB := &sql.DB{}

	repo, err := NewMovieRepository(&db.Database{DB: sqlDB, Driver: db.DriverMySQL})
	if err != nil {
		t.Fatalf("mysql: unexpected error: %v", err)
	}
	if _, ok := repo.(*mariadb.MovieRepository); !ok {
		t.Errorf("mysql: got %T; want *mariadb.MovieRepository", repo)
	}

	repo, err = NewMovieRepository(&db.Database{DB: sqlDB, Driver: db.DriverSQLite})
	if err != nil {
		t.Fatalf("sqlite: unexpected error: %v", err)
	}
	if _, ok := repo.(*sqlite.MovieRepository); !ok {
		t.Errorf("sqlite: got %T; want *sqlite.MovieRepository", repo)
	}

	if _, err := NewMovieRepository(&db.Database{DB: sqlDB, Driver: "postgres"}); err == nil {
		t.Error("expected error for unsupported driver")
	}
}
