package db

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Database holds your SQL connection pool and the dialect it speaks.
type Database struct {
	*sql.DB
	Driver string
}

// New creates, configures, and verifies a MySQL connection pool.
// It returns an error if opening or pinging the database fails.
func New(cfg MariaDbConfig) (*Database, error) {
	db, err := sql.Open(DriverMySQL, cfg.DSN)
	if err != nil {
		return nil, err
	}

	// configure pooling
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// verify connectivity
	if err := db.Ping(); err != nil {
		// close the connection pool before returning the ping error
		if cErr := db.Close(); cErr != nil {
			return nil, cErr
		}
		return nil, err
	}
	return &Database{DB: db, Driver: DriverMySQL}, nil
}

// NewSQLite opens a single-connection SQLite database file.
// SQLite serialises writers, so the pool is capped at one connection
// and the pragmas below stay bound to it.
func NewSQLite(cfg SQLiteConfig) (*Database, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	db, err := sql.Open(DriverSQLite, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	return &Database{DB: db, Driver: DriverSQLite}, nil
}

// NewFromConfig opens the database selected by cfg.Driver.
func NewFromConfig(cfg Config) (*Database, error) {
	switch cfg.Driver {
	case DriverMySQL, "mariadb":
		return New(cfg.MariaDB)
	case DriverSQLite:
		return NewSQLite(cfg.SQLite)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
