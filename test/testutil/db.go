package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/fhuszti/movies-ms-go/internal/db"
	"github.com/fhuszti/movies-ms-go/internal/migration"
)

type TestDB struct {
	DB      *db.Database
	Cleanup func() error
}

// SetupTestDB creates a fresh, migrated schema on the server named by TEST_DB_DSN.
func SetupTestDB() (*TestDB, error) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("TEST_DB_DSN env-var not set")
	}

	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN %q: %w", dsn, err)
	}

	origName := cfg.DBName
	cfg.DBName = ""
	rootDB, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open root DB: %w", err)
	}

	dbName := fmt.Sprintf("%s_%d", origName, time.Now().UnixNano())
	if _, err := rootDB.Exec("CREATE DATABASE " + dbName + " CHARACTER SET utf8mb4"); err != nil {
		rootDB.Close()
		return nil, err
	}
	drop := func() error {
		defer rootDB.Close()
		if _, err := rootDB.Exec("DROP DATABASE " + dbName); err != nil {
			return fmt.Errorf("drop database %q: %w", dbName, err)
		}
		return nil
	}

	cfg.DBName = dbName
	cfg.ParseTime = true
	cfg.MultiStatements = true
	database, err := db.New(db.MariaDbConfig{
		DSN:             cfg.FormatDSN(),
		MaxOpenConns:    5,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Minute,
	})
	if err != nil {
		_ = drop()
		return nil, fmt.Errorf("open test DB %q: %w", dbName, err)
	}

	if err := migration.MigrateUp(database); err != nil {
		database.Close()
		_ = drop()
		return nil, fmt.Errorf("migrate test DB: %w", err)
	}

	cleanup := func() error {
		if err := database.Close(); err != nil {
			return err
		}
		return drop()
	}

	return &TestDB{DB: database, Cleanup: cleanup}, nil
}
