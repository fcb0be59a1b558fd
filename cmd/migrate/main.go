package main

import (
	"context"
	"os"
	"strings"

	"github.com/fhuszti/movies-ms-go/internal/config"
	"github.com/fhuszti/movies-ms-go/internal/db"
	"github.com/fhuszti/movies-ms-go/internal/logger"
	"github.com/fhuszti/movies-ms-go/internal/migration"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database, err := initDb(cfg)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	defer func(database *db.Database) {
		err := database.Close()
		if err != nil {
			return
		}
	}(database)

	if err := migration.MigrateUp(database); err != nil {
		logger.Errorf(ctx, "❌  Migration up failed: %v", err)
		os.Exit(1)
	}

	logger.Infof(ctx, "✅  Migrations applied successfully (%s)", database.Driver)
}

func initDb(cfg *config.Settings) (*db.Database, error) {
	return db.NewFromConfig(db.Config{
		Driver: cfg.DBDriver,
		MariaDB: db.MariaDbConfig{
			DSN:             withMultiStatements(cfg.MariaDBDSN),
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		},
		SQLite: db.SQLiteConfig{Path: cfg.SQLitePath},
	})
}

func withMultiStatements(dsn string) string {
	if dsn == "" || strings.Contains(dsn, "multiStatements=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&multiStatements=true"
	}
	return dsn + "?multiStatements=true"
}
