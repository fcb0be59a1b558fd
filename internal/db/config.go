package db

import "time"

type MariaDbConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration // seconds
}

type SQLiteConfig struct {
	Path string
}

// Config selects a dialect and carries the settings for it.
// Driver accepts DriverMySQL, "mariadb" or DriverSQLite.
type Config struct {
	Driver  string
	MariaDB MariaDbConfig
	SQLite  SQLiteConfig
}
