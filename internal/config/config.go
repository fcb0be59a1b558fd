package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMariaDB = "mariadb"
	DriverSQLite  = "sqlite"
)

type Settings struct {
	DBDriver        string
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SQLitePath      string

	ServerPort int

	OMDbAPIURL  string
	OMDbAPIKey  string
	OMDbTimeout time.Duration

	RedisAddr         string
	RedisPassword     string
	ResponseCacheTTL  time.Duration
	ResponseCacheSize int

	PrefetchDetails   bool
	WorkerConcurrency int
	LockPath          string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetConfigFile(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	v.SetDefault("DB_DRIVER", DriverMariaDB)
	v.SetDefault("OMDB_API_URL", "http://www.omdbapi.com/")
	v.SetDefault("OMDB_TIMEOUT", 10)
	v.SetDefault("RESPONSE_CACHE_TTL", 300)
	v.SetDefault("RESPONSE_CACHE_SIZE", 1000)
	v.SetDefault("PREFETCH_DETAILS", false)
	v.SetDefault("WORKER_CONCURRENCY", 10)
	v.SetDefault("LOCK_PATH", "/tmp/moviectl-hydrate.lock")

	driver := strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER")))
	switch driver {
	case DriverMariaDB:
		if !v.IsSet("MARIADB_DSN") {
			return nil, fmt.Errorf("MARIADB_DSN is required")
		}
		if !v.IsSet("MARIADB_MAX_OPEN_CONN") {
			return nil, fmt.Errorf("MARIADB_MAX_OPEN_CONN is required")
		}
		if !v.IsSet("MARIADB_MAX_IDLE_CONNS") {
			return nil, fmt.Errorf("MARIADB_MAX_IDLE_CONNS is required")
		}
		if !v.IsSet("MARIADB_CONN_MAX_LIFETIME") {
			return nil, fmt.Errorf("MARIADB_CONN_MAX_LIFETIME is required")
		}
	case DriverSQLite:
		if !v.IsSet("SQLITE_PATH") {
			return nil, fmt.Errorf("SQLITE_PATH is required")
		}
	default:
		return nil, fmt.Errorf("DB_DRIVER %q is not supported", driver)
	}
	if !v.IsSet("SERVER_PORT") {
		return nil, fmt.Errorf("SERVER_PORT is required")
	}
	if !v.IsSet("OMDB_API_KEY") {
		return nil, fmt.Errorf("OMDB_API_KEY is required")
	}

	return &Settings{
		DBDriver:        driver,
		MariaDBDSN:      v.GetString("MARIADB_DSN"),
		MaxOpenConns:    v.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    v.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(v.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		SQLitePath:      v.GetString("SQLITE_PATH"),

		ServerPort: v.GetInt("SERVER_PORT"),

		OMDbAPIURL:  v.GetString("OMDB_API_URL"),
		OMDbAPIKey:  v.GetString("OMDB_API_KEY"),
		OMDbTimeout: time.Duration(v.GetInt("OMDB_TIMEOUT")) * time.Second,

		RedisAddr:         v.GetString("REDIS_ADDR"),
		RedisPassword:     v.GetString("REDIS_PASSWORD"),
		ResponseCacheTTL:  time.Duration(v.GetInt("RESPONSE_CACHE_TTL")) * time.Second,
		ResponseCacheSize: v.GetInt("RESPONSE_CACHE_SIZE"),

		PrefetchDetails:   v.GetBool("PREFETCH_DETAILS"),
		WorkerConcurrency: v.GetInt("WORKER_CONCURRENCY"),
		LockPath:          v.GetString("LOCK_PATH"),
	}, nil
}
