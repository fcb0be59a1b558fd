package main

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fhuszti/movies-ms-go/internal/cache"
	"github.com/fhuszti/movies-ms-go/internal/config"
	"github.com/fhuszti/movies-ms-go/internal/db"
	"github.com/fhuszti/movies-ms-go/internal/migration"
	"github.com/fhuszti/movies-ms-go/internal/port"
	"github.com/fhuszti/movies-ms-go/internal/repository"
	"github.com/fhuszti/movies-ms-go/internal/task"
	"github.com/fhuszti/movies-ms-go/internal/upstream/omdb"
	movieSvc "github.com/fhuszti/movies-ms-go/internal/usecase/movie"
	msuuid "github.com/fhuszti/movies-ms-go/internal/uuid"
)

var errNoQueue = errors.New("hydrate-backlog needs REDIS_ADDR to reach the task queue")

// services is everything the subcommands run against.
// hydrator is nil when no task queue is configured.
type services struct {
	searcher port.MovieSearcher
	getter   port.MovieGetter
	hydrator port.BacklogHydrator
	purger   port.NegativePurger
	lockPath string
	closers  []func() error
}

type commandContext struct {
	jsonFlag *bool
	build    func() (*services, error)

	once sync.Once
	svc  *services
	err  error
}

func newCommandContext(jsonFlag *bool, build func() (*services, error)) *commandContext {
	return &commandContext{jsonFlag: jsonFlag, build: build}
}

func (c *commandContext) services() (*services, error) {
	c.once.Do(func() {
		c.svc, c.err = c.build()
	})
	return c.svc, c.err
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

func (c *commandContext) close() error {
	if c.svc == nil {
		return nil
	}
	var errs []error
	for i := len(c.svc.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.svc.closers[i]())
	}
	c.svc.closers = nil
	return errors.Join(errs...)
}

func buildServices() (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	database, err := db.NewFromConfig(db.Config{
		Driver: cfg.DBDriver,
		MariaDB: db.MariaDbConfig{
			DSN:             cfg.MariaDBDSN,
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		},
		SQLite: db.SQLiteConfig{Path: cfg.SQLitePath},
	})
	if err != nil {
		return nil, fmt.Errorf("connect to db: %w", err)
	}
	svc := &services{lockPath: cfg.LockPath, closers: []func() error{database.Close}}

	if database.Driver == db.DriverSQLite {
		if err := migration.MigrateUp(database); err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("migrate sqlite store: %w", err)
		}
	}

	repo, err := repository.NewMovieRepository(database)
	if err != nil {
		_ = database.Close()
		return nil, err
	}

	provider := omdb.NewClient(omdb.Config{
		BaseURL: cfg.OMDbAPIURL,
		APIKey:  cfg.OMDbAPIKey,
		Timeout: cfg.OMDbTimeout,
	}, nil)
	svc.closers = append(svc.closers, func() error { provider.Close(); return nil })

	var ca port.Cache = cache.NewNoop()
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		rc := cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		if err := rc.Ping(context.Background()); err != nil {
			_ = rc.Close()
			for _, closeFn := range svc.closers {
				_ = closeFn()
			}
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		d := task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		ca, dispatcher = rc, d
		svc.closers = append(svc.closers, rc.Close, d.Close)
		svc.hydrator = movieSvc.NewBacklogHydrator(repo, dispatcher)
	}

	var prefetch port.TaskDispatcher
	if cfg.PrefetchDetails {
		prefetch = dispatcher
	}
	svc.searcher = movieSvc.NewMovieSearcher(repo, provider, msuuid.NewUUID, nil, prefetch)
	svc.getter = movieSvc.NewMovieGetter(repo, provider, nil)
	svc.purger = movieSvc.NewNegativePurger(repo, ca)

	return svc, nil
}
