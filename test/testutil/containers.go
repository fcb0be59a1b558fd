package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	"github.com/fhuszti/movies-ms-go/internal/logger"
)

// Container is a throwaway docker dependency. Addr is a DSN for MariaDB
// and host:port for Redis.
type Container struct {
	Addr    string
	Cleanup func()
}

// startContainer runs image:tag and retries ready against the mapped port until it succeeds.
func startContainer(opts *dockertest.RunOptions, port string, ready func(hostPort string) (string, error)) (*Container, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}

	resource, err := pool.RunWithOptions(opts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start %s container: %w", opts.Repository, err)
	}

	var addr string
	if err := pool.Retry(func() error {
		var rerr error
		addr, rerr = ready(resource.GetHostPort(port))
		return rerr
	}); err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("%s did not become ready: %w", opts.Repository, err)
	}

	return &Container{
		Addr: addr,
		Cleanup: func() {
			if err := pool.Purge(resource); err != nil {
				logger.Warnf(context.Background(), "could not purge %s container: %v", opts.Repository, err)
			}
		},
	}, nil
}

// StartMariaDBContainer runs MariaDB with an empty "movies" schema.
func StartMariaDBContainer() (*Container, error) {
	return startContainer(&dockertest.RunOptions{
		Repository: "mariadb",
		Tag:        "10.11",
		Env:        []string{"MARIADB_ROOT_PASSWORD=root", "MARIADB_DATABASE=movies"},
	}, "3306/tcp", func(hostPort string) (string, error) {
		dsn := fmt.Sprintf("root:root@tcp(%s)/movies?parseTime=true", hostPort)
		conn, err := sql.Open("mysql", dsn)
		if err != nil {
			return "", err
		}
		defer conn.Close()
		return dsn, conn.Ping()
	})
}

func StartRedisContainer() (*Container, error) {
	return startContainer(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7",
	}, "6379/tcp", func(hostPort string) (string, error) {
		rdb := redis.NewClient(&redis.Options{Addr: hostPort})
		defer rdb.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return hostPort, rdb.Ping(ctx).Err()
	})
}
