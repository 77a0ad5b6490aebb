//go:build integration

package database

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires Docker. Run with: go test -tags integration ./core/database
func TestConnect_Docker(t *testing.T) {
	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "could not connect to docker")
	pool.MaxWait = 2 * time.Minute

	drivers := []struct {
		name   string
		driver string
		run    *dockertest.RunOptions
		port   string
		user   string
	}{
		{
			name:   "MySQL",
			driver: DriverMySQL,
			run: &dockertest.RunOptions{
				Repository: "mysql",
				Tag:        "8.0",
				Env:        []string{"MYSQL_ROOT_PASSWORD=secret", "MYSQL_DATABASE=imagine"},
			},
			port: "3306/tcp",
			user: "root",
		},
		{
			name:   "Postgres",
			driver: DriverPostgres,
			run: &dockertest.RunOptions{
				Repository: "postgres",
				Tag:        "15",
				Env:        []string{"POSTGRES_PASSWORD=secret", "POSTGRES_DB=imagine"},
			},
			port: "5432/tcp",
			user: "postgres",
		},
	}

	for _, d := range drivers {
		t.Run(d.name, func(t *testing.T) {
			resource, err := pool.RunWithOptions(d.run, func(config *docker.HostConfig) {
				config.AutoRemove = true
			})
			require.NoError(t, err)
			t.Cleanup(func() { _ = pool.Purge(resource) })

			port, err := strconv.Atoi(resource.GetPort(d.port))
			require.NoError(t, err)

			cfg := Config{
				Driver:         d.driver,
				Host:           "localhost",
				Port:           port,
				User:           d.user,
				Password:       "secret",
				Name:           "imagine",
				SSLMode:        "disable",
				TimeoutSeconds: 5,
			}

			require.NoError(t, pool.Retry(func() error {
				db, err := Connect(context.Background(), cfg)
				if err != nil {
					return err
				}
				return Close(db)
			}))

			db, err := Connect(context.Background(), cfg)
			require.NoError(t, err)
			defer Close(db)
			assert.NoError(t, Ping(context.Background(), db, time.Second))
		})
	}
}
