package containers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image      = "postgres:16.4-alpine"
	dbName     = "futbalito"
	dbUser     = "portal"
	dbPassword = "secret"

	schemaFile     = "schema/schema.sql"
	startupTimeout = 30 * time.Second
)

// DBContainer is a throwaway PostgreSQL server with the portal schema loaded.
type DBContainer struct {
	container *postgres.PostgresContainer
	connStr   string
}

// NewDBContainer starts the server. The schema is looked up from the module
// root, so it can be called from the tests of any package.
func NewDBContainer(ctx context.Context) (*DBContainer, error) {
	schema, err := findSchema()
	if err != nil {
		return nil, err
	}

	container, err := postgres.Run(ctx, image,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.WithInitScripts(schema),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout)),
	)
	if err != nil {
		return nil, fmt.Errorf("error starting container: %w", err)
	}

	// the container is not configured to use TLS
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("error getting connection string: %w", err)
	}

	return &DBContainer{
		container: container,
		connStr:   connStr,
	}, nil
}

func (c *DBContainer) ConnectionString() string {
	return c.connStr
}

func (c *DBContainer) Shutdown(ctx context.Context) error {
	if err := c.container.Terminate(ctx); err != nil {
		return fmt.Errorf("error terminating container: %w", err)
	}
	return nil
}

// findSchema walks up from the working directory to the directory holding go.mod.
func findSchema() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, filepath.FromSlash(schemaFile)), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("module root not found above " + dir)
		}
		dir = parent
	}
}
