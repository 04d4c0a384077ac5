package fragbase

import (
	"log/slog"
	"path/filepath"

	"github.com/fragbase/fragbase/internal/config"
)

// databaseType identifies the database.
type databaseType int

const (
	databaseUnset databaseType = iota
	databaseSQLite
	databasePostgres
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	database databaseType
	dbPath   string
	dbDSN    string
	mediaDir string
	logger   *slog.Logger
}

func newClientConfig() *clientConfig {
	return &clientConfig{
		mediaDir: filepath.Join(config.DefaultDataDir(), "media"),
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite configures SQLite as the database. Pass ":memory:" for an
// in-memory store.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.database = databaseSQLite
		c.dbPath = path
	}
}

// WithPostgres configures PostgreSQL with the given DSN.
func WithPostgres(dsn string) Option {
	return func(c *clientConfig) {
		c.database = databasePostgres
		c.dbDSN = dsn
	}
}

// WithMediaDir sets the directory imported attachments are written to.
func WithMediaDir(dir string) Option {
	return func(c *clientConfig) {
		c.mediaDir = dir
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
