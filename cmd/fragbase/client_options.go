package main

import (
	"strings"

	"github.com/fragbase/fragbase"
	"github.com/fragbase/fragbase/internal/config"
)

// clientOptions returns the fragbase.Option slice derived from the shared
// parts of AppConfig. Callers append entrypoint-specific options (logger)
// before passing the full slice to fragbase.New.
func clientOptions(cfg config.AppConfig) []fragbase.Option {
	opts := storageOptions(cfg)
	opts = append(opts, fragbase.WithMediaDir(cfg.MediaDir()))
	return opts
}

// storageOptions returns the fragbase.Option for the configured database
// backend.
func storageOptions(cfg config.AppConfig) []fragbase.Option {
	dbURL := cfg.DBURL()

	if dbURL != "" && !isSQLite(dbURL) {
		return []fragbase.Option{fragbase.WithPostgres(dbURL)}
	}

	dbPath := cfg.DataDir() + "/fragbase.db"
	if dbURL != "" && isSQLite(dbURL) {
		dbPath = strings.TrimPrefix(dbURL, "sqlite:///")
		if dbPath == dbURL {
			dbPath = strings.TrimPrefix(dbURL, "sqlite:")
		}
	}

	return []fragbase.Option{fragbase.WithSQLite(dbPath)}
}

func isSQLite(dbURL string) bool {
	return strings.HasPrefix(dbURL, "sqlite:")
}
