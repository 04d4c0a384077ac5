// Package fragbase provides a library for importing and serving legacy
// knowledge-base dumps.
//
// Fragbase ingests export archives (binary attachments plus a relational
// dump manifest), reconciles them into a relational store, and exposes the
// resulting fragments, tags, and relations for reading.
//
// Basic usage:
//
//	client, err := fragbase.New(
//	    fragbase.WithSQLite(".fragbase/data.db"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Reconcile an export archive
//	summary, err := client.Importer.Import(ctx, "legacy-export.zip")
//
//	// Read fragments back
//	fragments, total, err := client.Fragments.List(ctx, 20, 0)
package fragbase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/fragbase/fragbase/application/service"
	"github.com/fragbase/fragbase/infrastructure/media"
	"github.com/fragbase/fragbase/infrastructure/persistence"
	"github.com/fragbase/fragbase/internal/database"
)

// ErrNoDatabase indicates New was called without a database option.
var ErrNoDatabase = errors.New("fragbase: no database configured, use WithSQLite or WithPostgres")

// ErrClientClosed indicates the client has been closed.
var ErrClientClosed = errors.New("fragbase: client is closed")

// Client is the main entry point for the fragbase library.
//
// Access resources via struct fields:
//
//	client.Fragments.List(ctx, 20, 0)
//	client.Tags.List(ctx, 20, 0)
//	client.Importer.Import(ctx, "export.zip")
type Client struct {
	Fragments *service.Fragments
	Tags      *service.Tags
	Importer  *service.Importer

	db     database.Database
	media  *media.DirectoryStore
	logger *slog.Logger
	closed atomic.Bool
}

// New creates a new Client with the given options. The schema is migrated
// on creation.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.database == databaseUnset {
		return nil, ErrNoDatabase
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	dbURL, err := buildDatabaseURL(cfg)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	db, err := database.NewDatabase(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := persistence.AutoMigrate(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), errClose)
	}

	mediaStore, err := media.NewDirectoryStore(cfg.mediaDir)
	if err != nil {
		errClose := db.Close()
		return nil, errors.Join(err, errClose)
	}

	userStore := persistence.NewUserStore(db)
	fragmentStore := persistence.NewFragmentStore(db)
	tagStore := persistence.NewTagStore(db)
	taggingStore := persistence.NewTaggingStore(db)
	relationStore := persistence.NewRelationStore(db)

	return &Client{
		Fragments: service.NewFragments(fragmentStore, relationStore, logger),
		Tags:      service.NewTags(tagStore, taggingStore, logger),
		Importer: service.NewImporter(
			db, userStore, fragmentStore, tagStore, taggingStore, relationStore,
			mediaStore, logger,
		),
		db:     db,
		media:  mediaStore,
		logger: logger,
	}, nil
}

// buildDatabaseURL converts client options into a database URL.
func buildDatabaseURL(cfg *clientConfig) (string, error) {
	switch cfg.database {
	case databaseSQLite:
		if cfg.dbPath == ":memory:" {
			return "sqlite:///:memory:", nil
		}
		abs, err := filepath.Abs(cfg.dbPath)
		if err != nil {
			return "", fmt.Errorf("resolve database path: %w", err)
		}
		return "sqlite://" + abs, nil
	case databasePostgres:
		return cfg.dbDSN, nil
	default:
		return "", ErrNoDatabase
	}
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// MediaDir returns the directory attachments are stored in.
func (c *Client) MediaDir() string {
	return c.media.Dir()
}

// Close releases the client's resources. It is safe to call more than once.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	return c.db.Close()
}
