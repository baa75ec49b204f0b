// Package container wires the application dependencies: configuration
// in, a ready Converter and artifact store out. Wiring is explicit so
// every component receives its dependencies through constructors.
package container

import (
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"

	"csvraw/internal/config"
	"csvraw/internal/converter"
	"csvraw/internal/dedup"
	"csvraw/internal/logging"
	"csvraw/internal/sequence"
	"csvraw/internal/sqlitedb"
	"csvraw/internal/store"
)

// Container holds the wired application components.
type Container struct {
	logger    logging.Logger
	converter *converter.Converter
	store     *store.FileStore
	pool      *sqlitex.Pool // nil when the database is unavailable
}

// New wires all dependencies from the configuration. A database that
// cannot be opened is a degraded mode, not a failure: the sequence
// counter uses its file fallback and deduplication is disabled.
func New(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	var (
		pool    *sqlitex.Pool
		primary sequence.Store
		index   dedup.Index
	)
	p, err := sqlitedb.Open(cfg.Database.Path, cfg.Database.PoolSize)
	if err != nil {
		logger.WithError(err).Warn("database unavailable, running degraded (file counter, no dedup)")
	} else {
		pool = p
		primary = sequence.NewSQLiteStore(pool)
		index = dedup.NewSQLiteIndex(pool)
	}

	allocator := sequence.NewAllocator(primary, sequence.NewFileStore(cfg.Counter.File), logger)
	fileStore := store.NewFileStore(cfg.Data.Directory, logger)

	conv := converter.New(converter.Options{
		Beneficiary:  cfg.Depository.Beneficiary,
		HeaderPrefix: cfg.Depository.HeaderPrefix,
		Allocator:    allocator,
		Index:        index,
		Sink:         fileStore,
		ExtraColumns: cfg.Input.ExtraColumns,
		Logger:       logger,
	})

	return &Container{
		logger:    logger,
		converter: conv,
		store:     fileStore,
		pool:      pool,
	}, nil
}

// Converter returns the wired conversion pipeline.
func (c *Container) Converter() *converter.Converter {
	return c.converter
}

// Store returns the artifact store.
func (c *Container) Store() *store.FileStore {
	return c.store
}

// Close releases the database pool, if one was opened.
func (c *Container) Close() error {
	if c.pool == nil {
		return nil
	}
	return c.pool.Close()
}
