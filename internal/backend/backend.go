// Package backend selects and opens the configured persistence store.
package backend

import (
	"context"
	"fmt"

	"spendlog/internal/config"
	"spendlog/internal/core"
	applog "spendlog/internal/log"
	"spendlog/internal/storage"
)

// Store is the persistence contract the rest of the application sees: read
// the full record set, replace it wholesale, or wipe it.
type Store interface {
	Load(ctx context.Context) ([]core.Expense, error)
	Save(ctx context.Context, records []core.Expense) error
	Reset(ctx context.Context) error
	Close() error
}

// Type represents the kind of backing store
type Type string

const (
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case FileBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// Open builds the store selected by the configuration.
func Open(cfg *config.Config, logger *applog.Logger) (Store, error) {
	logger = logger.WithComponent(applog.ComponentBackend)

	switch Type(cfg.DataBackend) {
	case FileBackend:
		logger.Info("Initialized file backend", "path", cfg.DataFile)
		return storage.NewFileStore(cfg.DataFile), nil
	case SQLiteBackend:
		store, err := storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		logger.Info("Initialized sqlite backend", "db_path", cfg.SQLiteDBPath)
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported data backend: %s", cfg.DataBackend)
	}
}
