package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/SpinVault_Go/internal/config"
	"github.com/osse101/SpinVault_Go/internal/database"
	"github.com/osse101/SpinVault_Go/internal/domain"
)

// Store is a durable key→string map partitioned by namespace. Each player
// owns one namespace; keys inside it are ledger fields and counters.
type Store interface {
	// Get returns the value and whether the key exists.
	Get(ctx context.Context, ns, key string) (string, bool, error)
	Set(ctx context.Context, ns, key, value string) error
	// SetMany writes every pair in one transaction.
	SetMany(ctx context.Context, ns string, values map[string]string) error
	Delete(ctx context.Context, ns, key string) error

	// Register records a namespace as existing; registering twice is a no-op.
	Register(ctx context.Context, ns string) error
	Exists(ctx context.Context, ns string) (bool, error)

	Ping(ctx context.Context) error
	Close() error
}

// Open builds the store selected by cfg.StoreDriver and applies migrations.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return NewMemoryStore(), nil
	case config.DriverSQLite:
		store, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, DefaultConnMaxIdle, DefaultConnMaxLife)
		if err != nil {
			return nil, wrapStorage(err)
		}
		store, err := NewPostgresStore(ctx, pool)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidConfig, ErrMsgUnknownDriver, cfg.StoreDriver)
	}
}

func wrapStorage(err error) error {
	if err == nil || errors.Is(err, domain.ErrStorage) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrStorage, err)
}
