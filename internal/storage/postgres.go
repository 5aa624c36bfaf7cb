package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/SpinVault_Go/internal/database"
	"github.com/osse101/SpinVault_Go/internal/database/generated/pgstore"
)

// PostgresStore persists state in PostgreSQL through a pgx pool.
type PostgresStore struct {
	pool *pgxpool.Pool
	q    *pgstore.Queries
}

// NewPostgresStore migrates the database behind pool and wraps it. The
// store takes ownership of the pool and closes it on Close.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := database.Migrate(ctx, db, database.DialectPostgres); err != nil {
		pool.Close()
		return nil, wrapStorage(err)
	}
	slog.Default().Info(LogMsgStoreOpened, "driver", "postgres")
	return &PostgresStore{pool: pool, q: pgstore.New(pool)}, nil
}

func (s *PostgresStore) Get(ctx context.Context, ns, key string) (string, bool, error) {
	value, err := s.q.GetStateValue(ctx, pgstore.GetStateValueParams{PlayerID: ns, StateKey: key})
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapStorage(err)
	}
	return value, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, ns, key, value string) error {
	if err := s.q.UpsertStateValue(ctx, pgstore.UpsertStateValueParams{PlayerID: ns, StateKey: key, StateValue: value}); err != nil {
		return wrapStorage(err)
	}
	return nil
}

func (s *PostgresStore) SetMany(ctx context.Context, ns string, values map[string]string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return wrapStorage(err)
	}
	defer tx.Rollback(ctx)

	q := s.q.WithTx(tx)
	for k, v := range values {
		if err := q.UpsertStateValue(ctx, pgstore.UpsertStateValueParams{PlayerID: ns, StateKey: k, StateValue: v}); err != nil {
			return wrapStorage(fmt.Errorf("set %s: %w", k, err))
		}
	}
	return wrapStorage(tx.Commit(ctx))
}

func (s *PostgresStore) Delete(ctx context.Context, ns, key string) error {
	if err := s.q.DeleteStateValue(ctx, pgstore.DeleteStateValueParams{PlayerID: ns, StateKey: key}); err != nil {
		return wrapStorage(err)
	}
	return nil
}

func (s *PostgresStore) Register(ctx context.Context, ns string) error {
	if err := s.q.InsertPlayer(ctx, ns); err != nil {
		return wrapStorage(err)
	}
	return nil
}

func (s *PostgresStore) Exists(ctx context.Context, ns string) (bool, error) {
	exists, err := s.q.PlayerExists(ctx, ns)
	if err != nil {
		return false, wrapStorage(err)
	}
	return exists, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return wrapStorage(s.pool.Ping(ctx))
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	slog.Default().Info(LogMsgStoreClosed, "driver", "postgres")
	return nil
}
