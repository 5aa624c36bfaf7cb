package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/osse101/SpinVault_Go/internal/database"
	"github.com/osse101/SpinVault_Go/internal/database/generated/litestore"
)

// SQLiteStore persists state in a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
	q  *litestore.Queries
}

// OpenSQLite opens the file at path and migrates it to the latest schema.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := database.OpenSQLite(ctx, path)
	if err != nil {
		return nil, wrapStorage(err)
	}
	if err := database.Migrate(ctx, db, database.DialectSQLite); err != nil {
		db.Close()
		return nil, wrapStorage(err)
	}
	slog.Default().Info(LogMsgStoreOpened, "driver", "sqlite", "path", path)
	return &SQLiteStore{db: db, q: litestore.New(db)}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, ns, key string) (string, bool, error) {
	value, err := s.q.GetStateValue(ctx, litestore.GetStateValueParams{PlayerID: ns, StateKey: key})
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapStorage(err)
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, ns, key, value string) error {
	if err := s.q.UpsertStateValue(ctx, litestore.UpsertStateValueParams{PlayerID: ns, StateKey: key, StateValue: value}); err != nil {
		return wrapStorage(err)
	}
	return nil
}

func (s *SQLiteStore) SetMany(ctx context.Context, ns string, values map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapStorage(err)
	}
	defer tx.Rollback()

	q := s.q.WithTx(tx)
	for k, v := range values {
		if err := q.UpsertStateValue(ctx, litestore.UpsertStateValueParams{PlayerID: ns, StateKey: k, StateValue: v}); err != nil {
			return wrapStorage(fmt.Errorf("set %s: %w", k, err))
		}
	}
	return wrapStorage(tx.Commit())
}

func (s *SQLiteStore) Delete(ctx context.Context, ns, key string) error {
	if err := s.q.DeleteStateValue(ctx, litestore.DeleteStateValueParams{PlayerID: ns, StateKey: key}); err != nil {
		return wrapStorage(err)
	}
	return nil
}

func (s *SQLiteStore) Register(ctx context.Context, ns string) error {
	if err := s.q.InsertPlayer(ctx, ns); err != nil {
		return wrapStorage(err)
	}
	return nil
}

func (s *SQLiteStore) Exists(ctx context.Context, ns string) (bool, error) {
	exists, err := s.q.PlayerExists(ctx, ns)
	if err != nil {
		return false, wrapStorage(err)
	}
	return exists != 0, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return wrapStorage(s.db.PingContext(ctx))
}

func (s *SQLiteStore) Close() error {
	slog.Default().Info(LogMsgStoreClosed, "driver", "sqlite")
	return s.db.Close()
}
