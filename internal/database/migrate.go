package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFS embed.FS

// MigrationStatus is one migration and whether it has been applied.
type MigrationStatus struct {
	Version int64
	Path    string
	Applied bool
}

func newProvider(db *sql.DB, dialect string) (*goose.Provider, error) {
	var gooseDialect goose.Dialect
	switch dialect {
	case DialectPostgres:
		gooseDialect = goose.DialectPostgres
	case DialectSQLite:
		gooseDialect = goose.DialectSQLite3
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownDialect, dialect)
	}

	fsys, err := fs.Sub(migrationFS, "migrations/"+dialect)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateProvider, err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateProvider, err)
	}
	return provider, nil
}

// Migrate applies every pending migration for the dialect.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	provider, err := newProvider(db, dialect)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMigrationFailed, err)
	}

	if len(results) == 0 {
		slog.Default().Debug(LogMsgMigrationsUpToDate, "dialect", dialect)
	}
	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied,
			"dialect", dialect,
			"version", r.Source.Version,
			"duration", r.Duration)
	}
	return nil
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(ctx context.Context, db *sql.DB, dialect string) error {
	provider, err := newProvider(db, dialect)
	if err != nil {
		return err
	}
	if _, err := provider.Down(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMigrationFailed, err)
	}
	return nil
}

// Status reports every known migration for the dialect.
func Status(ctx context.Context, db *sql.DB, dialect string) ([]MigrationStatus, error) {
	provider, err := newProvider(db, dialect)
	if err != nil {
		return nil, err
	}
	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgMigrationFailed, err)
	}

	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}
