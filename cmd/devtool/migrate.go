package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/SpinVault_Go/internal/database"
	"github.com/osse101/SpinVault_Go/internal/storage"
)

const migrateMaxConns = 2

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage store migrations: migrate <sqlite|postgres> <dsn> [up|down|status]"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: migrate <sqlite|postgres> <dsn> [up|down|status]")
	}
	dialect, dsn := args[0], args[1]
	subcmd := "up"
	if len(args) > 2 {
		subcmd = args[2]
	}

	ctx := context.Background()
	db, closeDB, err := openForMigration(ctx, dialect, dsn)
	if err != nil {
		return err
	}
	defer closeDB()

	return runMigration(ctx, db, dialect, subcmd)
}

func runMigration(ctx context.Context, db *sql.DB, dialect, subcmd string) error {
	switch subcmd {
	case "up":
		PrintHeader("Applying migrations")
		if err := database.Migrate(ctx, db, dialect); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
	case "down":
		PrintHeader("Rolling back last migration")
		if err := database.MigrateDown(ctx, db, dialect); err != nil {
			return err
		}
		PrintSuccess("Rolled back")
	case "status":
		statuses, err := database.Status(ctx, db, dialect)
		if err != nil {
			return err
		}
		PrintHeader("Migration status")
		tbl := newTable("VERSION", "STATE", "FILE")
		for _, s := range statuses {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			tbl.Row(fmt.Sprintf("%05d", s.Version), state, s.Path)
		}
		tbl.Flush()
	default:
		return fmt.Errorf("unknown subcommand %q: expected up, down or status", subcmd)
	}
	return nil
}

func openForMigration(ctx context.Context, dialect, dsn string) (*sql.DB, func(), error) {
	switch dialect {
	case database.DialectSQLite:
		db, err := database.OpenSQLite(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { db.Close() }, nil
	case database.DialectPostgres:
		pool, err := database.NewPool(ctx, dsn, migrateMaxConns, storage.DefaultConnMaxIdle, storage.DefaultConnMaxLife)
		if err != nil {
			return nil, nil, err
		}
		db := stdlib.OpenDBFromPool(pool)
		return db, func() {
			db.Close()
			pool.Close()
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown dialect %q: expected sqlite or postgres", dialect)
	}
}
