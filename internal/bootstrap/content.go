package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/SpinVault_Go/internal/catalog"
	"github.com/osse101/SpinVault_Go/internal/config"
	"github.com/osse101/SpinVault_Go/internal/royale"
)

// LoadCatalog reads the item feeds named in cfg, validates them against
// the feed schema and merges them into one catalog. An empty catalog is an
// error: every prize pool would be fillers only.
func LoadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	slog.Info(LogMsgLoadingCatalog, "path", cfg.CatalogItemsPath)

	loader, err := catalog.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLoader, err)
	}

	cat, err := loader.Load(ctx, catalog.Sources{
		ItemsPath:    cfg.CatalogItemsPath,
		ExtraPath:    cfg.CatalogExtraPath,
		ImageMapPath: cfg.CatalogImageMapPath,
		SchemaPath:   cfg.CatalogSchemaPath,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	if cat.Len() == 0 {
		return nil, fmt.Errorf("%s: %s", ErrMsgEmptyCatalog, cfg.CatalogItemsPath)
	}
	return cat, nil
}

// LoadGames parses the game definitions and resolves every pool against
// the catalog. The weapon case keeps its own reveal delay.
func LoadGames(ctx context.Context, cfg *config.Config, cat *catalog.Catalog) (*royale.Registry, error) {
	slog.Info(LogMsgLoadingGames, "path", cfg.GamesConfigPath)

	defs, err := royale.Load(cfg.GamesConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadGames, err)
	}

	games, err := royale.NewRegistry(ctx, defs, cat,
		royale.WithDefaultReveal(cfg.RevealDelay),
		royale.WithReveal(GameWeaponCase, cfg.CaseRevealDelay),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedResolveGames, err)
	}

	slog.Info(LogMsgGamesResolved, "games", len(games.Games()))
	return games, nil
}
