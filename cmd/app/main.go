package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/SpinVault_Go/internal/audio"
	"github.com/osse101/SpinVault_Go/internal/bootstrap"
	"github.com/osse101/SpinVault_Go/internal/concurrency"
	"github.com/osse101/SpinVault_Go/internal/config"
	"github.com/osse101/SpinVault_Go/internal/daily"
	"github.com/osse101/SpinVault_Go/internal/dailylogin"
	"github.com/osse101/SpinVault_Go/internal/ledger"
	"github.com/osse101/SpinVault_Go/internal/logger"
	"github.com/osse101/SpinVault_Go/internal/lottery"
	"github.com/osse101/SpinVault_Go/internal/mission"
	"github.com/osse101/SpinVault_Go/internal/player"
	"github.com/osse101/SpinVault_Go/internal/roulette"
	"github.com/osse101/SpinVault_Go/internal/server"
	"github.com/osse101/SpinVault_Go/internal/session"
	"github.com/osse101/SpinVault_Go/internal/storage"
)

const shutdownTimeout = 30 * time.Second

//go:generate go run github.com/swaggo/swag/cmd/swag init -g main.go -d ./,../../internal/handler,../../internal/domain,../../internal/royale -o ../../docs

// @title SpinVault API
// @version 1.0
// @description Cosmetic gacha simulator: royale games, roulette, daily store and the player ledger.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.InitLogger(cfg.LoggerConfig())
	slog.Info("Starting SpinVault",
		"environment", cfg.Environment,
		"version", cfg.Version,
		"store_driver", cfg.StoreDriver)

	// Defaults cover every setting, so a sparse environment only warns
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment incomplete, using defaults", "error", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx := context.Background()

	loc, err := cfg.Location()
	if err != nil {
		fatal("Invalid timezone", err)
	}

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		fatal("Failed to open store", err)
	}

	cat, err := bootstrap.LoadCatalog(ctx, cfg)
	if err != nil {
		fatal("Failed to load catalog", err)
	}

	games, err := bootstrap.LoadGames(ctx, cfg, cat)
	if err != nil {
		fatal("Failed to load games", err)
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		fatal("Failed to initialize event system", err)
	}

	guard := concurrency.NewGuard()
	locks := concurrency.NewLockManager()
	sound := audio.NewLogPlayer(slog.Default())

	missions := mission.NewService(store, locks, publisher)
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:       bus,
		MissionService: missions,
	}); err != nil {
		fatal("Failed to register event handlers", err)
	}

	picker := daily.NewPicker(cat, cfg.DailyStoreSize, loc)
	players := player.NewRegistry(store, ledger.Defaults{
		Gold:     cfg.SeedGold,
		Diamonds: cfg.SeedDiamonds,
		Name:     cfg.SeedName,
		Bio:      cfg.SeedBio,
	}, cfg.PlayerCacheSize, cfg.PlayerCacheTTL)

	srv := server.NewServer(cfg.Port, server.Deps{
		Store:    store,
		Players:  players,
		Items:    cat,
		Games:    games,
		Sessions: session.NewService(lottery.NewEngine(nil), guard, sound, publisher),
		Roulette: roulette.NewService(guard, sound, publisher, nil, cfg.RouletteRevealDelay),
		Offers:   picker,
		Buyer:    daily.NewStorefront(picker, locks, sound, publisher),
		Missions: missions,
		Logins:   dailylogin.NewService(store, locks, publisher, loc),
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("Server failed to start", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: publisher,
		Store:              store,
	})
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
