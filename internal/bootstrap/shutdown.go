package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/SpinVault_Go/internal/event"
	"github.com/osse101/SpinVault_Go/internal/server"
)

type closer interface {
	Close() error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	ResilientPublisher *event.ResilientPublisher
	Store              closer
}

// GracefulShutdown stops components in order:
// 1. HTTP server (stop accepting new requests, finish in-flight spins)
// 2. Event publisher (flush pending retries)
// 3. Store (last, so retried handlers can still write)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Store != nil {
		slog.Info(LogMsgClosingStore)
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
