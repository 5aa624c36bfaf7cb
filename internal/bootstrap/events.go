package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/SpinVault_Go/internal/config"
	"github.com/osse101/SpinVault_Go/internal/event"
)

// InitializeEventSystem creates the in-memory bus and wraps it in a
// resilient publisher that retries failed deliveries and dead-letters the
// rest. Services publish through the returned publisher.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	deadLetterPath := cfg.DeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = config.ConfigPathDeadLetter
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	resilientPublisher := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries:     EventDefaultMaxRetries,
		RetryDelay:     EventDefaultRetryDelay,
		DeadLetterPath: deadLetterPath,
	})

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, resilientPublisher, nil
}
