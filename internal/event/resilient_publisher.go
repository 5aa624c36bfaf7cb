package event

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/osse101/SpinVault_Go/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	DeadLetterPath string
}

// ResilientPublisher retries failed deliveries in the background and
// appends events that never succeed to a dead letter file.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
	mu     sync.Mutex // Protects file writes
	wg     sync.WaitGroup
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = DefaultMaxRetries
	}
	if config.DeadLetterPath == "" {
		config.DeadLetterPath = DefaultDeadLetterPath
	}
	return &ResilientPublisher{
		inner:  inner,
		config: config,
	}
}

// Publish delivers the event once synchronously. On failure it schedules
// background retries and reports success to the caller: a reward has
// already been committed by the time its event is published, so the
// caller must not undo it.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgPublishFailedRetrying,
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	p.wg.Add(1)
	go p.retryLoop(event)

	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown waits for pending retries to finish or ctx to expire.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *ResilientPublisher) retryLoop(event Event) {
	defer p.wg.Done()
	ctx := context.Background()

	for i := 1; i <= p.config.MaxRetries; i++ {
		time.Sleep(p.config.RetryDelay * time.Duration(i))

		err := p.inner.Publish(ctx, event)
		if err == nil {
			logger.Info(LogMsgRetrySucceeded, "event_type", event.Type, "attempt", i)
			return
		}
		logger.Warn(LogMsgRetryFailed, "event_type", event.Type, "attempt", i, "error", err)
	}

	p.writeToDeadLetter(event)
}

type deadLetterEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Event     Event     `json:"event"`
}

func (p *ResilientPublisher) writeToDeadLetter(event Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := os.OpenFile(p.config.DeadLetterPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		logger.Error(LogMsgDeadLetterOpenFailed, "error", err, "path", p.config.DeadLetterPath)
		return
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(deadLetterEntry{Timestamp: time.Now(), Event: event}); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "error", err)
		return
	}
	logger.Info(LogMsgDeadLettered, "event_type", event.Type)
}
