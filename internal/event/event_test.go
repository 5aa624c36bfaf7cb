package event

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinVault_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType, Payload: "payload"})
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: "nobody"}))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	calls := 0

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		calls++
		return errors.New("handler error")
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	assert.Error(t, err)
	assert.Equal(t, 2, calls, "all handlers run even when one fails")
}

func TestDecodePayload(t *testing.T) {
	t.Run("typed payload passes through", func(t *testing.T) {
		in := RouletteSettledPayloadV1{PlayerID: "p1", Bet: 10}
		out, err := DecodePayload[RouletteSettledPayloadV1](in)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("map payload is converted", func(t *testing.T) {
		raw := map[string]interface{}{"player_id": "p1", "bet": 25, "payout": 50}
		out, err := DecodePayload[RouletteSettledPayloadV1](raw)
		require.NoError(t, err)
		assert.Equal(t, "p1", out.PlayerID)
		assert.Equal(t, int64(25), out.Bet)
		assert.Equal(t, int64(50), out.Payout)
	})
}

func TestNewSpinCompletedEvent(t *testing.T) {
	result := &domain.SpinResult{
		Game:      "weapon_case",
		DrawCount: 1,
		Cost:      10,
		Currency:  domain.CurrencyDiamonds,
		Delta:     domain.LedgerDelta{Diamonds: -10, ItemsAdded: []domain.ItemID{"g1"}},
	}

	evt := NewSpinCompletedEvent("p1", domain.CounterCaseOpens, result)

	assert.Equal(t, SpinCompleted, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)
	payload, ok := evt.Payload.(SpinCompletedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "p1", payload.PlayerID)
	assert.Equal(t, domain.CounterCaseOpens, payload.Counter)
	assert.Equal(t, []domain.ItemID{"g1"}, payload.ItemsAdded)
}

func TestResilientPublisher_DeliversDirectly(t *testing.T) {
	bus := NewMemoryBus()
	var calls int32
	bus.Subscribe("ok", func(ctx context.Context, e Event) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})

	p := NewResilientPublisher(bus, ResilientConfig{RetryDelay: time.Millisecond, DeadLetterPath: filepath.Join(t.TempDir(), "dl.jsonl")})
	require.NoError(t, p.Publish(context.Background(), Event{Type: "ok"}))
	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestResilientPublisher_RetriesThenSucceeds(t *testing.T) {
	bus := NewMemoryBus()
	var calls int32
	bus.Subscribe("flaky", func(ctx context.Context, e Event) error {
		if atomic.AddInt32(&calls, 1) < 2 {
			return errors.New("transient")
		}
		return nil
	})

	path := filepath.Join(t.TempDir(), "dl.jsonl")
	p := NewResilientPublisher(bus, ResilientConfig{MaxRetries: 3, RetryDelay: time.Millisecond, DeadLetterPath: path})

	require.NoError(t, p.Publish(context.Background(), Event{Type: "flaky"}))
	require.NoError(t, p.Shutdown(context.Background()))

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no dead letter written after a successful retry")
}

func TestResilientPublisher_DeadLettersAfterRetries(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe("broken", func(ctx context.Context, e Event) error {
		return errors.New("permanent")
	})

	path := filepath.Join(t.TempDir(), "dl.jsonl")
	p := NewResilientPublisher(bus, ResilientConfig{MaxRetries: 2, RetryDelay: time.Millisecond, DeadLetterPath: path})

	require.NoError(t, p.Publish(context.Background(), Event{Version: "1.0", Type: "broken", Payload: "x"}))
	require.NoError(t, p.Shutdown(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry deadLetterEntry
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, Type("broken"), entry.Event.Type)
}
