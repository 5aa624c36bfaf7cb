package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/SpinVault_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Event types
const (
	SpinCompleted     Type = "spin.completed"
	RouletteSettled   Type = "roulette.settled"
	ItemPurchased     Type = "store.item_purchased"
	MissionClaimed    Type = "mission.claimed"
	DailyLoginClaimed Type = "daily_login.claimed"
)

// SpinCompletedPayloadV1 is published after a game session commits.
type SpinCompletedPayloadV1 struct {
	PlayerID   string             `json:"player_id"`
	Game       string             `json:"game"`
	Counter    string             `json:"counter,omitempty"` // Mission counter the game advances
	DrawCount  int                `json:"draw_count"`
	Cost       int64              `json:"cost"`
	Currency   domain.Currency    `json:"currency"`
	Highest    domain.Rarity      `json:"highest_rarity"`
	ItemsAdded []domain.ItemID    `json:"items_added"`
	Delta      domain.LedgerDelta `json:"delta"`
	Timestamp  int64              `json:"timestamp"`
}

// RouletteSettledPayloadV1 is published after a wheel spin settles.
type RouletteSettledPayloadV1 struct {
	PlayerID     string               `json:"player_id"`
	Bet          int64                `json:"bet"`
	Chosen       domain.RouletteColor `json:"chosen"`
	WinningColor domain.RouletteColor `json:"winning_color"`
	Payout       int64                `json:"payout"`
	Timestamp    int64                `json:"timestamp"`
}

// ItemPurchasedPayloadV1 is published after a store purchase.
type ItemPurchasedPayloadV1 struct {
	PlayerID  string          `json:"player_id"`
	ItemID    domain.ItemID   `json:"item_id"`
	Currency  domain.Currency `json:"currency"`
	Price     int64           `json:"price"`
	Timestamp int64           `json:"timestamp"`
}

// RewardClaimedPayloadV1 is published for mission and daily login claims.
type RewardClaimedPayloadV1 struct {
	PlayerID  string       `json:"player_id"`
	Source    string       `json:"source"`
	Reward    domain.Grant `json:"reward"`
	Timestamp int64        `json:"timestamp"`
}

// NewSpinCompletedEvent creates a spin completed event
func NewSpinCompletedEvent(playerID, counter string, result *domain.SpinResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinCompleted,
		Payload: SpinCompletedPayloadV1{
			PlayerID:   playerID,
			Game:       result.Game,
			Counter:    counter,
			DrawCount:  result.DrawCount,
			Cost:       result.Cost,
			Currency:   result.Currency,
			Highest:    result.HighestWin,
			ItemsAdded: result.Delta.ItemsAdded,
			Delta:      result.Delta,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewRouletteSettledEvent creates a roulette settled event
func NewRouletteSettledEvent(playerID string, result *domain.RouletteResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RouletteSettled,
		Payload: RouletteSettledPayloadV1{
			PlayerID:     playerID,
			Bet:          result.Bet,
			Chosen:       result.Chosen,
			WinningColor: result.WinningColor,
			Payout:       result.Payout,
			Timestamp:    time.Now().Unix(),
		},
	}
}

// NewItemPurchasedEvent creates a store purchase event
func NewItemPurchasedEvent(playerID string, offer domain.StoreOffer) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemPurchased,
		Payload: ItemPurchasedPayloadV1{
			PlayerID:  playerID,
			ItemID:    offer.Item.ID,
			Currency:  offer.Currency,
			Price:     offer.Price,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewRewardClaimedEvent creates a mission or daily login claim event
func NewRewardClaimedEvent(eventType Type, playerID, source string, reward domain.Grant) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: RewardClaimedPayloadV1{
			PlayerID:  playerID,
			Source:    source,
			Reward:    reward,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"source": source,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish delivers an event to every subscriber synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
