package metrics

import (
	"context"

	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/event"
	"github.com/osse101/SpinVault_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SpinCompleted,
		event.RouletteSettled,
		event.ItemPurchased,
		event.MissionClaimed,
		event.DailyLoginClaimed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.SpinCompleted:
		err = recordSpin(evt)
	case event.RouletteSettled:
		err = recordRoulette(evt)
	case event.ItemPurchased:
		err = recordPurchase(evt)
	case event.MissionClaimed, event.DailyLoginClaimed:
		err = recordClaim(evt)
	}
	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordSpin(evt event.Event) error {
	p, err := event.DecodePayload[event.SpinCompletedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	SpinsTotal.WithLabelValues(p.Game).Inc()
	CurrencySpent.WithLabelValues(string(p.Currency)).Add(float64(p.Cost))
	// Delta is net of the cost; add it back to get what was credited
	credits := p.Delta
	credits.Apply(p.Currency, p.Cost)
	if credits.Gold > 0 {
		CurrencyGranted.WithLabelValues(string(domain.CurrencyGold)).Add(float64(credits.Gold))
	}
	if credits.Diamonds > 0 {
		CurrencyGranted.WithLabelValues(string(domain.CurrencyDiamonds)).Add(float64(credits.Diamonds))
	}
	return nil
}

func recordRoulette(evt event.Event) error {
	p, err := event.DecodePayload[event.RouletteSettledPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	result := ResultLoss
	if p.Payout > 0 {
		result = ResultWin
		CurrencyGranted.WithLabelValues(string(domain.CurrencyGold)).Add(float64(p.Payout))
	}
	RouletteSpins.WithLabelValues(result).Inc()
	RouletteWagered.Add(float64(p.Bet))
	CurrencySpent.WithLabelValues(string(domain.CurrencyGold)).Add(float64(p.Bet))
	return nil
}

func recordPurchase(evt event.Event) error {
	p, err := event.DecodePayload[event.ItemPurchasedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	StorePurchases.WithLabelValues(string(p.Currency)).Inc()
	CurrencySpent.WithLabelValues(string(p.Currency)).Add(float64(p.Price))
	return nil
}

func recordClaim(evt event.Event) error {
	p, err := event.DecodePayload[event.RewardClaimedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	RewardsClaimed.WithLabelValues(string(evt.Type)).Inc()
	CurrencyGranted.WithLabelValues(string(p.Reward.Currency)).Add(float64(p.Reward.Amount))
	return nil
}
