package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/SpinVault_Go/internal/event"
	"github.com/osse101/SpinVault_Go/internal/metrics"
	"github.com/osse101/SpinVault_Go/internal/mission"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus       event.Bus
	MissionService mission.Service
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (for event-based metrics)
// - Mission counters (spins and roulette rounds advance mission progress)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.MissionService != nil {
		deps.MissionService.Register(deps.EventBus)
		slog.Info(LogMsgMissionCountersRegistered)
	}

	return nil
}
