package mission

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/osse101/SpinVault_Go/internal/concurrency"
	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/event"
	"github.com/osse101/SpinVault_Go/internal/logger"
	"github.com/osse101/SpinVault_Go/internal/metrics"
	"github.com/osse101/SpinVault_Go/internal/storage"
	"github.com/osse101/SpinVault_Go/internal/utils"
)

// Missions is the static mission board.
var Missions = []domain.Mission{
	{ID: 1, Title: "Rookie Spinner", Counter: domain.CounterRouletteSpins, Target: 5,
		Reward: domain.Grant{Currency: domain.CurrencyGold, Amount: 500}},
	{ID: 2, Title: "Case Opener", Counter: domain.CounterCaseOpens, Target: 3,
		Reward: domain.Grant{Currency: domain.CurrencyDiamonds, Amount: 50}},
	{ID: 3, Title: "High Roller", Counter: domain.CounterRouletteWinnings, Target: 1000,
		Reward: domain.Grant{Currency: domain.CurrencyDiamonds, Amount: 100}},
}

// Ledger is the slice of ledger behaviour a claim needs.
type Ledger interface {
	PlayerID() string
	Add(ctx context.Context, c domain.Currency, amount int64) error
}

// Service tracks mission progress and pays out completed missions.
type Service interface {
	List(ctx context.Context, playerID string) ([]domain.MissionStatus, error)
	Claim(ctx context.Context, l Ledger, id int) (*domain.MissionStatus, error)
	Advance(ctx context.Context, playerID, counter string, by int64) error
	Register(bus event.Bus)
}

type service struct {
	store    storage.Store
	locks    *concurrency.LockManager
	bus      event.Bus
	missions []domain.Mission
}

// NewService creates a mission service over the static board.
func NewService(store storage.Store, locks *concurrency.LockManager, bus event.Bus) Service {
	return &service{
		store:    store,
		locks:    locks,
		bus:      bus,
		missions: Missions,
	}
}

// Register subscribes the counters to game events.
func (s *service) Register(bus event.Bus) {
	bus.Subscribe(event.RouletteSettled, s.handleRoulette)
	bus.Subscribe(event.SpinCompleted, s.handleSpin)
}

func (s *service) handleRoulette(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.RouletteSettledPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("decode %s: %w", evt.Type, err)
	}
	if err := s.Advance(ctx, p.PlayerID, domain.CounterRouletteSpins, 1); err != nil {
		return err
	}
	if p.Payout > 0 {
		return s.Advance(ctx, p.PlayerID, domain.CounterRouletteWinnings, p.Payout)
	}
	return nil
}

func (s *service) handleSpin(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.SpinCompletedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("decode %s: %w", evt.Type, err)
	}
	if p.Counter == "" {
		return nil
	}
	return s.Advance(ctx, p.PlayerID, p.Counter, 1)
}

// Advance adds by to a player's counter.
func (s *service) Advance(ctx context.Context, playerID, counter string, by int64) error {
	if counter == "" || by < 0 {
		return fmt.Errorf("%w: counter %q by %d", domain.ErrInvalidInput, counter, by)
	}
	return s.locks.WithLock(playerID, func() error {
		current, err := s.counter(ctx, playerID, counter)
		if err != nil {
			return err
		}
		next := utils.AddInt64(current, by)
		if err := s.store.Set(ctx, playerID, CounterKeyPrefix+counter, strconv.FormatInt(next, 10)); err != nil {
			return err
		}
		logger.FromContext(ctx).Debug(LogMsgCounterAdvanced,
			LogFieldPlayerID, playerID, LogFieldCounter, counter, LogFieldValue, next)
		return nil
	})
}

// List returns every mission with the player's progress.
func (s *service) List(ctx context.Context, playerID string) ([]domain.MissionStatus, error) {
	claimed, err := s.claimed(ctx, playerID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MissionStatus, 0, len(s.missions))
	for _, m := range s.missions {
		st, err := s.status(ctx, playerID, m, claimed)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// Claim pays out mission id once it is complete. A mission pays once.
func (s *service) Claim(ctx context.Context, l Ledger, id int) (*domain.MissionStatus, error) {
	m, ok := s.find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrMissionNotFound, id)
	}
	playerID := l.PlayerID()

	var result domain.MissionStatus
	err := s.locks.WithLock(playerID, func() error {
		claimed, err := s.claimed(ctx, playerID)
		if err != nil {
			return err
		}
		st, err := s.status(ctx, playerID, m, claimed)
		if err != nil {
			return err
		}
		if st.Claimed {
			return fmt.Errorf("%w: %d", domain.ErrMissionClaimed, id)
		}
		if !st.Completed {
			return fmt.Errorf("%w: %d/%d", domain.ErrMissionIncomplete, st.Progress, m.Target)
		}

		claimed[id] = true
		if err := s.saveClaimed(ctx, playerID, claimed); err != nil {
			return err
		}
		if err := l.Add(ctx, m.Reward.Currency, m.Reward.Amount); err != nil {
			return err
		}
		st.Claimed = true
		result = st
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgMissionClaimed, LogFieldPlayerID, playerID, LogFieldMissionID, id)
	if s.bus != nil {
		evt := event.NewRewardClaimedEvent(event.MissionClaimed, playerID, fmt.Sprintf(ClaimSourceFormat, id), m.Reward)
		if err := s.bus.Publish(ctx, evt); err != nil {
			log.Warn(LogMsgPublishFailed, LogFieldPlayerID, playerID, "error", err)
		}
	}
	return &result, nil
}

func (s *service) find(id int) (domain.Mission, bool) {
	for _, m := range s.missions {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Mission{}, false
}

func (s *service) status(ctx context.Context, playerID string, m domain.Mission, claimed map[int]bool) (domain.MissionStatus, error) {
	progress, err := s.counter(ctx, playerID, m.Counter)
	if err != nil {
		return domain.MissionStatus{}, err
	}
	return domain.MissionStatus{
		Mission:   m,
		Progress:  progress,
		Completed: progress >= m.Target,
		Claimed:   claimed[m.ID],
	}, nil
}

// counter reads a counter; a missing or malformed value counts as zero.
func (s *service) counter(ctx context.Context, playerID, name string) (int64, error) {
	key := CounterKeyPrefix + name
	raw, ok, err := s.store.Get(ctx, playerID, key)
	if err != nil || !ok {
		return 0, err
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v < 0 {
		logger.FromContext(ctx).Warn(LogMsgCounterMalformed, LogFieldPlayerID, playerID, LogFieldCounter, name, LogFieldRaw, raw)
		metrics.PersistedStateResets.WithLabelValues(key).Inc()
		return 0, nil
	}
	return v, nil
}

func (s *service) claimed(ctx context.Context, playerID string) (map[int]bool, error) {
	out := make(map[int]bool)
	raw, ok, err := s.store.Get(ctx, playerID, KeyClaimed)
	if err != nil || !ok {
		return out, err
	}
	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		logger.FromContext(ctx).Warn(LogMsgClaimedMalformed, LogFieldPlayerID, playerID, LogFieldRaw, raw)
		metrics.PersistedStateResets.WithLabelValues(KeyClaimed).Inc()
		return out, nil
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (s *service) saveClaimed(ctx context.Context, playerID string, claimed map[int]bool) error {
	ids := make([]int, 0, len(claimed))
	for id, ok := range claimed {
		if ok {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, playerID, KeyClaimed, string(data))
}
