package session

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/SpinVault_Go/internal/audio"
	"github.com/osse101/SpinVault_Go/internal/concurrency"
	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/event"
	"github.com/osse101/SpinVault_Go/internal/logger"
	"github.com/osse101/SpinVault_Go/internal/lottery"
	"github.com/osse101/SpinVault_Go/internal/metrics"
)

// Ledger is the slice of ledger behaviour a session needs.
type Ledger interface {
	PlayerID() string
	Balance(c domain.Currency) int64
	Debit(ctx context.Context, c domain.Currency, amount int64) error
	Add(ctx context.Context, c domain.Currency, amount int64) error
	AddItem(ctx context.Context, item domain.OwnedItem) (bool, error)
	AddXP(ctx context.Context, amount int64) (bool, error)
	Snapshot() domain.LedgerSnapshot
}

// Params fully describes one spin of a game.
type Params struct {
	Game         string
	Counter      string // Mission counter advanced by this game, if any
	Pool         []domain.PoolEntry
	Table        *lottery.TierTable
	Grand        *lottery.GrandPrize
	Cost         int64
	Currency     domain.Currency
	DrawCount    int
	XPAward      int64 // Flat, once per session regardless of DrawCount
	RevealDelay  time.Duration
	Compensation Compensation
}

// Service runs game sessions against player ledgers.
type Service interface {
	Spin(ctx context.Context, ledger Ledger, p Params) (*domain.SpinResult, error)
}

type service struct {
	engine *lottery.Engine
	guard  *concurrency.Guard
	audio  audio.Player
	bus    event.Bus
}

// NewService creates a session service. The guard should be shared with
// every other sub-game so a player has one spin in flight at most. A nil
// bus disables events; a nil player disables sound cues.
func NewService(engine *lottery.Engine, guard *concurrency.Guard, player audio.Player, bus event.Bus) Service {
	if player == nil {
		player = audio.Nop{}
	}
	return &service{
		engine: engine,
		guard:  guard,
		audio:  player,
		bus:    bus,
	}
}

// Spin charges the ledger, draws p.DrawCount outcomes and commits them.
//
// Outcomes are drawn before the debit so a misconfigured game fails with
// no mutation. Once debited the session always settles: cancelling ctx
// only cuts the reveal wait short.
func (s *service) Spin(ctx context.Context, l Ledger, p Params) (*domain.SpinResult, error) {
	log := logger.FromContext(ctx)

	if err := validate(p); err != nil {
		return nil, err
	}

	release, ok := s.guard.TryAcquire(l.PlayerID())
	if !ok {
		return nil, domain.ErrSpinInProgress
	}
	defer release()

	if balance := l.Balance(p.Currency); balance < p.Cost {
		return nil, &domain.InsufficientFundsError{Currency: p.Currency, Required: p.Cost, Available: balance}
	}

	draws, err := s.engine.Draw(p.Pool, p.Table, p.DrawCount, p.Grand)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", p.Game, err)
	}

	if err := l.Debit(ctx, p.Currency, p.Cost); err != nil {
		return nil, err
	}

	log.Info(LogMsgSpinStarted,
		LogFieldPlayerID, l.PlayerID(),
		LogFieldGame, p.Game,
		LogFieldDraws, p.DrawCount,
		LogFieldCost, p.Cost,
		LogFieldCurrency, p.Currency)

	s.audio.Play(audio.SoundSpin)
	if !wait(ctx, p.RevealDelay) {
		log.Debug(LogMsgRevealInterrupted, LogFieldPlayerID, l.PlayerID(), LogFieldGame, p.Game)
	}

	// The debit is already durable; settle even if the caller gave up.
	commitCtx := context.WithoutCancel(ctx)

	result := &domain.SpinResult{
		Game:      p.Game,
		DrawCount: p.DrawCount,
		Cost:      p.Cost,
		Currency:  p.Currency,
		Outcomes:  make([]domain.SpinOutcome, 0, len(draws)),
		Delta:     domain.LedgerDelta{ItemsAdded: []domain.ItemID{}},
	}
	result.Delta.Apply(p.Currency, -p.Cost)

	for _, d := range draws {
		outcome, err := s.commit(commitCtx, l, p, d, &result.Delta)
		if err != nil {
			return nil, err
		}
		result.Outcomes = append(result.Outcomes, outcome)
		if d.Entry.Rarity > result.HighestWin {
			result.HighestWin = d.Entry.Rarity
		}
		metrics.DrawsTotal.WithLabelValues(p.Game, string(d.TargetTier), string(d.Source)).Inc()
	}

	if p.XPAward > 0 {
		levelUp, err := l.AddXP(commitCtx, p.XPAward)
		if err != nil {
			return nil, err
		}
		result.LevelUp = levelUp
		result.Delta.XP = p.XPAward
	}

	s.audio.Stop(audio.SoundSpin)
	if result.HighestWin.AtLeast(domain.RarityLegendary) {
		s.audio.Play(audio.SoundLegendary)
	} else {
		s.audio.Play(audio.SoundWin)
	}

	result.Balance = l.Snapshot()

	log.Info(LogMsgSpinSettled,
		LogFieldPlayerID, l.PlayerID(),
		LogFieldGame, p.Game,
		LogFieldHighest, result.HighestWin,
		LogFieldItemsNew, len(result.Delta.ItemsAdded),
		LogFieldLevelUp, result.LevelUp)

	if s.bus != nil {
		if err := s.bus.Publish(commitCtx, event.NewSpinCompletedEvent(l.PlayerID(), p.Counter, result)); err != nil {
			log.Warn(LogMsgPublishFailed, LogFieldPlayerID, l.PlayerID(), LogFieldGame, p.Game, "error", err)
		}
	}

	return result, nil
}

func (s *service) commit(ctx context.Context, l Ledger, p Params, d domain.Draw, delta *domain.LedgerDelta) (domain.SpinOutcome, error) {
	outcome := domain.SpinOutcome{Entry: d.Entry, TargetTier: d.TargetTier, Source: d.Source}

	if d.Entry.Kind == domain.PrizeCurrency {
		if err := l.Add(ctx, d.Entry.Currency, d.Entry.Amount); err != nil {
			return outcome, err
		}
		delta.Apply(d.Entry.Currency, d.Entry.Amount)
		return outcome, nil
	}

	added, err := l.AddItem(ctx, d.Entry.Descriptor().Owned())
	if err != nil {
		return outcome, err
	}
	if added {
		delta.ItemsAdded = append(delta.ItemsAdded, d.Entry.ID)
		return outcome, nil
	}

	outcome.Duplicate = true
	grant := p.Compensation.For(d.Entry.Rarity)
	if grant.Amount > 0 {
		if err := l.Add(ctx, grant.Currency, grant.Amount); err != nil {
			return outcome, err
		}
		delta.Apply(grant.Currency, grant.Amount)
		outcome.Granted = &grant
	}
	metrics.DuplicateCompensations.WithLabelValues(p.Game).Inc()
	logger.FromContext(ctx).Debug(LogMsgDuplicateWin,
		LogFieldPlayerID, l.PlayerID(),
		LogFieldItemID, d.Entry.ID,
		LogFieldAmount, grant.Amount)
	return outcome, nil
}

func validate(p Params) error {
	if p.DrawCount < 1 {
		return fmt.Errorf("%w: draw count %d", domain.ErrInvalidInput, p.DrawCount)
	}
	if p.Cost < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, p.Cost)
	}
	if !p.Currency.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidCurrency, p.Currency)
	}
	if p.XPAward < 0 {
		return fmt.Errorf("%w: xp award %d", domain.ErrInvalidAmount, p.XPAward)
	}
	return nil
}

// wait blocks for d or until ctx is done, reporting whether the full
// delay elapsed.
func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
