package roulette

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/SpinVault_Go/internal/audio"
	"github.com/osse101/SpinVault_Go/internal/concurrency"
	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/event"
	"github.com/osse101/SpinVault_Go/internal/logger"
	"github.com/osse101/SpinVault_Go/internal/utils"
)

// State is where a player's wheel is in its cycle.
type State string

const (
	StateIdle     State = "idle"
	StateSpinning State = "spinning"
	StateSettled  State = "settled"
)

// Ledger is the slice of ledger behaviour the wheel needs.
type Ledger interface {
	PlayerID() string
	Balance(c domain.Currency) int64
	Debit(ctx context.Context, c domain.Currency, amount int64) error
	Add(ctx context.Context, c domain.Currency, amount int64) error
}

// Service runs roulette spins.
type Service interface {
	Spin(ctx context.Context, ledger Ledger, bet int64, color domain.RouletteColor) (*domain.RouletteResult, error)
	State(playerID string) State
}

type service struct {
	guard       *concurrency.Guard
	audio       audio.Player
	bus         event.Bus
	rnd         func() float64
	revealDelay time.Duration

	mu     sync.Mutex
	states map[string]State
}

// NewService creates a roulette service. It shares guard with the other
// sub-games; rnd defaults to utils.RandomFloat.
func NewService(guard *concurrency.Guard, player audio.Player, bus event.Bus, rnd func() float64, revealDelay time.Duration) Service {
	if player == nil {
		player = audio.Nop{}
	}
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return &service{
		guard:       guard,
		audio:       player,
		bus:         bus,
		rnd:         rnd,
		revealDelay: revealDelay,
		states:      make(map[string]State),
	}
}

// ColorAt maps a landing angle onto its wheel color.
func ColorAt(angle int) domain.RouletteColor {
	switch {
	case angle < GreenUpper:
		return domain.ColorGreen
	case angle < RedUpper:
		return domain.ColorRed
	default:
		return domain.ColorBlack
	}
}

// Multiplier returns the payout multiplier for a winning color.
func Multiplier(c domain.RouletteColor) int64 {
	if c == domain.ColorGreen {
		return MultiplierGreen
	}
	return MultiplierColor
}

// Spin debits bet gold, lands the wheel and pays out on a color match.
func (s *service) Spin(ctx context.Context, l Ledger, bet int64, color domain.RouletteColor) (*domain.RouletteResult, error) {
	log := logger.FromContext(ctx)

	if !color.Valid() {
		return nil, fmt.Errorf("%w: choose red, black or green", domain.ErrInvalidBet)
	}
	if bet <= 0 {
		return nil, fmt.Errorf("%w: bet must be positive", domain.ErrInvalidBet)
	}

	release, ok := s.guard.TryAcquire(l.PlayerID())
	if !ok {
		return nil, domain.ErrSpinInProgress
	}
	defer release()

	if err := l.Debit(ctx, domain.CurrencyGold, bet); err != nil {
		return nil, err
	}
	s.setState(l.PlayerID(), StateSpinning)
	s.audio.Play(audio.SoundSpin)

	angle := utils.PickIndex(s.rnd(), WheelDegrees)
	winner := ColorAt(angle)

	log.Info(LogMsgRouletteStarted, LogFieldPlayerID, l.PlayerID(), LogFieldBet, bet, LogFieldColor, color)

	wait(ctx, s.revealDelay)
	commitCtx := context.WithoutCancel(ctx)

	s.audio.Stop(audio.SoundSpin)
	result := &domain.RouletteResult{
		Bet:          bet,
		Chosen:       color,
		Angle:        angle,
		WinningColor: winner,
	}
	if winner == color {
		result.Won = true
		result.Payout = bet * Multiplier(color)
		if err := l.Add(commitCtx, domain.CurrencyGold, result.Payout); err != nil {
			s.setState(l.PlayerID(), StateSettled)
			return nil, err
		}
		s.audio.Play(audio.SoundWin)
	}
	result.Gold = l.Balance(domain.CurrencyGold)
	s.setState(l.PlayerID(), StateSettled)

	log.Info(LogMsgRouletteSettled,
		LogFieldPlayerID, l.PlayerID(),
		LogFieldAngle, angle,
		LogFieldWinner, winner,
		LogFieldPayout, result.Payout)

	if s.bus != nil {
		if err := s.bus.Publish(commitCtx, event.NewRouletteSettledEvent(l.PlayerID(), result)); err != nil {
			log.Warn(LogMsgPublishFailed, LogFieldPlayerID, l.PlayerID(), "error", err)
		}
	}
	return result, nil
}

// State reports the wheel state for a player. Players who never spun are idle.
func (s *service) State(playerID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[playerID]; ok {
		return st
	}
	return StateIdle
}

func (s *service) setState(playerID string, st State) {
	s.mu.Lock()
	s.states[playerID] = st
	s.mu.Unlock()
}

func wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
