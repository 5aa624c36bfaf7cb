package dailylogin

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/osse101/SpinVault_Go/internal/concurrency"
	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/event"
	"github.com/osse101/SpinVault_Go/internal/logger"
	"github.com/osse101/SpinVault_Go/internal/metrics"
	"github.com/osse101/SpinVault_Go/internal/storage"
)

// Rewards is the seven day cycle, indexed by streak modulo its length.
var Rewards = []domain.Grant{
	{Currency: domain.CurrencyGold, Amount: 100},
	{Currency: domain.CurrencyGold, Amount: 200},
	{Currency: domain.CurrencyDiamonds, Amount: 10},
	{Currency: domain.CurrencyGold, Amount: 500},
	{Currency: domain.CurrencyDiamonds, Amount: 20},
	{Currency: domain.CurrencyGold, Amount: 1000},
	{Currency: domain.CurrencyDiamonds, Amount: 50},
}

// Ledger is the slice of ledger behaviour a claim needs.
type Ledger interface {
	PlayerID() string
	Add(ctx context.Context, c domain.Currency, amount int64) error
}

// Service tracks login streaks.
type Service struct {
	store storage.Store
	locks *concurrency.LockManager
	bus   event.Bus
	loc   *time.Location
}

// NewService creates a login service. Days are calendar days in loc; a nil
// loc uses time.Local.
func NewService(store storage.Store, locks *concurrency.LockManager, bus event.Bus, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{store: store, locks: locks, bus: bus, loc: loc}
}

type state struct {
	streak int
	last   time.Time // zero when never claimed
}

// Status reports whether the player can claim today and what they would get.
// A streak with a missed day shows as zero.
func (s *Service) Status(ctx context.Context, playerID string, now time.Time) (*domain.LoginStatus, error) {
	st, err := s.load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	status := s.describe(st, now)
	return &status, nil
}

// Claim pays today's reward and extends the streak. A second claim on the
// same calendar day fails with domain.ErrAlreadyClaimedToday.
func (s *Service) Claim(ctx context.Context, l Ledger, now time.Time) (*domain.LoginStatus, error) {
	playerID := l.PlayerID()
	var (
		reward domain.Grant
		result domain.LoginStatus
	)
	err := s.locks.WithLock(playerID, func() error {
		st, err := s.load(ctx, playerID)
		if err != nil {
			return err
		}
		current := s.describe(st, now)
		if !current.CanClaim {
			return domain.ErrAlreadyClaimedToday
		}

		reward = current.NextGrant
		next := state{streak: current.Streak + 1, last: s.today(now)}
		if err := s.store.SetMany(ctx, playerID, map[string]string{
			KeyStreak:   strconv.Itoa(next.streak),
			KeyLastDate: next.last.Format(DateLayout),
		}); err != nil {
			return err
		}
		if err := l.Add(ctx, reward.Currency, reward.Amount); err != nil {
			return err
		}
		result = s.describe(next, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgRewardClaimed, LogFieldPlayerID, playerID, LogFieldStreak, result.Streak)
	if s.bus != nil {
		evt := event.NewRewardClaimedEvent(event.DailyLoginClaimed, playerID, fmt.Sprintf(ClaimSourceFormat, result.Streak), reward)
		if err := s.bus.Publish(ctx, evt); err != nil {
			log.Warn(LogMsgPublishFailed, LogFieldPlayerID, playerID, "error", err)
		}
	}
	return &result, nil
}

func (s *Service) today(now time.Time) time.Time {
	y, m, d := now.In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}

// describe computes the visible status of st as of now.
func (s *Service) describe(st state, now time.Time) domain.LoginStatus {
	today := s.today(now)
	streak := st.streak
	canClaim := true
	lastClaim := ""

	if !st.last.IsZero() {
		lastClaim = st.last.Format(DateLayout)
		gap := daysBetween(st.last, today)
		switch {
		case gap == 0:
			canClaim = false
		case gap > 1:
			streak = 0
		}
	}

	// After today's claim this previews tomorrow's reward.
	idx := streak % len(Rewards)
	return domain.LoginStatus{
		Streak:    streak,
		CanClaim:  canClaim,
		NextDay:   idx + 1,
		NextGrant: Rewards[idx],
		LastClaim: lastClaim,
	}
}

// daysBetween counts calendar days from a to b, both local midnights.
func daysBetween(a, b time.Time) int {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	ua := time.Date(ya, ma, da, 0, 0, 0, 0, time.UTC)
	ub := time.Date(yb, mb, db, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

func (s *Service) load(ctx context.Context, playerID string) (state, error) {
	var st state
	malformed := func(key, raw string) {
		logger.FromContext(ctx).Warn(LogMsgStateMalformed, LogFieldPlayerID, playerID, LogFieldField, key, LogFieldRaw, raw)
		metrics.PersistedStateResets.WithLabelValues(key).Inc()
	}

	raw, ok, err := s.store.Get(ctx, playerID, KeyStreak)
	if err != nil {
		return st, err
	}
	if ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 0 {
			malformed(KeyStreak, raw)
		} else {
			st.streak = n
		}
	}

	raw, ok, err = s.store.Get(ctx, playerID, KeyLastDate)
	if err != nil {
		return st, err
	}
	if ok && raw != "" {
		last, err := time.ParseInLocation(DateLayout, raw, s.loc)
		if err != nil {
			malformed(KeyLastDate, raw)
			st.streak = 0
		} else {
			st.last = last
		}
	}
	return st, nil
}
