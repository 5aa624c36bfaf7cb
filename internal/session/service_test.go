package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinVault_Go/internal/audio"
	"github.com/osse101/SpinVault_Go/internal/concurrency"
	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/event"
	"github.com/osse101/SpinVault_Go/internal/ledger"
	"github.com/osse101/SpinVault_Go/internal/lottery"
	"github.com/osse101/SpinVault_Go/internal/storage"
)

type mockBus struct {
	mock.Mock
}

func (m *mockBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *mockBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

// scripted returns the given rolls in order, then repeats the last one.
func scripted(rolls ...float64) func() float64 {
	i := 0
	return func() float64 {
		r := rolls[i]
		if i < len(rolls)-1 {
			i++
		}
		return r
	}
}

var (
	rareSkin  = domain.PoolEntry{ID: "101", Name: "Rare Skin", Kind: domain.PrizeItem, Tier: "common", Rarity: domain.RarityRare, Category: domain.CategoryWeaponSkin}
	mythicGun = domain.PoolEntry{ID: "777", Name: "Evo Gun", Kind: domain.PrizeItem, Tier: "mythic", Rarity: domain.RarityMythic, Category: domain.CategoryWeaponSkin}
	gold300   = domain.PoolEntry{ID: "gold_300", Name: "300 Gold", Kind: domain.PrizeCurrency, Tier: "common", Currency: domain.CurrencyGold, Amount: 300}
)

type fixture struct {
	svc    Service
	ledger *ledger.Ledger
	guard  *concurrency.Guard
	sounds *audio.Recorder
	bus    *mockBus
}

func newFixture(t *testing.T, rnd func() float64) *fixture {
	t.Helper()
	l, err := ledger.Load(context.Background(), storage.NewMemoryStore(), "p1",
		ledger.Defaults{Gold: 1000, Diamonds: 100, Name: "Survivor"})
	require.NoError(t, err)

	f := &fixture{
		ledger: l,
		guard:  concurrency.NewGuard(),
		sounds: &audio.Recorder{},
		bus:    &mockBus{},
	}
	f.svc = NewService(lottery.NewEngine(rnd), f.guard, f.sounds, f.bus)
	return f
}

func baseParams() Params {
	return Params{
		Game:         "diamond_royale",
		Counter:      "royale_spins",
		Pool:         []domain.PoolEntry{rareSkin, gold300},
		Table:        lottery.UniformTable(),
		Cost:         60,
		Currency:     domain.CurrencyDiamonds,
		DrawCount:    3,
		XPAward:      10,
		Compensation: DefaultCompensation(),
	}
}

func TestSpin_CommitsOutcomes(t *testing.T) {
	// (tier, pick) per draw: skin, gold filler, skin again
	f := newFixture(t, scripted(0.1, 0.0, 0.1, 0.9, 0.1, 0.0))
	f.bus.On("Publish", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
		p, ok := e.Payload.(event.SpinCompletedPayloadV1)
		return ok && e.Type == event.SpinCompleted && p.Counter == "royale_spins" && p.PlayerID == "p1"
	})).Return(nil).Once()

	result, err := f.svc.Spin(context.Background(), f.ledger, baseParams())
	require.NoError(t, err)

	require.Len(t, result.Outcomes, 3)
	assert.Equal(t, "101", result.Outcomes[0].Entry.ID)
	assert.False(t, result.Outcomes[0].Duplicate)
	assert.Equal(t, "gold_300", result.Outcomes[1].Entry.ID)
	assert.True(t, result.Outcomes[2].Duplicate)
	require.NotNil(t, result.Outcomes[2].Granted)
	assert.Equal(t, domain.Grant{Currency: domain.CurrencyGold, Amount: CompensationRare}, *result.Outcomes[2].Granted)

	assert.Equal(t, domain.LedgerDelta{Gold: 300 + CompensationRare, Diamonds: -60, XP: 10, ItemsAdded: []domain.ItemID{"101"}}, result.Delta)
	assert.Equal(t, domain.RarityRare, result.HighestWin)

	snap := f.ledger.Snapshot()
	assert.Equal(t, int64(40), snap.Diamonds)
	assert.Equal(t, int64(1000+300+CompensationRare), snap.Gold)
	assert.Equal(t, int64(10), snap.XP, "xp is awarded once per session")
	assert.Len(t, snap.Inventory, 1)
	assert.Equal(t, snap, result.Balance)

	assert.Equal(t, []audio.Cue{
		{Action: "play", Sound: audio.SoundSpin},
		{Action: "stop", Sound: audio.SoundSpin},
		{Action: "play", Sound: audio.SoundWin},
	}, f.sounds.Cues())
	assert.False(t, f.guard.Busy("p1"), "guard released after settle")
	f.bus.AssertExpectations(t)
}

func TestSpin_InsufficientFunds(t *testing.T) {
	f := newFixture(t, scripted(0.5))
	p := baseParams()
	p.Cost = 101

	_, err := f.svc.Spin(context.Background(), f.ledger, p)

	var short *domain.InsufficientFundsError
	require.True(t, errors.As(err, &short))
	assert.Equal(t, int64(101), short.Required)
	assert.Equal(t, int64(100), short.Available)
	assert.Equal(t, int64(100), f.ledger.Balance(domain.CurrencyDiamonds))
	assert.Empty(t, f.ledger.Inventory())
	assert.Empty(t, f.sounds.Cues())
	f.bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSpin_EmptyPoolLeavesLedgerUntouched(t *testing.T) {
	f := newFixture(t, scripted(0.5))
	p := baseParams()
	p.Pool = nil

	_, err := f.svc.Spin(context.Background(), f.ledger, p)

	assert.ErrorIs(t, err, domain.ErrEmptyPool)
	assert.Equal(t, int64(100), f.ledger.Balance(domain.CurrencyDiamonds))
}

func TestSpin_RejectsConcurrentSpin(t *testing.T) {
	f := newFixture(t, scripted(0.5))
	release, ok := f.guard.TryAcquire("p1")
	require.True(t, ok)
	defer release()

	_, err := f.svc.Spin(context.Background(), f.ledger, baseParams())

	assert.ErrorIs(t, err, domain.ErrSpinInProgress)
	assert.Equal(t, int64(100), f.ledger.Balance(domain.CurrencyDiamonds))
}

func TestSpin_LegendarySound(t *testing.T) {
	f := newFixture(t, scripted(0.001, 0.0))
	f.bus.On("Publish", mock.Anything, mock.Anything).Return(nil)
	p := baseParams()
	p.DrawCount = 1
	p.Grand = &lottery.GrandPrize{Entries: []domain.PoolEntry{mythicGun}, Chance: 0.01}

	result, err := f.svc.Spin(context.Background(), f.ledger, p)
	require.NoError(t, err)

	assert.Equal(t, domain.SourceGrandPrize, result.Outcomes[0].Source)
	assert.Equal(t, domain.RarityMythic, result.HighestWin)
	cues := f.sounds.Cues()
	assert.Equal(t, audio.Cue{Action: "play", Sound: audio.SoundLegendary}, cues[len(cues)-1])
}

func TestSpin_CancelledRevealStillSettles(t *testing.T) {
	f := newFixture(t, scripted(0.1, 0.0))
	f.bus.On("Publish", mock.Anything, mock.Anything).Return(nil)
	p := baseParams()
	p.DrawCount = 1
	p.RevealDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	var result *domain.SpinResult
	var err error
	go func() {
		result, err = f.svc.Spin(ctx, f.ledger, p)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("spin did not settle after cancellation")
	}
	require.NoError(t, err)
	assert.Equal(t, []domain.ItemID{"101"}, result.Delta.ItemsAdded)
	assert.True(t, f.ledger.Owns("101"))
	assert.Equal(t, int64(40), f.ledger.Balance(domain.CurrencyDiamonds))
}

func TestSpin_PublishFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, scripted(0.1, 0.9))
	f.bus.On("Publish", mock.Anything, mock.Anything).Return(errors.New("bus down"))
	p := baseParams()
	p.DrawCount = 1

	result, err := f.svc.Spin(context.Background(), f.ledger, p)
	require.NoError(t, err)
	assert.Equal(t, int64(300), result.Delta.Gold)
}

func TestSpin_ValidatesParams(t *testing.T) {
	f := newFixture(t, scripted(0.5))

	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr error
	}{
		{"zero draws", func(p *Params) { p.DrawCount = 0 }, domain.ErrInvalidInput},
		{"negative cost", func(p *Params) { p.Cost = -1 }, domain.ErrInvalidAmount},
		{"unknown currency", func(p *Params) { p.Currency = "tokens" }, domain.ErrInvalidCurrency},
		{"nil table", func(p *Params) { p.Table = nil }, domain.ErrInvalidTierTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseParams()
			tt.mutate(&p)
			_, err := f.svc.Spin(context.Background(), f.ledger, p)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, int64(100), f.ledger.Balance(domain.CurrencyDiamonds))
		})
	}
}

func TestCompensation_For(t *testing.T) {
	c := DefaultCompensation()
	assert.Equal(t, domain.Grant{Currency: domain.CurrencyGold, Amount: 1000}, c.For(domain.RarityMythic))

	none := Compensation{}
	assert.Equal(t, domain.Grant{Currency: domain.CurrencyGold}, none.For(domain.RarityEpic))
}

func TestSpin_DeltaMatchesLedgerChange(t *testing.T) {
	f := newFixture(t, scripted(0.1, 0.9))
	f.bus.On("Publish", mock.Anything, mock.Anything).Return(nil)
	p := baseParams()
	p.DrawCount = 1
	p.Currency = domain.CurrencyGold
	p.Cost = 500

	before := f.ledger.Snapshot()
	result, err := f.svc.Spin(context.Background(), f.ledger, p)
	require.NoError(t, err)
	after := f.ledger.Snapshot()

	assert.Equal(t, int64(300-500), result.Delta.Gold)
	assert.Equal(t, after.Gold-before.Gold, result.Delta.Gold)
	assert.Equal(t, after.Diamonds-before.Diamonds, result.Delta.Diamonds)
	assert.Equal(t, after.XP-before.XP, result.Delta.XP)
}

func TestSpin_SecondSpinDuringReveal(t *testing.T) {
	f := newFixture(t, scripted(0.1, 0.0))
	f.bus.On("Publish", mock.Anything, mock.Anything).Return(nil)
	p := baseParams()
	p.DrawCount = 1
	p.RevealDelay = 200 * time.Millisecond

	done := make(chan error, 1)
	go func() {
		_, err := f.svc.Spin(context.Background(), f.ledger, p)
		done <- err
	}()

	// the first spin has debited and is waiting on the reveal
	require.Eventually(t, func() bool {
		return f.ledger.Balance(domain.CurrencyDiamonds) == 40
	}, time.Second, 5*time.Millisecond)

	_, err := f.svc.Spin(context.Background(), f.ledger, p)
	assert.ErrorIs(t, err, domain.ErrSpinInProgress)
	assert.Equal(t, int64(40), f.ledger.Balance(domain.CurrencyDiamonds))

	require.NoError(t, <-done)
	assert.Equal(t, int64(40), f.ledger.Balance(domain.CurrencyDiamonds))
	assert.True(t, f.ledger.Owns("101"))
}
