package daily

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/SpinVault_Go/internal/audio"
	"github.com/osse101/SpinVault_Go/internal/concurrency"
	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/event"
	"github.com/osse101/SpinVault_Go/internal/logger"
)

// Ledger is the slice of ledger behaviour a purchase needs.
type Ledger interface {
	PlayerID() string
	Owns(id domain.ItemID) bool
	Debit(ctx context.Context, c domain.Currency, amount int64) error
	AddItem(ctx context.Context, item domain.OwnedItem) (bool, error)
	AddXP(ctx context.Context, amount int64) (bool, error)
	Snapshot() domain.LedgerSnapshot
}

// Storefront sells the daily offers.
type Storefront struct {
	picker *Picker
	locks  *concurrency.LockManager
	audio  audio.Player
	bus    event.Bus
}

// NewStorefront creates a storefront over picker. Purchases by the same
// player are serialized through locks.
func NewStorefront(picker *Picker, locks *concurrency.LockManager, player audio.Player, bus event.Bus) *Storefront {
	if player == nil {
		player = audio.Nop{}
	}
	return &Storefront{
		picker: picker,
		locks:  locks,
		audio:  player,
		bus:    bus,
	}
}

// Buy purchases itemID from the listing for the day containing now.
// An owned item is rejected before any currency moves.
func (s *Storefront) Buy(ctx context.Context, l Ledger, now time.Time, itemID domain.ItemID) (*domain.Purchase, error) {
	log := logger.FromContext(ctx)
	s.audio.Play(audio.SoundClick)

	offer, ok := s.picker.Offer(ctx, now, itemID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotInStoreToday, itemID)
	}

	var purchase *domain.Purchase
	err := s.locks.WithLock(l.PlayerID(), func() error {
		if l.Owns(itemID) {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, itemID)
		}
		if err := l.Debit(ctx, offer.Currency, offer.Price); err != nil {
			return err
		}
		if _, err := l.AddItem(ctx, offer.Item.Owned()); err != nil {
			return err
		}
		if _, err := l.AddXP(ctx, PurchaseXP); err != nil {
			return err
		}
		purchase = &domain.Purchase{Offer: offer, XP: PurchaseXP, Balance: l.Snapshot()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audio.Play(audio.SoundWin)
	log.Info(LogMsgItemPurchased,
		LogFieldPlayerID, l.PlayerID(),
		LogFieldItemID, itemID,
		LogFieldPrice, offer.Price,
		LogFieldCurrency, offer.Currency)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewItemPurchasedEvent(l.PlayerID(), offer)); err != nil {
			log.Warn(LogMsgPublishFailed, LogFieldPlayerID, l.PlayerID(), "error", err)
		}
	}
	return purchase, nil
}
