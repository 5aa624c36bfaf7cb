package player

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SpinVault_Go/internal/concurrency"
	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/ledger"
	"github.com/osse101/SpinVault_Go/internal/logger"
	"github.com/osse101/SpinVault_Go/internal/storage"
)

// Registry maps player ids onto their ledgers.
type Registry interface {
	// Create registers a new player seeded with the default ledger.
	Create(ctx context.Context) (*ledger.Ledger, error)
	// Get loads an existing player's ledger.
	Get(ctx context.Context, id string) (*ledger.Ledger, error)
	// Forget drops a ledger from the cache. An instance still held by a
	// caller keeps being returned until it is released.
	Forget(id string)
}

type registry struct {
	store    storage.Store
	defaults ledger.Defaults
	cache    *ledgerCache
	live     *liveLedgers
	loads    *concurrency.LockManager
}

// NewRegistry creates a registry caching up to size ledgers for ttl.
func NewRegistry(store storage.Store, defaults ledger.Defaults, size int, ttl time.Duration) Registry {
	return &registry{
		store:    store,
		defaults: defaults,
		cache:    newLedgerCache(size, ttl),
		live:     newLiveLedgers(),
		loads:    concurrency.NewLockManager(),
	}
}

func (r *registry) Create(ctx context.Context) (*ledger.Ledger, error) {
	id := uuid.New().String()
	if err := r.store.Register(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to register player: %w", err)
	}
	l, err := ledger.Load(ctx, r.store, id, r.defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to seed ledger: %w", err)
	}
	r.live.Track(id, l)
	r.cache.Set(id, l)

	logger.FromContext(ctx).Info(LogMsgPlayerCreated, LogFieldPlayerID, id)
	return l, nil
}

func (r *registry) Get(ctx context.Context, id string) (*ledger.Ledger, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: player id %q", domain.ErrInvalidInput, id)
	}
	id = parsed.String()

	if l, ok := r.cache.Get(id); ok {
		return l, nil
	}

	// Two concurrent misses must not build two ledgers for one player, and
	// neither may a miss for a ledger that was evicted while still in use.
	var out *ledger.Ledger
	err = r.loads.WithLock(id, func() error {
		if l, ok := r.cache.Get(id); ok {
			out = l
			return nil
		}
		if l, ok := r.live.Get(id); ok {
			r.cache.Set(id, l)
			out = l
			return nil
		}
		exists, err := r.store.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, id)
		}
		l, err := ledger.Load(ctx, r.store, id, r.defaults)
		if err != nil {
			return err
		}
		r.live.Track(id, l)
		r.cache.Set(id, l)
		out = l
		logger.FromContext(ctx).Debug(LogMsgLedgerLoaded, LogFieldPlayerID, id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *registry) Forget(id string) {
	r.cache.Invalidate(id)
}
