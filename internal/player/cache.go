package player

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SpinVault_Go/internal/ledger"
)

type cachedLedger struct {
	Version  string
	Ledger   *ledger.Ledger
	CachedAt time.Time
}

// ledgerCache keeps recently used ledgers in memory with a TTL. It only
// bounds what stays resident; instance identity is owned by liveLedgers.
type ledgerCache struct {
	lru *expirable.LRU[string, *cachedLedger]
}

func newLedgerCache(size int, ttl time.Duration) *ledgerCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &ledgerCache{
		lru: expirable.NewLRU[string, *cachedLedger](size, nil, ttl),
	}
}

// Get returns the cached ledger for id. Entries written under an older
// schema version are evicted.
func (c *ledgerCache) Get(id string) (*ledger.Ledger, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		return nil, false
	}
	return entry.Ledger, true
}

func (c *ledgerCache) Set(id string, l *ledger.Ledger) {
	c.lru.Add(id, &cachedLedger{
		Version:  CacheSchemaVersion,
		Ledger:   l,
		CachedAt: time.Now(),
	})
}

func (c *ledgerCache) Invalidate(id string) {
	c.lru.Remove(id)
}

func (c *ledgerCache) Len() int {
	return c.lru.Len()
}
