package pool

import (
	"github.com/osse101/SpinVault_Go/internal/catalog"
	"github.com/osse101/SpinVault_Go/internal/domain"
)

// Source supplies catalog items in a stable order.
type Source interface {
	All() []domain.ItemDescriptor
}

// Builder assembles prize pools from a catalog. Building is pure: the
// same catalog and arguments always yield the same pool in the same order.
type Builder struct {
	src Source
}

// NewBuilder creates a Builder over src.
func NewBuilder(src Source) *Builder {
	return &Builder{src: src}
}

type options struct {
	maxItems   int
	tierLimits map[domain.Tier]int
}

// Option tunes a Build call.
type Option func(*options)

// WithMaxItems keeps only the first n matching catalog items.
func WithMaxItems(n int) Option {
	return func(o *options) { o.maxItems = n }
}

// WithTierLimit keeps only the first n matching items of a tier.
func WithTierLimit(tier domain.Tier, n int) Option {
	return func(o *options) {
		if o.tierLimits == nil {
			o.tierLimits = make(map[domain.Tier]int)
		}
		o.tierLimits[tier] = n
	}
}

// Build returns every eligible catalog item matching pred, tagged by
// tierOf, followed by the fillers. A predicate that matches nothing
// yields just the fillers.
func (b *Builder) Build(pred Predicate, tierOf TierFunc, fillers []domain.PoolEntry, opts ...Option) []domain.PoolEntry {
	entries := b.Items(pred, tierOf, opts...)
	out := make([]domain.PoolEntry, 0, len(entries)+len(fillers))
	out = append(out, entries...)
	out = append(out, fillers...)
	return out
}

// Items is Build without fillers.
func (b *Builder) Items(pred Predicate, tierOf TierFunc, opts ...Option) []domain.PoolEntry {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var out []domain.PoolEntry
	perTier := make(map[domain.Tier]int)

	for _, item := range b.src.All() {
		if o.maxItems > 0 && len(out) >= o.maxItems {
			break
		}
		if !catalog.Eligible(item) || !pred(item) {
			continue
		}
		tier := tierOf(item)
		if limit, ok := o.tierLimits[tier]; ok && perTier[tier] >= limit {
			continue
		}
		perTier[tier]++
		out = append(out, domain.EntryFromItem(item, tier))
	}
	return out
}

// Tiers counts pool entries per tier.
func Tiers(entries []domain.PoolEntry) map[domain.Tier]int {
	counts := make(map[domain.Tier]int)
	for _, e := range entries {
		counts[e.Tier]++
	}
	return counts
}
