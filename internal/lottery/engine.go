package lottery

import (
	"fmt"
	"math/rand/v2"

	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/utils"
)

// GrandPrize short-circuits a draw with a fixed chance, awarding one of
// Entries uniformly.
type GrandPrize struct {
	Entries []domain.PoolEntry
	Chance  float64
}

// Engine draws outcomes from a pool. It holds no state besides its
// random source, so one engine can serve every session.
type Engine struct {
	rnd func() float64
}

// NewEngine creates an engine. A nil rnd uses utils.RandomFloat.
func NewEngine(rnd func() float64) *Engine {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return &Engine{rnd: rnd}
}

// NewSeededSource returns a reproducible uniform source for simulations.
// The returned function is not safe for concurrent use.
func NewSeededSource(seed uint64) func() float64 {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return r.Float64
}

// Draw performs count independent draws with replacement.
//
// Each draw rolls once for the grand prize (when configured) and once for
// the tier. A grand prize with no entries is ignored. If the targeted tier
// has no entries the draw falls back to the table's base tiers and then to
// the whole pool.
func (e *Engine) Draw(pool []domain.PoolEntry, table *TierTable, count int, grand *GrandPrize) ([]domain.Draw, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: draw count %d", domain.ErrInvalidInput, count)
	}
	if table == nil {
		return nil, fmt.Errorf("%w: nil tier table", domain.ErrInvalidTierTable)
	}
	if grand != nil && len(grand.Entries) == 0 {
		grand = nil
	}
	if len(pool) == 0 && grand == nil {
		return nil, domain.ErrEmptyPool
	}

	byTier := groupByTier(pool)
	base := filterTiers(pool, table.base)

	draws := make([]domain.Draw, 0, count)
	for i := 0; i < count; i++ {
		d, err := e.drawOne(pool, byTier, base, table, grand)
		if err != nil {
			return nil, err
		}
		draws = append(draws, d)
	}
	return draws, nil
}

func (e *Engine) drawOne(pool []domain.PoolEntry, byTier map[domain.Tier][]domain.PoolEntry, base []domain.PoolEntry, table *TierTable, grand *GrandPrize) (domain.Draw, error) {
	if grand != nil && e.rnd() < grand.Chance {
		entry := grand.Entries[utils.PickIndex(e.rnd(), len(grand.Entries))]
		return domain.Draw{Entry: entry, TargetTier: entry.Tier, Source: domain.SourceGrandPrize}, nil
	}

	target := table.Select(e.rnd())

	candidates, source := byTier[target], domain.SourceTier
	if target == domain.TierAny {
		candidates = pool
	}
	if len(candidates) == 0 {
		candidates, source = base, domain.SourceBase
	}
	if len(candidates) == 0 {
		candidates, source = pool, domain.SourcePool
	}
	if len(candidates) == 0 {
		return domain.Draw{}, domain.ErrEmptyPool
	}

	entry := candidates[utils.PickIndex(e.rnd(), len(candidates))]
	return domain.Draw{Entry: entry, TargetTier: target, Source: source}, nil
}

func groupByTier(pool []domain.PoolEntry) map[domain.Tier][]domain.PoolEntry {
	out := make(map[domain.Tier][]domain.PoolEntry)
	for _, e := range pool {
		out[e.Tier] = append(out[e.Tier], e)
	}
	return out
}

// filterTiers keeps pool entries whose tier is listed, preserving pool order.
func filterTiers(pool []domain.PoolEntry, tiers []domain.Tier) []domain.PoolEntry {
	if len(tiers) == 0 {
		return nil
	}
	want := make(map[domain.Tier]struct{}, len(tiers))
	for _, t := range tiers {
		want[t] = struct{}{}
	}
	var out []domain.PoolEntry
	for _, e := range pool {
		if _, ok := want[e.Tier]; ok {
			out = append(out, e)
		}
	}
	return out
}
