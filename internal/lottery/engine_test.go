package lottery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinVault_Go/internal/domain"
)

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

func entry(id string, tier domain.Tier) domain.PoolEntry {
	return domain.PoolEntry{ID: id, Name: id, Kind: domain.PrizeItem, Tier: tier}
}

var threeTierTable = MustTierTable([]Band{{"epic", 0.15}, {"rare", 0.5}, {"common", 1}}, "common")

func TestDraw_SelectsTargetTier(t *testing.T) {
	pool := []domain.PoolEntry{entry("e1", "epic"), entry("r1", "rare"), entry("r2", "rare"), entry("c1", "common")}
	// tier roll 0.3 -> rare; pick roll 0.6 -> index 1 of [r1 r2]
	e := NewEngine(scripted(0.3, 0.6))

	draws, err := e.Draw(pool, threeTierTable, 1, nil)
	require.NoError(t, err)
	require.Len(t, draws, 1)
	assert.Equal(t, "r2", draws[0].Entry.ID)
	assert.Equal(t, domain.Tier("rare"), draws[0].TargetTier)
	assert.Equal(t, domain.SourceTier, draws[0].Source)
}

func TestDraw_FallsBackToBaseTier(t *testing.T) {
	pool := []domain.PoolEntry{entry("c1", "common"), entry("c2", "common")}
	e := NewEngine(scripted(0.05, 0.99))

	draws, err := e.Draw(pool, threeTierTable, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "c2", draws[0].Entry.ID)
	assert.Equal(t, domain.Tier("epic"), draws[0].TargetTier)
	assert.Equal(t, domain.SourceBase, draws[0].Source)
}

func TestDraw_FallsBackToWholePool(t *testing.T) {
	table := MustTierTable([]Band{{"legendary", 0.1}, {"epic", 1}})
	pool := []domain.PoolEntry{entry("x", "filler")}
	e := NewEngine(scripted(0.5, 0))

	draws, err := e.Draw(pool, table, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "x", draws[0].Entry.ID)
	assert.Equal(t, domain.SourcePool, draws[0].Source)
}

func TestDraw_GrandPrize(t *testing.T) {
	pool := []domain.PoolEntry{entry("c1", "common")}
	grand := &GrandPrize{Entries: []domain.PoolEntry{entry("g", "legendary")}, Chance: 0.01}

	t.Run("hit", func(t *testing.T) {
		e := NewEngine(scripted(0.005))
		draws, err := e.Draw(pool, threeTierTable, 1, grand)
		require.NoError(t, err)
		assert.Equal(t, "g", draws[0].Entry.ID)
		assert.Equal(t, domain.SourceGrandPrize, draws[0].Source)
	})

	t.Run("miss consumes a roll", func(t *testing.T) {
		e := NewEngine(scripted(0.01, 0.9, 0))
		draws, err := e.Draw(pool, threeTierTable, 1, grand)
		require.NoError(t, err)
		assert.Equal(t, "c1", draws[0].Entry.ID)
		assert.Equal(t, domain.Tier("common"), draws[0].TargetTier)
	})
}

func TestDraw_GrandPrizePicksAmongEntries(t *testing.T) {
	pool := []domain.PoolEntry{entry("c1", "common")}
	grand := &GrandPrize{Entries: []domain.PoolEntry{entry("g1", "legendary"), entry("g2", "mythic")}, Chance: 0.02}
	e := NewEngine(scripted(0.001, 0.9))

	draws, err := e.Draw(pool, threeTierTable, 1, grand)
	require.NoError(t, err)
	assert.Equal(t, "g2", draws[0].Entry.ID)
	assert.Equal(t, domain.Tier("mythic"), draws[0].TargetTier)
}

func TestDraw_UniformTable(t *testing.T) {
	pool := []domain.PoolEntry{entry("a", "rare"), entry("b", "epic"), entry("c", "legendary")}
	e := NewEngine(scripted(0.2, 0.7))

	draws, err := e.Draw(pool, UniformTable(), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "c", draws[0].Entry.ID)
	assert.Equal(t, domain.SourceTier, draws[0].Source)
}

func TestDraw_CountAndErrors(t *testing.T) {
	pool := []domain.PoolEntry{entry("c1", "common")}
	e := NewEngine(scripted(0.9))

	draws, err := e.Draw(pool, threeTierTable, 11, nil)
	require.NoError(t, err)
	assert.Len(t, draws, 11)

	_, err = e.Draw(pool, threeTierTable, 0, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.Draw(nil, threeTierTable, 1, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyPool)

	_, err = e.Draw(nil, threeTierTable, 1, &GrandPrize{Entries: []domain.PoolEntry{entry("g", "x")}, Chance: 0})
	assert.ErrorIs(t, err, domain.ErrEmptyPool, "missed grand prize on empty pool")

	_, err = e.Draw(pool, nil, 1, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTierTable)
}

func TestDraw_OutcomesAlwaysFromPool(t *testing.T) {
	pool := []domain.PoolEntry{entry("e1", "epic"), entry("c1", "common"), entry("f1", "filler")}
	ids := map[string]bool{"e1": true, "c1": true, "f1": true}
	e := NewEngine(NewSeededSource(42))

	draws, err := e.Draw(pool, threeTierTable, 5000, nil)
	require.NoError(t, err)
	for _, d := range draws {
		assert.True(t, ids[d.Entry.ID])
	}
}

func TestDraw_TierFrequenciesMatchTable(t *testing.T) {
	pool := []domain.PoolEntry{entry("e1", "epic"), entry("r1", "rare"), entry("c1", "common")}
	e := NewEngine(NewSeededSource(7))

	const n = 100000
	draws, err := e.Draw(pool, threeTierTable, n, nil)
	require.NoError(t, err)

	counts := map[domain.Tier]int{}
	for _, d := range draws {
		counts[d.Entry.Tier]++
	}
	assert.InDelta(t, 0.15, float64(counts["epic"])/n, 0.01)
	assert.InDelta(t, 0.35, float64(counts["rare"])/n, 0.01)
	assert.InDelta(t, 0.50, float64(counts["common"])/n, 0.01)
}

func TestSeededSource_Reproducible(t *testing.T) {
	a, b := NewSeededSource(99), NewSeededSource(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a(), b())
	}
}
