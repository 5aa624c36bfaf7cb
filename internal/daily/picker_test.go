package daily

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinVault_Go/internal/catalog"
	"github.com/osse101/SpinVault_Go/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func items(n int) []domain.ItemDescriptor {
	out := make([]domain.ItemDescriptor, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.ItemDescriptor{
			ID:       fmt.Sprintf("%d", 1000+i),
			Name:     fmt.Sprintf("Item %d", i),
			Category: domain.CategoryWeaponSkin,
			ImageRef: fmt.Sprintf("/assets/images/%d.png", 1000+i),
		})
	}
	return out
}

func ids(offers []domain.StoreOffer) []domain.ItemID {
	out := make([]domain.ItemID, 0, len(offers))
	for _, o := range offers {
		out = append(out, o.Item.ID)
	}
	return out
}

func TestSeed(t *testing.T) {
	tests := []struct {
		date time.Time
		want int64
	}{
		{day(2025, time.June, 1), 202551},
		{day(2025, time.January, 9), 202509},
		{day(2025, time.December, 25), 20251125},
	}
	for _, tt := range tests {
		t.Run(tt.date.Format(DateLayout), func(t *testing.T) {
			assert.Equal(t, tt.want, Seed(tt.date))
		})
	}
}

func TestGenerator(t *testing.T) {
	a, b := NewGenerator(202551), NewGenerator(202551)
	for i := 0; i < 100; i++ {
		x := a.Next()
		assert.Equal(t, x, b.Next())
		assert.GreaterOrEqual(t, x, 0.0)
		assert.Less(t, x, 1.0)
	}
}

func TestPick_DeterministicPerDay(t *testing.T) {
	pool := items(60)

	first := Pick(pool, day(2025, time.June, 1), 20)
	again := Pick(items(60), day(2025, time.June, 1), 20)
	next := Pick(pool, day(2025, time.June, 2), 20)

	require.Len(t, first, 20)
	assert.Equal(t, first, again)
	assert.NotEqual(t, ids(first), ids(next))
}

func TestPick_OffersAreDistinctAndPriced(t *testing.T) {
	offers := Pick(items(60), day(2025, time.June, 1), 20)

	seen := make(map[domain.ItemID]bool)
	for _, o := range offers {
		assert.False(t, seen[o.Item.ID], "duplicate offer %s", o.Item.ID)
		seen[o.Item.ID] = true

		switch o.Currency {
		case domain.CurrencyGold:
			assert.GreaterOrEqual(t, o.Price, int64(GoldPriceMin))
			assert.Less(t, o.Price, int64(GoldPriceMin+GoldPriceSpan))
		case domain.CurrencyDiamonds:
			assert.GreaterOrEqual(t, o.Price, int64(DiamondsPriceMin))
			assert.Less(t, o.Price, int64(DiamondsPriceMin+DiamondsPriceSpan))
		default:
			t.Fatalf("unexpected currency %q", o.Currency)
		}
	}
}

func TestPick_SkipsIneligibleItems(t *testing.T) {
	pool := items(3)
	pool = append(pool,
		domain.ItemDescriptor{ID: "noimg", Name: "No Image"},
		domain.ItemDescriptor{ID: "ph", Name: "Placeholder", ImageRef: "/assets/" + catalog.PlaceholderSentinel + ".png"},
	)

	offers := Pick(pool, day(2025, time.June, 1), 20)

	assert.Len(t, offers, 3)
	assert.NotContains(t, ids(offers), "noimg")
	assert.NotContains(t, ids(offers), "ph")
}

func TestPick_EmptyInput(t *testing.T) {
	assert.Empty(t, Pick(nil, day(2025, time.June, 1), 20))
	assert.Empty(t, Pick(items(5), day(2025, time.June, 1), 0))
}

func TestPicker_CachesPerDay(t *testing.T) {
	src := catalog.New(items(40)...)
	p := NewPicker(src, 10, time.UTC)
	ctx := context.Background()

	morning := time.Date(2025, time.June, 1, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.June, 1, 23, 0, 0, 0, time.UTC)

	offers := p.Offers(ctx, morning)
	require.Len(t, offers, 10)
	assert.Equal(t, offers, p.Offers(ctx, evening))
	assert.Equal(t, Pick(src.All(), morning, 10), offers)

	offers[0].Price = -1
	assert.NotEqual(t, int64(-1), p.Offers(ctx, morning)[0].Price, "callers get a copy")

	o, ok := p.Offer(ctx, evening, offers[3].Item.ID)
	require.True(t, ok)
	assert.Equal(t, offers[3].Item.ID, o.Item.ID)

	_, ok = p.Offer(ctx, evening, "missing")
	assert.False(t, ok)
}

func TestPicker_ResetsIn(t *testing.T) {
	p := NewPicker(catalog.New(), 0, time.UTC)

	assert.Equal(t, time.Hour, p.ResetsIn(time.Date(2025, time.June, 1, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, 24*time.Hour, p.ResetsIn(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)))
}
