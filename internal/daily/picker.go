package daily

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SpinVault_Go/internal/catalog"
	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/logger"
	"github.com/osse101/SpinVault_Go/internal/utils"
)

// Seed derives the store seed for a calendar date: year, zero-based month
// and day of month concatenated in decimal, without padding. 1 June 2025
// is 202551.
func Seed(date time.Time) int64 {
	s := fmt.Sprintf("%d%d%d", date.Year(), int(date.Month())-1, date.Day())
	seed, _ := strconv.ParseInt(s, 10, 64)
	return seed
}

// Generator is the sine-based sequence the store is shuffled and priced
// with. It is deterministic for a seed, not statistically strong.
type Generator struct {
	seed int64
}

// NewGenerator starts a sequence at seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{seed: seed}
}

// Next returns frac(sin(seed)*10000) and advances the seed.
func (g *Generator) Next() float64 {
	x := math.Sin(float64(g.seed)) * 10000
	g.seed++
	return x - math.Floor(x)
}

// Pick selects n offers for date from the eligible subset of items.
//
// The eligible items are shuffled with a Fisher-Yates pass from the end,
// the first n are kept, then each kept item consumes two more values of the
// same sequence: one for the currency and one for the price.
func Pick(items []domain.ItemDescriptor, date time.Time, n int) []domain.StoreOffer {
	candidates := make([]domain.ItemDescriptor, 0, len(items))
	for _, item := range items {
		if catalog.Eligible(item) {
			candidates = append(candidates, item)
		}
	}
	if len(candidates) == 0 || n <= 0 {
		return []domain.StoreOffer{}
	}

	gen := NewGenerator(Seed(date))
	for i := len(candidates) - 1; i > 0; i-- {
		j := utils.PickIndex(gen.Next(), i+1)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	if n > len(candidates) {
		n = len(candidates)
	}
	offers := make([]domain.StoreOffer, 0, n)
	for _, item := range candidates[:n] {
		currency := domain.CurrencyDiamonds
		if gen.Next() > GoldChance {
			currency = domain.CurrencyGold
		}
		offers = append(offers, domain.StoreOffer{
			Item:     item,
			Currency: currency,
			Price:    price(currency, gen.Next()),
		})
	}
	return offers
}

func price(c domain.Currency, roll float64) int64 {
	if c == domain.CurrencyGold {
		return int64(math.Floor(roll*GoldPriceSpan)) + GoldPriceMin
	}
	return int64(math.Floor(roll*DiamondsPriceSpan)) + DiamondsPriceMin
}

// Source supplies the items the store draws from.
type Source interface {
	All() []domain.ItemDescriptor
}

// Picker serves the offers for the current calendar day, computing each
// day once.
type Picker struct {
	src   Source
	size  int
	loc   *time.Location
	cache *expirable.LRU[string, []domain.StoreOffer]
}

// NewPicker creates a picker listing size offers per day. Day boundaries
// are taken in loc; a nil loc uses time.Local.
func NewPicker(src Source, size int, loc *time.Location) *Picker {
	if size <= 0 {
		size = DefaultStoreSize
	}
	if loc == nil {
		loc = time.Local
	}
	return &Picker{
		src:   src,
		size:  size,
		loc:   loc,
		cache: expirable.NewLRU[string, []domain.StoreOffer](cacheDays, nil, cacheTTL),
	}
}

// Offers returns the store listing for the day containing now.
func (p *Picker) Offers(ctx context.Context, now time.Time) []domain.StoreOffer {
	day := now.In(p.loc)
	key := day.Format(DateLayout)
	if offers, ok := p.cache.Get(key); ok {
		return append([]domain.StoreOffer(nil), offers...)
	}

	offers := Pick(p.src.All(), day, p.size)
	p.cache.Add(key, offers)
	logger.FromContext(ctx).Debug(LogMsgOffersGenerated, LogFieldDate, key, LogFieldCount, len(offers))
	return append([]domain.StoreOffer(nil), offers...)
}

// Offer finds id in the listing for the day containing now.
func (p *Picker) Offer(ctx context.Context, now time.Time, id domain.ItemID) (domain.StoreOffer, bool) {
	for _, o := range p.Offers(ctx, now) {
		if o.Item.ID == id {
			return o, true
		}
	}
	return domain.StoreOffer{}, false
}

// ResetsIn returns the time left until the next local midnight.
func (p *Picker) ResetsIn(now time.Time) time.Duration {
	day := now.In(p.loc)
	y, m, d := day.Date()
	midnight := time.Date(y, m, d+1, 0, 0, 0, 0, p.loc)
	return midnight.Sub(day)
}
