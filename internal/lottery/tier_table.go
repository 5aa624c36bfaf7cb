package lottery

import (
	"fmt"
	"math"

	"github.com/osse101/SpinVault_Go/internal/domain"
)

// thresholdEpsilon absorbs float noise in configured thresholds
const thresholdEpsilon = 1e-9

// Band is one row of a tier table: the tier is selected when the roll is
// below Threshold and not below the previous band's threshold.
type Band struct {
	Tier      domain.Tier `json:"tier" yaml:"tier"`
	Threshold float64     `json:"threshold" yaml:"threshold"`
}

// TierTable maps a uniform roll in [0,1) onto a tier, with fallback tiers
// used when the chosen tier has no pool entries.
type TierTable struct {
	bands []Band
	base  []domain.Tier
}

// NewTierTable validates and builds a table. Thresholds must lie in
// [0,1], never decrease, and end at exactly 1.0 so every roll selects a band.
func NewTierTable(bands []Band, base ...domain.Tier) (*TierTable, error) {
	if len(bands) == 0 {
		return nil, fmt.Errorf("%w: no bands", domain.ErrInvalidTierTable)
	}

	prev := 0.0
	for i, b := range bands {
		if b.Tier == "" {
			return nil, fmt.Errorf("%w: band %d has no tier", domain.ErrInvalidTierTable, i)
		}
		if math.IsNaN(b.Threshold) || b.Threshold < 0 || b.Threshold > 1+thresholdEpsilon {
			return nil, fmt.Errorf("%w: band %q threshold %v outside [0,1]", domain.ErrInvalidTierTable, b.Tier, b.Threshold)
		}
		if b.Threshold < prev {
			return nil, fmt.Errorf("%w: band %q threshold %v below previous %v", domain.ErrInvalidTierTable, b.Tier, b.Threshold, prev)
		}
		prev = b.Threshold
	}
	if math.Abs(prev-1) > thresholdEpsilon {
		return nil, fmt.Errorf("%w: final threshold is %v, want 1.0", domain.ErrInvalidTierTable, prev)
	}

	t := &TierTable{
		bands: append([]Band(nil), bands...),
		base:  append([]domain.Tier(nil), base...),
	}
	t.bands[len(t.bands)-1].Threshold = 1
	return t, nil
}

// MustTierTable is NewTierTable for static tables known to be valid.
func MustTierTable(bands []Band, base ...domain.Tier) *TierTable {
	t, err := NewTierTable(bands, base...)
	if err != nil {
		panic(err)
	}
	return t
}

// UniformTable selects uniformly over the whole pool.
func UniformTable() *TierTable {
	return MustTierTable([]Band{{Tier: domain.TierAny, Threshold: 1}})
}

// Select returns the first band whose threshold exceeds roll.
func (t *TierTable) Select(roll float64) domain.Tier {
	for _, b := range t.bands {
		if roll < b.Threshold {
			return b.Tier
		}
	}
	return t.bands[len(t.bands)-1].Tier
}

// Bands returns a copy of the table rows.
func (t *TierTable) Bands() []Band {
	return append([]Band(nil), t.bands...)
}

// Base returns the fallback tiers.
func (t *TierTable) Base() []domain.Tier {
	return append([]domain.Tier(nil), t.base...)
}

// Probabilities returns the chance of each tier being targeted.
func (t *TierTable) Probabilities() map[domain.Tier]float64 {
	out := make(map[domain.Tier]float64, len(t.bands))
	prev := 0.0
	for _, b := range t.bands {
		out[b.Tier] += b.Threshold - prev
		prev = b.Threshold
	}
	return out
}
