package pool

import (
	"strings"

	"github.com/osse101/SpinVault_Go/internal/domain"
)

// Predicate decides whether a catalog item belongs in a pool.
type Predicate func(item domain.ItemDescriptor) bool

// TierFunc assigns a weighting tier to an item that passed the predicate.
type TierFunc func(item domain.ItemDescriptor) domain.Tier

// All matches every item.
func All() Predicate {
	return func(domain.ItemDescriptor) bool { return true }
}

// InCategories matches items of any listed category.
func InCategories(categories ...domain.Category) Predicate {
	set := make(map[domain.Category]struct{}, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return func(item domain.ItemDescriptor) bool {
		_, ok := set[item.Category]
		return ok
	}
}

// NotInCategories matches items outside every listed category.
func NotInCategories(categories ...domain.Category) Predicate {
	return Not(InCategories(categories...))
}

// InRarities matches items of any listed rarity.
func InRarities(rarities ...domain.Rarity) Predicate {
	set := make(map[domain.Rarity]struct{}, len(rarities))
	for _, r := range rarities {
		set[r] = struct{}{}
	}
	return func(item domain.ItemDescriptor) bool {
		_, ok := set[item.Rarity]
		return ok
	}
}

// NotInRarities matches items outside every listed rarity.
func NotInRarities(rarities ...domain.Rarity) Predicate {
	return Not(InRarities(rarities...))
}

// NameContains matches items whose name contains substr, ignoring case.
func NameContains(substr string) Predicate {
	needle := strings.ToLower(substr)
	return func(item domain.ItemDescriptor) bool {
		return strings.Contains(strings.ToLower(item.Name), needle)
	}
}

// And matches when every predicate matches. An empty And matches everything.
func And(preds ...Predicate) Predicate {
	return func(item domain.ItemDescriptor) bool {
		for _, p := range preds {
			if !p(item) {
				return false
			}
		}
		return true
	}
}

// Or matches when any predicate matches. An empty Or matches nothing.
func Or(preds ...Predicate) Predicate {
	return func(item domain.ItemDescriptor) bool {
		for _, p := range preds {
			if p(item) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not(p Predicate) Predicate {
	return func(item domain.ItemDescriptor) bool { return !p(item) }
}

// ByRarity tags items with their rarity name.
func ByRarity() TierFunc {
	return func(item domain.ItemDescriptor) domain.Tier {
		return domain.Tier(item.Rarity.String())
	}
}

// FixedTier tags every item with the same tier.
func FixedTier(tier domain.Tier) TierFunc {
	return func(domain.ItemDescriptor) domain.Tier { return tier }
}

// RarityMap tags items through a rarity lookup, using fallback for unmapped rarities.
func RarityMap(m map[domain.Rarity]domain.Tier, fallback domain.Tier) TierFunc {
	return func(item domain.ItemDescriptor) domain.Tier {
		if tier, ok := m[item.Rarity]; ok {
			return tier
		}
		return fallback
	}
}
