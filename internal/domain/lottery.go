package domain

// Tier is a weighting label used by tier tables. It usually mirrors a
// rarity name but games may define their own labels.
type Tier string

// TierAny matches every pool entry regardless of its tier.
const TierAny Tier = "*"

// PrizeKind distinguishes what committing a pool entry does to a ledger.
type PrizeKind string

const (
	PrizeItem     PrizeKind = "item"
	PrizeCurrency PrizeKind = "currency"
	PrizeFragment PrizeKind = "fragment"
)

// PoolEntry is one candidate outcome of a draw.
type PoolEntry struct {
	ID       ItemID    `json:"id"`
	Name     string    `json:"name"`
	Kind     PrizeKind `json:"kind"`
	Tier     Tier      `json:"tier"`
	Rarity   Rarity    `json:"rarity"`
	Category Category  `json:"category"`
	ImageRef string    `json:"image,omitempty"`
	Currency Currency  `json:"currency,omitempty"`
	Amount   int64     `json:"amount,omitempty"`
}

// EntryFromItem wraps a catalog item as a pool entry with the given tier.
func EntryFromItem(item ItemDescriptor, tier Tier) PoolEntry {
	return PoolEntry{
		ID:       item.ID,
		Name:     item.Name,
		Kind:     PrizeItem,
		Tier:     tier,
		Rarity:   item.Rarity,
		Category: item.Category,
		ImageRef: item.ImageRef,
	}
}

// Descriptor returns the catalog view of an item or fragment entry.
func (e PoolEntry) Descriptor() ItemDescriptor {
	return ItemDescriptor{
		ID:       e.ID,
		Name:     e.Name,
		Category: e.Category,
		Rarity:   e.Rarity,
		ImageRef: e.ImageRef,
	}
}

// DrawSource records which step of the draw produced an outcome.
type DrawSource string

const (
	SourceGrandPrize DrawSource = "grand"
	SourceTier       DrawSource = "tier"
	SourceBase       DrawSource = "base"
	SourcePool       DrawSource = "pool"
)

// Draw is a single lottery outcome.
type Draw struct {
	Entry      PoolEntry  `json:"entry"`
	TargetTier Tier       `json:"target_tier"`
	Source     DrawSource `json:"source"`
}
