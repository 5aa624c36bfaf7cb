package domain

// ItemID identifies a catalog item. Feeds mix numeric and string ids, so
// every id is normalized to its decimal/string form at ingestion.
type ItemID = string

// Category is the coarse kind of a cosmetic.
type Category string

const (
	CategoryWeaponSkin    Category = "weapon-skin"
	CategoryClothing      Category = "clothing"
	CategoryVehicleSkin   Category = "vehicle-skin"
	CategoryBundle        Category = "bundle"
	CategoryAvatar        Category = "avatar"
	CategoryBanner        Category = "banner"
	CategoryCharacter     Category = "character"
	CategoryCurrencyGrant Category = "currency-grant"
	CategoryFragment      Category = "fragment"
	CategoryOther         Category = "other"
)

// Rarity is an ordered rarity grade. The zero value is RarityCommon.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityRare
	RarityEpic
	RarityLegendary
	RarityMythic
)

var rarityNames = [...]string{"common", "rare", "epic", "legendary", "mythic"}

func (r Rarity) String() string {
	if r < RarityCommon || r > RarityMythic {
		return rarityNames[RarityCommon]
	}
	return rarityNames[r]
}

// AtLeast reports whether r is the same grade as other or rarer.
func (r Rarity) AtLeast(other Rarity) bool {
	return r >= other
}

// MarshalText encodes the rarity as its lowercase name.
func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText accepts the lowercase names produced by MarshalText.
// Feed-specific spellings are handled by the catalog normalizer.
func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, ok := ParseRarity(string(text))
	if !ok {
		return ErrInvalidInput
	}
	*r = parsed
	return nil
}

// ParseRarity maps a canonical lowercase rarity name to its grade.
func ParseRarity(name string) (Rarity, bool) {
	for i, n := range rarityNames {
		if n == name {
			return Rarity(i), true
		}
	}
	return RarityCommon, false
}

// ItemDescriptor is an immutable catalog entry.
type ItemDescriptor struct {
	ID       ItemID   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Rarity   Rarity   `json:"rarity"`
	ImageRef string   `json:"image,omitempty"`
}

// OwnedItem is the inventory record kept for an item the player owns.
type OwnedItem struct {
	ID       ItemID   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Rarity   Rarity   `json:"rarity"`
	ImageRef string   `json:"image,omitempty"`
}

// Owned converts a descriptor into its inventory record.
func (d ItemDescriptor) Owned() OwnedItem {
	return OwnedItem(d)
}
