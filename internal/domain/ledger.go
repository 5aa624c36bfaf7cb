package domain

import "math"

// Slot is an equip slot on the player profile.
type Slot string

const (
	SlotAvatar    Slot = "avatar"
	SlotBanner    Slot = "banner"
	SlotCharacter Slot = "character"
)

// Slots lists every equip slot.
var Slots = []Slot{SlotAvatar, SlotBanner, SlotCharacter}

// Valid reports whether s is a known slot.
func (s Slot) Valid() bool {
	for _, known := range Slots {
		if s == known {
			return true
		}
	}
	return false
}

// Accepts reports whether an item of the given category can go in the slot.
func (s Slot) Accepts(c Category) bool {
	switch s {
	case SlotAvatar:
		return c == CategoryAvatar
	case SlotBanner:
		return c == CategoryBanner
	case SlotCharacter:
		return c == CategoryCharacter
	}
	return false
}

// Profile is the player's display identity.
type Profile struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

// LedgerSnapshot is a read-only copy of a player's economy state.
type LedgerSnapshot struct {
	PlayerID  string          `json:"player_id"`
	Gold      int64           `json:"gold"`
	Diamonds  int64           `json:"diamonds"`
	XP        int64           `json:"xp"`
	Level     int             `json:"level"`
	Profile   Profile         `json:"profile"`
	Inventory []OwnedItem     `json:"inventory"`
	Equipped  map[Slot]ItemID `json:"equipped"`
}

// Balance returns the snapshot balance for a currency.
func (s LedgerSnapshot) Balance(c Currency) int64 {
	if c == CurrencyDiamonds {
		return s.Diamonds
	}
	return s.Gold
}

// Level derives the player level from accumulated XP.
func Level(xp int64) int {
	if xp < 0 {
		xp = 0
	}
	return int(math.Floor(math.Sqrt(float64(xp))/10)) + 1
}
