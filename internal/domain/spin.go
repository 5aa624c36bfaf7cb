package domain

// SpinOutcome is one settled draw of a spin session.
type SpinOutcome struct {
	Entry      PoolEntry  `json:"entry"`
	TargetTier Tier       `json:"target_tier"`
	Source     DrawSource `json:"source"`
	Duplicate  bool       `json:"duplicate"`              // Item was already owned
	Granted    *Grant     `json:"compensation,omitempty"` // Currency credited instead of a duplicate
}

// LedgerDelta is the net change a session made to the ledger. Balances
// include the debited cost, so a losing spin has a negative delta.
type LedgerDelta struct {
	Gold       int64    `json:"gold"`
	Diamonds   int64    `json:"diamonds"`
	XP         int64    `json:"xp"`
	ItemsAdded []ItemID `json:"items_added"`
}

// Apply adds amount of currency c to the delta.
func (d *LedgerDelta) Apply(c Currency, amount int64) {
	switch c {
	case CurrencyGold:
		d.Gold += amount
	case CurrencyDiamonds:
		d.Diamonds += amount
	}
}

// SpinResult is the settled outcome of one game session.
type SpinResult struct {
	Game       string         `json:"game"`
	DrawCount  int            `json:"draw_count"`
	Cost       int64          `json:"cost"`
	Currency   Currency       `json:"currency"`
	Outcomes   []SpinOutcome  `json:"outcomes"`
	Delta      LedgerDelta    `json:"delta"`
	Balance    LedgerSnapshot `json:"balance"`
	LevelUp    bool           `json:"level_up"`
	HighestWin Rarity         `json:"highest_rarity"`
}
