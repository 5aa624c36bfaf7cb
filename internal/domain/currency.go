package domain

// Currency is one of the two in-game balances.
type Currency string

const (
	CurrencyGold     Currency = "gold"
	CurrencyDiamonds Currency = "diamonds"
)

// Valid reports whether c names a known currency.
func (c Currency) Valid() bool {
	return c == CurrencyGold || c == CurrencyDiamonds
}

// Grant is an amount of currency credited to a player.
type Grant struct {
	Currency Currency `json:"currency"`
	Amount   int64    `json:"amount"`
}
