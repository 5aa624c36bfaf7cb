package session

import "github.com/osse101/SpinVault_Go/internal/domain"

// Compensation is the currency credited when a draw lands on an item the
// player already owns.
type Compensation struct {
	Currency domain.Currency
	ByRarity map[domain.Rarity]int64
}

// DefaultCompensation pays gold scaled by the duplicate's rarity.
func DefaultCompensation() Compensation {
	return Compensation{
		Currency: domain.CurrencyGold,
		ByRarity: map[domain.Rarity]int64{
			domain.RarityCommon:    CompensationCommon,
			domain.RarityRare:      CompensationRare,
			domain.RarityEpic:      CompensationEpic,
			domain.RarityLegendary: CompensationLegendary,
			domain.RarityMythic:    CompensationMythic,
		},
	}
}

// For returns the grant for a duplicate of rarity r. A zero amount means
// the duplicate is simply dropped.
func (c Compensation) For(r domain.Rarity) domain.Grant {
	currency := c.Currency
	if currency == "" {
		currency = domain.CurrencyGold
	}
	return domain.Grant{Currency: currency, Amount: c.ByRarity[r]}
}
