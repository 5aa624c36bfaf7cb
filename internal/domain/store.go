package domain

// StoreOffer is one item listed in the daily store with its price.
type StoreOffer struct {
	Item     ItemDescriptor `json:"item"`
	Currency Currency       `json:"currency"`
	Price    int64          `json:"price"`
}

// Purchase is the result of buying a store offer.
type Purchase struct {
	Offer   StoreOffer     `json:"offer"`
	XP      int64          `json:"xp"`
	Balance LedgerSnapshot `json:"balance"`
}
