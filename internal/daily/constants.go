package daily

import "time"

// Store defaults
const (
	DefaultStoreSize = 20
	PurchaseXP       = 50

	// DateLayout keys the per-day offer cache
	DateLayout = "2006-01-02"

	cacheDays = 7
	cacheTTL  = 48 * time.Hour
)

// Pricing. A first roll above GoldChance prices the offer in gold; a second
// roll scales into the currency's range.
const (
	GoldChance        = 0.3
	GoldPriceMin      = 500
	GoldPriceSpan     = 5000
	DiamondsPriceMin  = 50
	DiamondsPriceSpan = 500
)

// Log messages
const (
	LogMsgOffersGenerated = "Daily offers generated"
	LogMsgItemPurchased   = "Store item purchased"
	LogMsgPublishFailed   = "Failed to publish purchase event"
)

// Log field keys
const (
	LogFieldDate     = "date"
	LogFieldCount    = "count"
	LogFieldPlayerID = "player_id"
	LogFieldItemID   = "item_id"
	LogFieldPrice    = "price"
	LogFieldCurrency = "currency"
)
