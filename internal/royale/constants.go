package royale

// Image references shared by the shipped fillers
const (
	ImageGold     = "/assets/images/gold_icon.webp"
	ImageFragment = "/assets/images/misc/Icon_exchange_MC_fragment.png"
)

// DefaultPreviewSize is how many pool entries the rotating preview shows
const DefaultPreviewSize = 5

// Log messages
const (
	LogMsgDefinitionsLoaded = "Game definitions loaded"
	LogMsgGameWithoutItems  = "Game pool has no catalog items, only fillers will be drawn"
	LogMsgNoGrandPrize      = "Grand prize matched no catalog items, disabled"
)

// Log field keys
const (
	LogFieldGame    = "game"
	LogFieldCount   = "count"
	LogFieldPool    = "pool_size"
	LogFieldFillers = "fillers"
	LogFieldPath    = "path"
)
