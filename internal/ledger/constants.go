package ledger

// Persisted field keys within a player's namespace
const (
	KeyGold      = "gold"
	KeyDiamonds  = "diamonds"
	KeyXP        = "xp"
	KeyInventory = "inventory"
	KeyEquipped  = "equipped"
	KeyName      = "player_name"
	KeyBio       = "player_bio"
)

// Profile limits
const (
	MaxNameLength = 32
	MaxBioLength  = 256
)

// Log messages
const (
	LogMsgLedgerCreated      = "Created ledger with seed state"
	LogMsgMalformedFieldDrop = "Malformed persisted field reset to default"
	LogMsgPersistFailed      = "Failed to persist ledger field"
	LogMsgImagesRefreshed    = "Refreshed inventory images from catalog"
)

// Log field keys
const (
	LogFieldPlayerID = "player_id"
	LogFieldField    = "field"
	LogFieldRaw      = "raw"
	LogFieldCount    = "count"
)
