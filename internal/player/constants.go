package player

// CacheSchemaVersion is bumped when the cached ledger shape changes so old
// entries are dropped instead of served.
const CacheSchemaVersion = "1.0"

// Cache defaults used when the caller passes non-positive values
const (
	DefaultCacheSize = 1024
)

// Log messages
const (
	LogMsgPlayerCreated = "Player created"
	LogMsgLedgerLoaded  = "Ledger loaded into cache"
)

// Log field keys
const (
	LogFieldPlayerID = "player_id"
)
