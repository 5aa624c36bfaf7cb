package mission

// Persisted keys within a player's namespace
const (
	CounterKeyPrefix = "mission."
	KeyClaimed       = "mission.claimed"
)

// ClaimSourceFormat labels mission rewards in claim events
const ClaimSourceFormat = "mission:%d"

// Log messages
const (
	LogMsgCounterMalformed = "Malformed mission counter reset to zero"
	LogMsgClaimedMalformed = "Malformed claimed missions reset"
	LogMsgCounterAdvanced  = "Mission counter advanced"
	LogMsgMissionClaimed   = "Mission reward claimed"
	LogMsgPublishFailed    = "Failed to publish mission claim event"
)

// Log field keys
const (
	LogFieldPlayerID  = "player_id"
	LogFieldCounter   = "counter"
	LogFieldValue     = "value"
	LogFieldMissionID = "mission_id"
	LogFieldRaw       = "raw"
)
