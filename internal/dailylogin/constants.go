package dailylogin

// Persisted keys within a player's namespace
const (
	KeyStreak   = "login.streak"
	KeyLastDate = "login.last_date"
)

// DateLayout is the persisted format of the last claim date
const DateLayout = "2006-01-02"

// ClaimSourceFormat labels login rewards in claim events
const ClaimSourceFormat = "daily_login:%d"

// Log messages
const (
	LogMsgStateMalformed = "Malformed login state reset"
	LogMsgRewardClaimed  = "Daily login reward claimed"
	LogMsgPublishFailed  = "Failed to publish daily login event"
)

// Log field keys
const (
	LogFieldPlayerID = "player_id"
	LogFieldStreak   = "streak"
	LogFieldField    = "field"
	LogFieldRaw      = "raw"
)
