package handler

// HeaderPlayerID carries the caller's player id.
const HeaderPlayerID = "X-Player-ID"

// URL parameters
const (
	ParamItemID    = "id"
	ParamGame      = "game"
	ParamMissionID = "id"
	QueryLimit     = "limit"
)

// Health check settings
const (
	ReadinessTimeoutSeconds = 2
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgStoreFailed    = "store connection failed"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgServiceError      = "Request failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgPlayerCreated     = "Player created"
	LogMsgSpinCompleted     = "Spin completed"
	LogMsgRouletteCompleted = "Roulette spin completed"
	LogMsgPurchaseCompleted = "Store purchase completed"
)

// Log field keys
const (
	LogFieldAction   = "action"
	LogFieldError    = "error"
	LogFieldStatus   = "status"
	LogFieldPlayerID = "player_id"
	LogFieldGame     = "game"
	LogFieldDraws    = "draws"
	LogFieldItemID   = "item_id"
)
