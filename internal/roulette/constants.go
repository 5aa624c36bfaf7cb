package roulette

// Wheel geometry in whole degrees. The wheel is split into three arcs:
// green [0,10), red [10,185), black [185,360).
const (
	WheelDegrees = 360
	GreenUpper   = 10
	RedUpper     = 185
)

// Payout multipliers applied to the bet on a win
const (
	MultiplierGreen = 14
	MultiplierColor = 2
)

// Log messages
const (
	LogMsgRouletteStarted = "Roulette spin started"
	LogMsgRouletteSettled = "Roulette spin settled"
	LogMsgPublishFailed   = "Failed to publish roulette event"
)

// Log field keys
const (
	LogFieldPlayerID = "player_id"
	LogFieldBet      = "bet"
	LogFieldColor    = "color"
	LogFieldAngle    = "angle"
	LogFieldWinner   = "winning_color"
	LogFieldPayout   = "payout"
)
