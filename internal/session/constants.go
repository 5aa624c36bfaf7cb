package session

// Log messages
const (
	LogMsgSpinStarted       = "Spin started"
	LogMsgSpinSettled       = "Spin settled"
	LogMsgRevealInterrupted = "Reveal wait interrupted, settling immediately"
	LogMsgDuplicateWin      = "Duplicate win converted to compensation"
	LogMsgPublishFailed     = "Failed to publish spin event"
)

// Log field keys
const (
	LogFieldPlayerID = "player_id"
	LogFieldGame     = "game"
	LogFieldDraws    = "draws"
	LogFieldCost     = "cost"
	LogFieldCurrency = "currency"
	LogFieldItemID   = "item_id"
	LogFieldAmount   = "amount"
	LogFieldHighest  = "highest_rarity"
	LogFieldItemsNew = "items_added"
	LogFieldLevelUp  = "level_up"
)

// Duplicate compensation amounts in gold, per rarity of the duplicated item
const (
	CompensationCommon    = 50
	CompensationRare      = 100
	CompensationEpic      = 250
	CompensationLegendary = 500
	CompensationMythic    = 1000
)
