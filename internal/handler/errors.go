package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPlayerID       = "Missing " + HeaderPlayerID + " header"
	ErrMsgInvalidMissionID      = "Invalid mission ID"
	ErrMsgInvalidDraws          = "Invalid draws parameter"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgPlayerNotFoundError   = "Player not found"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgNotEnoughCurrency     = "Not enough currency"
	ErrMsgAlreadyOwnedError     = "You already own that item"
	ErrMsgNotOwnedError         = "You don't own that item"
	ErrMsgInvalidSlotError      = "Unknown equip slot"
	ErrMsgSlotMismatchError     = "That item cannot be equipped in this slot"
	ErrMsgNotInStoreError       = "That item is not in today's store"
	ErrMsgSpinInProgressError   = "A spin is already in progress"
	ErrMsgGameNotFoundError     = "Game not found"
	ErrMsgOfferNotFoundError    = "That game has no offer for this many draws"
	ErrMsgInvalidBetError       = "Invalid bet"
	ErrMsgMissionNotFoundError  = "Mission not found"
	ErrMsgMissionIncompleteErr  = "Mission is not complete yet"
	ErrMsgMissionClaimedError   = "Mission reward already claimed"
	ErrMsgAlreadyClaimedError   = "Daily reward already claimed today. Come back tomorrow!"
	ErrMsgEmptyPoolError        = "This game has nothing to win right now"
	ErrMsgInvalidRequestError   = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError      = "Server is temporarily unavailable. Please try again later."
)

// Success messages
const (
	MsgProfileUpdated = "Profile updated"
	MsgItemEquipped   = "Item equipped"
)
