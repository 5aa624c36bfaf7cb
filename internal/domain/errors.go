package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "amount must not be negative"

	// Catalog and inventory errors
	ErrMsgItemNotFound  = "item not found"
	ErrMsgAlreadyOwned  = "already owned"
	ErrMsgNotOwned      = "item is not owned"
	ErrMsgInvalidSlot   = "invalid equip slot"
	ErrMsgSlotMismatch  = "item cannot be equipped in this slot"
	ErrMsgNotInStoreNow = "item is not offered today"

	// Lottery errors
	ErrMsgEmptyPool        = "prize pool is empty"
	ErrMsgInvalidTierTable = "invalid tier table"

	// Session errors
	ErrMsgSpinInProgress = "a spin is already in progress"
	ErrMsgGameNotFound   = "game not found"
	ErrMsgOfferNotFound  = "no offer for that draw count"

	// Roulette errors
	ErrMsgInvalidBet = "invalid bet"

	// Mission and login errors
	ErrMsgMissionNotFound   = "mission not found"
	ErrMsgMissionIncomplete = "mission is not complete"
	ErrMsgMissionClaimed    = "mission reward already claimed"
	ErrMsgAlreadyClaimed    = "daily reward already claimed today"

	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Configuration and state errors
	ErrMsgInvalidConfig   = "invalid configuration"
	ErrMsgMalformedState  = "malformed persisted state"
	ErrMsgStorageFailure  = "storage error"
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgInvalidCurrency = "unknown currency"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)

	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrAlreadyOwned    = errors.New(ErrMsgAlreadyOwned)
	ErrNotOwned        = errors.New(ErrMsgNotOwned)
	ErrInvalidSlot     = errors.New(ErrMsgInvalidSlot)
	ErrSlotMismatch    = errors.New(ErrMsgSlotMismatch)
	ErrNotInStoreToday = errors.New(ErrMsgNotInStoreNow)

	ErrEmptyPool        = errors.New(ErrMsgEmptyPool)
	ErrInvalidTierTable = errors.New(ErrMsgInvalidTierTable)

	ErrSpinInProgress = errors.New(ErrMsgSpinInProgress)
	ErrGameNotFound   = errors.New(ErrMsgGameNotFound)
	ErrOfferNotFound  = errors.New(ErrMsgOfferNotFound)

	ErrInvalidBet = errors.New(ErrMsgInvalidBet)

	ErrMissionNotFound     = errors.New(ErrMsgMissionNotFound)
	ErrMissionIncomplete   = errors.New(ErrMsgMissionIncomplete)
	ErrMissionClaimed      = errors.New(ErrMsgMissionClaimed)
	ErrAlreadyClaimedToday = errors.New(ErrMsgAlreadyClaimed)

	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	ErrInvalidConfig   = errors.New(ErrMsgInvalidConfig)
	ErrMalformedState  = errors.New(ErrMsgMalformedState)
	ErrStorage         = errors.New(ErrMsgStorageFailure)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
	ErrInvalidCurrency = errors.New(ErrMsgInvalidCurrency)
)

// InsufficientFundsError reports how much was required versus available.
// It matches ErrInsufficientFunds under errors.Is.
type InsufficientFundsError struct {
	Currency  Currency
	Required  int64
	Available int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: need %d %s, have %d", ErrMsgInsufficientFunds, e.Required, e.Currency, e.Available)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
