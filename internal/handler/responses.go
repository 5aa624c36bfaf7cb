package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// bufferPool recycles encode buffers across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, LogFieldError, err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, LogFieldError, err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and maps it onto a status and user message.
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, LogFieldAction, action, LogFieldError, err)
	} else {
		log.Debug(LogMsgServiceError, LogFieldAction, action, LogFieldStatus, status, LogFieldError, err)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrGameNotFound):
		return http.StatusNotFound, ErrMsgGameNotFoundError
	case errors.Is(err, domain.ErrMissionNotFound):
		return http.StatusNotFound, ErrMsgMissionNotFoundError
	case errors.Is(err, domain.ErrOfferNotFound):
		return http.StatusBadRequest, ErrMsgOfferNotFoundError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired, ErrMsgNotEnoughCurrency
	case errors.Is(err, domain.ErrAlreadyOwned):
		return http.StatusConflict, ErrMsgAlreadyOwnedError
	case errors.Is(err, domain.ErrNotOwned):
		return http.StatusBadRequest, ErrMsgNotOwnedError
	case errors.Is(err, domain.ErrInvalidSlot):
		return http.StatusBadRequest, ErrMsgInvalidSlotError
	case errors.Is(err, domain.ErrSlotMismatch):
		return http.StatusBadRequest, ErrMsgSlotMismatchError
	case errors.Is(err, domain.ErrNotInStoreToday):
		return http.StatusBadRequest, ErrMsgNotInStoreError
	case errors.Is(err, domain.ErrSpinInProgress):
		return http.StatusConflict, ErrMsgSpinInProgressError
	case errors.Is(err, domain.ErrInvalidBet):
		return http.StatusBadRequest, ErrMsgInvalidBetError
	case errors.Is(err, domain.ErrMissionIncomplete):
		return http.StatusConflict, ErrMsgMissionIncompleteErr
	case errors.Is(err, domain.ErrMissionClaimed):
		return http.StatusConflict, ErrMsgMissionClaimedError
	case errors.Is(err, domain.ErrAlreadyClaimedToday):
		return http.StatusConflict, ErrMsgAlreadyClaimedError
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrEmptyPool):
		return http.StatusServiceUnavailable, ErrMsgEmptyPoolError
	case errors.Is(err, domain.ErrStorage):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
