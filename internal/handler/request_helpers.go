package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/osse101/SpinVault_Go/internal/ledger"
	"github.com/osse101/SpinVault_Go/internal/logger"
	"github.com/osse101/SpinVault_Go/internal/player"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written and the
// handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Debug(LogMsgDecodeFailed, LogFieldAction, actionName, LogFieldError, err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	log.Debug(LogMsgRequestDecoded, LogFieldAction, actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}

// requirePlayer resolves the X-Player-ID header into a ledger. When ok is
// false the response has already been written.
func requirePlayer(w http.ResponseWriter, r *http.Request, players player.Registry, action string) (*ledger.Ledger, bool) {
	id := strings.TrimSpace(r.Header.Get(HeaderPlayerID))
	if id == "" {
		respondError(w, http.StatusUnauthorized, ErrMsgMissingPlayerID)
		return nil, false
	}
	l, err := players.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, action, err)
		return nil, false
	}
	return l, true
}
