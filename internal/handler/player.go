package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/logger"
	"github.com/osse101/SpinVault_Go/internal/player"
)

// ProfileRequest replaces the display name and bio
type ProfileRequest struct {
	Name string `json:"name" validate:"required,max=32"`
	Bio  string `json:"bio" validate:"max=256"`
}

// EquipRequest puts an owned item into a profile slot
type EquipRequest struct {
	Slot   string `json:"slot" validate:"required,slot"`
	ItemID string `json:"item_id" validate:"required"`
}

// ItemLookup resolves catalog items by id.
type ItemLookup interface {
	Lookup(id domain.ItemID) (domain.ItemDescriptor, bool)
}

// HandleCreatePlayer registers a new player and returns the seeded ledger
// @Summary Create player
// @Tags players
// @Produce json
// @Success 201 {object} domain.LedgerSnapshot
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players [post]
func HandleCreatePlayer(players player.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, err := players.Create(r.Context())
		if err != nil {
			respondServiceError(w, r, "Create player", err)
			return
		}
		logger.FromContext(r.Context()).Info(LogMsgPlayerCreated, LogFieldPlayerID, l.PlayerID())
		respondJSON(w, http.StatusCreated, l.Snapshot())
	}
}

// HandleGetLedger returns the caller's ledger snapshot
// @Summary Get ledger
// @Tags players
// @Produce json
// @Param X-Player-ID header string true "Player id"
// @Success 200 {object} domain.LedgerSnapshot
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/ledger [get]
func HandleGetLedger(players player.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := requirePlayer(w, r, players, "Get ledger")
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, l.Snapshot())
	}
}

// HandleUpdateProfile sets the caller's name and bio
// @Summary Update profile
// @Tags players
// @Accept json
// @Produce json
// @Param X-Player-ID header string true "Player id"
// @Param request body ProfileRequest true "Profile"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/profile [post]
func HandleUpdateProfile(players player.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := requirePlayer(w, r, players, "Update profile")
		if !ok {
			return
		}
		var req ProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update profile"); err != nil {
			return
		}
		if err := l.UpdateProfile(r.Context(), req.Name, req.Bio); err != nil {
			respondServiceError(w, r, "Update profile", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProfileUpdated})
	}
}

// HandleEquip equips an owned avatar, banner or character
// @Summary Equip item
// @Tags players
// @Accept json
// @Produce json
// @Param X-Player-ID header string true "Player id"
// @Param request body EquipRequest true "Slot and item"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profile/equip [post]
func HandleEquip(players player.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := requirePlayer(w, r, players, "Equip item")
		if !ok {
			return
		}
		var req EquipRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Equip item"); err != nil {
			return
		}
		slot := domain.Slot(strings.ToLower(req.Slot))
		if err := l.Equip(r.Context(), slot, req.ItemID); err != nil {
			respondServiceError(w, r, "Equip item", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemEquipped})
	}
}

// HandleGetCatalogItem looks up one catalog item
// @Summary Get catalog item
// @Tags catalog
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} domain.ItemDescriptor
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/catalog/{id} [get]
func HandleGetCatalogItem(items ItemLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, ParamItemID)
		item, ok := items.Lookup(id)
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgItemNotFoundError)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}
