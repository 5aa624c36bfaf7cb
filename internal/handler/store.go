package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/SpinVault_Go/internal/daily"
	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/logger"
	"github.com/osse101/SpinVault_Go/internal/player"
)

// BuyRequest buys one of today's store offers
type BuyRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

// DailyStoreResponse is today's store with the time until it rotates
type DailyStoreResponse struct {
	Offers          []domain.StoreOffer `json:"offers"`
	ResetsInSeconds int64               `json:"resets_in_seconds"`
}

// OfferSource lists the day's store offers.
type OfferSource interface {
	Offers(ctx context.Context, now time.Time) []domain.StoreOffer
	ResetsIn(now time.Time) time.Duration
}

// Buyer completes store purchases.
type Buyer interface {
	Buy(ctx context.Context, l daily.Ledger, now time.Time, itemID domain.ItemID) (*domain.Purchase, error)
}

// StoreHandler serves the daily store.
type StoreHandler struct {
	players player.Registry
	offers  OfferSource
	buyer   Buyer
	now     func() time.Time
}

// NewStoreHandler creates a StoreHandler. A nil now uses time.Now.
func NewStoreHandler(players player.Registry, offers OfferSource, buyer Buyer, now func() time.Time) *StoreHandler {
	if now == nil {
		now = time.Now
	}
	return &StoreHandler{players: players, offers: offers, buyer: buyer, now: now}
}

// HandleGetDailyStore returns today's offers
// @Summary Daily store
// @Tags store
// @Produce json
// @Success 200 {object} DailyStoreResponse
// @Router /api/v1/store/daily [get]
func (h *StoreHandler) HandleGetDailyStore(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	respondJSON(w, http.StatusOK, DailyStoreResponse{
		Offers:          h.offers.Offers(r.Context(), now),
		ResetsInSeconds: int64(h.offers.ResetsIn(now).Seconds()),
	})
}

// HandleBuy buys one of today's offers for the caller
// @Summary Buy store offer
// @Tags store
// @Accept json
// @Produce json
// @Param X-Player-ID header string true "Player id"
// @Param request body BuyRequest true "Offer"
// @Success 200 {object} domain.Purchase
// @Failure 402 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/store/buy [post]
func (h *StoreHandler) HandleBuy(w http.ResponseWriter, r *http.Request) {
	l, ok := requirePlayer(w, r, h.players, "Buy item")
	if !ok {
		return
	}
	var req BuyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
		return
	}

	purchase, err := h.buyer.Buy(r.Context(), l, h.now(), req.ItemID)
	if err != nil {
		respondServiceError(w, r, "Buy item", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgPurchaseCompleted,
		LogFieldPlayerID, l.PlayerID(),
		LogFieldItemID, req.ItemID)
	respondJSON(w, http.StatusOK, purchase)
}
