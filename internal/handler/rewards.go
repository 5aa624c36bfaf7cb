package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SpinVault_Go/internal/dailylogin"
	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/mission"
	"github.com/osse101/SpinVault_Go/internal/player"
)

// LoginRewards tracks daily login streaks.
type LoginRewards interface {
	Status(ctx context.Context, playerID string, now time.Time) (*domain.LoginStatus, error)
	Claim(ctx context.Context, l dailylogin.Ledger, now time.Time) (*domain.LoginStatus, error)
}

// RewardHandler serves missions and daily login rewards.
type RewardHandler struct {
	players  player.Registry
	missions mission.Service
	logins   LoginRewards
	now      func() time.Time
}

// NewRewardHandler creates a RewardHandler. A nil now uses time.Now.
func NewRewardHandler(players player.Registry, missions mission.Service, logins LoginRewards, now func() time.Time) *RewardHandler {
	if now == nil {
		now = time.Now
	}
	return &RewardHandler{players: players, missions: missions, logins: logins, now: now}
}

// HandleListMissions returns the caller's mission board
// @Summary List missions
// @Tags rewards
// @Produce json
// @Param X-Player-ID header string true "Player id"
// @Success 200 {array} domain.MissionStatus
// @Router /api/v1/missions [get]
func (h *RewardHandler) HandleListMissions(w http.ResponseWriter, r *http.Request) {
	l, ok := requirePlayer(w, r, h.players, "List missions")
	if !ok {
		return
	}
	statuses, err := h.missions.List(r.Context(), l.PlayerID())
	if err != nil {
		respondServiceError(w, r, "List missions", err)
		return
	}
	respondJSON(w, http.StatusOK, statuses)
}

// HandleClaimMission pays out a completed mission
// @Summary Claim mission
// @Tags rewards
// @Produce json
// @Param X-Player-ID header string true "Player id"
// @Param id path int true "Mission id"
// @Success 200 {object} domain.MissionStatus
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/missions/{id}/claim [post]
func (h *RewardHandler) HandleClaimMission(w http.ResponseWriter, r *http.Request) {
	l, ok := requirePlayer(w, r, h.players, "Claim mission")
	if !ok {
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, ParamMissionID))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidMissionID)
		return
	}
	status, err := h.missions.Claim(r.Context(), l, id)
	if err != nil {
		respondServiceError(w, r, "Claim mission", err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}

// HandleGetDailyLogin returns the caller's login streak
// @Summary Daily login status
// @Tags rewards
// @Produce json
// @Param X-Player-ID header string true "Player id"
// @Success 200 {object} domain.LoginStatus
// @Router /api/v1/daily-login [get]
func (h *RewardHandler) HandleGetDailyLogin(w http.ResponseWriter, r *http.Request) {
	l, ok := requirePlayer(w, r, h.players, "Daily login status")
	if !ok {
		return
	}
	status, err := h.logins.Status(r.Context(), l.PlayerID(), h.now())
	if err != nil {
		respondServiceError(w, r, "Daily login status", err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}

// HandleClaimDailyLogin claims today's login reward
// @Summary Claim daily login
// @Tags rewards
// @Produce json
// @Param X-Player-ID header string true "Player id"
// @Success 200 {object} domain.LoginStatus
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/daily-login/claim [post]
func (h *RewardHandler) HandleClaimDailyLogin(w http.ResponseWriter, r *http.Request) {
	l, ok := requirePlayer(w, r, h.players, "Daily login claim")
	if !ok {
		return
	}
	status, err := h.logins.Claim(r.Context(), l, h.now())
	if err != nil {
		respondServiceError(w, r, "Daily login claim", err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}
