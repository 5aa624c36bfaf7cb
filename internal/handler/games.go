package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/logger"
	"github.com/osse101/SpinVault_Go/internal/player"
	"github.com/osse101/SpinVault_Go/internal/roulette"
	"github.com/osse101/SpinVault_Go/internal/royale"
	"github.com/osse101/SpinVault_Go/internal/session"
)

// SpinRequest buys one of a game's draw offers
type SpinRequest struct {
	Draws int `json:"draws" validate:"required,min=1"`
}

// RouletteRequest bets gold on a wheel color
type RouletteRequest struct {
	Bet   int64  `json:"bet" validate:"required,gt=0"`
	Color string `json:"color" validate:"required,wheelcolor"`
}

// GameCatalog exposes the configured games.
type GameCatalog interface {
	Games() []royale.Game
	Params(key string, draws int) (session.Params, error)
	Preview(key string, n int) ([]domain.PoolEntry, error)
}

// GameHandler serves the royale games and the roulette wheel.
type GameHandler struct {
	players  player.Registry
	games    GameCatalog
	sessions session.Service
	wheel    roulette.Service
}

// NewGameHandler creates a GameHandler.
func NewGameHandler(players player.Registry, games GameCatalog, sessions session.Service, wheel roulette.Service) *GameHandler {
	return &GameHandler{players: players, games: games, sessions: sessions, wheel: wheel}
}

// HandleListGames lists every game with its offers
// @Summary List games
// @Tags games
// @Produce json
// @Success 200 {array} royale.Game
// @Router /api/v1/games [get]
func (h *GameHandler) HandleListGames(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.games.Games())
}

// HandlePreview returns the first entries of a game's pool, grand prizes first
// @Summary Preview game pool
// @Tags games
// @Produce json
// @Param game path string true "Game key"
// @Param limit query int false "Entries to return"
// @Success 200 {array} domain.PoolEntry
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/games/{game}/preview [get]
func (h *GameHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get(QueryLimit); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}
		limit = n
	}

	entries, err := h.games.Preview(chi.URLParam(r, ParamGame), limit)
	if err != nil {
		respondServiceError(w, r, "Preview game", err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// HandleSpin runs a paid spin. The response is written after the reveal.
// @Summary Spin a game
// @Tags games
// @Accept json
// @Produce json
// @Param X-Player-ID header string true "Player id"
// @Param game path string true "Game key"
// @Param request body SpinRequest true "Draw offer"
// @Success 200 {object} domain.SpinResult
// @Failure 402 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/games/{game}/spin [post]
func (h *GameHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	l, ok := requirePlayer(w, r, h.players, "Spin")
	if !ok {
		return
	}
	var req SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
		return
	}

	game := chi.URLParam(r, ParamGame)
	params, err := h.games.Params(game, req.Draws)
	if err != nil {
		respondServiceError(w, r, "Spin", err)
		return
	}

	result, err := h.sessions.Spin(r.Context(), l, params)
	if err != nil {
		respondServiceError(w, r, "Spin", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgSpinCompleted,
		LogFieldPlayerID, l.PlayerID(),
		LogFieldGame, game,
		LogFieldDraws, req.Draws)
	respondJSON(w, http.StatusOK, result)
}

// HandleRouletteSpin bets gold on a wheel color
// @Summary Spin the roulette wheel
// @Tags games
// @Accept json
// @Produce json
// @Param X-Player-ID header string true "Player id"
// @Param request body RouletteRequest true "Bet"
// @Success 200 {object} domain.RouletteResult
// @Failure 402 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/roulette/spin [post]
func (h *GameHandler) HandleRouletteSpin(w http.ResponseWriter, r *http.Request) {
	l, ok := requirePlayer(w, r, h.players, "Roulette spin")
	if !ok {
		return
	}
	var req RouletteRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Roulette spin"); err != nil {
		return
	}

	result, err := h.wheel.Spin(r.Context(), l, req.Bet, domain.RouletteColor(strings.ToLower(req.Color)))
	if err != nil {
		respondServiceError(w, r, "Roulette spin", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgRouletteCompleted, LogFieldPlayerID, l.PlayerID())
	respondJSON(w, http.StatusOK, result)
}
