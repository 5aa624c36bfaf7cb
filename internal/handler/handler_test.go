package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinVault_Go/internal/audio"
	"github.com/osse101/SpinVault_Go/internal/catalog"
	"github.com/osse101/SpinVault_Go/internal/concurrency"
	"github.com/osse101/SpinVault_Go/internal/daily"
	"github.com/osse101/SpinVault_Go/internal/dailylogin"
	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/event"
	"github.com/osse101/SpinVault_Go/internal/ledger"
	"github.com/osse101/SpinVault_Go/internal/lottery"
	"github.com/osse101/SpinVault_Go/internal/mission"
	"github.com/osse101/SpinVault_Go/internal/player"
	"github.com/osse101/SpinVault_Go/internal/roulette"
	"github.com/osse101/SpinVault_Go/internal/royale"
	"github.com/osse101/SpinVault_Go/internal/session"
	"github.com/osse101/SpinVault_Go/internal/storage"
)

const testGames = `
games:
  - key: coin_royale
    name: Coin Royale
    currency: diamonds
    offers:
      - { draws: 1, cost: 60 }
    xp: 10
    fillers:
      - { id: gold_10, name: 10 Gold, kind: currency, currency: gold, amount: 10 }
`

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

var (
	testDefaults = ledger.Defaults{Gold: 10000, Diamonds: 100, Name: "Survivor"}
	// store prices reach 5500 gold or 550 diamonds
	richDefaults = ledger.Defaults{Gold: 10000, Diamonds: 10000, Name: "Survivor"}
)

type testEnv struct {
	router  http.Handler
	players player.Registry
	store   *storage.MemoryStore
}

func newTestEnv(t *testing.T, defaults ledger.Defaults) *testEnv {
	t.Helper()
	ctx := context.Background()

	store := storage.NewMemoryStore()
	players := player.NewRegistry(store, defaults, 16, time.Minute)

	items := catalog.New(
		domain.ItemDescriptor{ID: "101", Name: "Dragon AK", Category: domain.CategoryWeaponSkin, Rarity: domain.RarityLegendary, ImageRef: "/ak.png"},
		domain.ItemDescriptor{ID: "102", Name: "Blue Jacket", Category: domain.CategoryClothing, Rarity: domain.RarityRare, ImageRef: "/jacket.png"},
		domain.ItemDescriptor{ID: "103", Name: "Flag", Category: domain.CategoryBanner, Rarity: domain.RarityCommon, ImageRef: "/flag.png"},
	)

	defs, err := royale.Parse([]byte(testGames))
	require.NoError(t, err)
	games, err := royale.NewRegistry(ctx, defs, items)
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	guard := concurrency.NewGuard()
	locks := concurrency.NewLockManager()

	sessions := session.NewService(lottery.NewEngine(func() float64 { return 0 }), guard, audio.Nop{}, bus)
	wheel := roulette.NewService(guard, audio.Nop{}, bus, func() float64 { return 0.5 }, 0)
	picker := daily.NewPicker(items, 20, time.UTC)
	storefront := daily.NewStorefront(picker, locks, audio.Nop{}, bus)
	missions := mission.NewService(store, locks, bus)
	missions.Register(bus)
	logins := dailylogin.NewService(store, locks, bus, time.UTC)

	now := func() time.Time { return testNow }
	gh := NewGameHandler(players, games, sessions, wheel)
	sh := NewStoreHandler(players, picker, storefront, now)
	rh := NewRewardHandler(players, missions, logins, now)

	r := chi.NewRouter()
	r.Get("/healthz", HandleHealthz())
	r.Get("/readyz", HandleReadyz(store))
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/players", HandleCreatePlayer(players))
		r.Get("/ledger", HandleGetLedger(players))
		r.Post("/profile", HandleUpdateProfile(players))
		r.Post("/profile/equip", HandleEquip(players))
		r.Get("/catalog/{id}", HandleGetCatalogItem(items))
		r.Get("/games", gh.HandleListGames)
		r.Get("/games/{game}/preview", gh.HandlePreview)
		r.Post("/games/{game}/spin", gh.HandleSpin)
		r.Post("/roulette/spin", gh.HandleRouletteSpin)
		r.Get("/store/daily", sh.HandleGetDailyStore)
		r.Post("/store/buy", sh.HandleBuy)
		r.Get("/missions", rh.HandleListMissions)
		r.Post("/missions/{id}/claim", rh.HandleClaimMission)
		r.Get("/daily-login", rh.HandleGetDailyLogin)
		r.Post("/daily-login/claim", rh.HandleClaimDailyLogin)
	})

	return &testEnv{router: r, players: players, store: store}
}

func (e *testEnv) do(t *testing.T, method, path, playerID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if playerID != "" {
		req.Header.Set(HeaderPlayerID, playerID)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) newPlayer(t *testing.T) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/v1/players", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var snap domain.LedgerSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	return snap.PlayerID
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestCreatePlayerAndGetLedger(t *testing.T) {
	env := newTestEnv(t, testDefaults)
	id := env.newPlayer(t)

	rec := env.do(t, http.MethodGet, "/api/v1/ledger", id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	snap := decode[domain.LedgerSnapshot](t, rec)
	assert.Equal(t, id, snap.PlayerID)
	assert.Equal(t, int64(10000), snap.Gold)
	assert.Equal(t, int64(100), snap.Diamonds)
	assert.Equal(t, "Survivor", snap.Profile.Name)
}

func TestPlayerHeader(t *testing.T) {
	env := newTestEnv(t, testDefaults)

	tests := []struct {
		name     string
		playerID string
		status   int
		message  string
	}{
		{"missing", "", http.StatusUnauthorized, ErrMsgMissingPlayerID},
		{"malformed", "abc", http.StatusBadRequest, ErrMsgInvalidRequestError},
		{"unknown", uuid.New().String(), http.StatusNotFound, ErrMsgPlayerNotFoundError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, "/api/v1/ledger", tt.playerID, nil)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, decode[ErrorResponse](t, rec).Error)
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t, testDefaults)
	id := env.newPlayer(t)

	rec := env.do(t, http.MethodPost, "/api/v1/profile", id, ProfileRequest{Name: ""})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	verr := decode[ValidationErrorResponse](t, rec)
	assert.Equal(t, "This field is required", verr.Fields["name"])

	rec = env.do(t, http.MethodPost, "/api/v1/profile", id, ProfileRequest{Name: "Booyah", Bio: "gg"})
	require.Equal(t, http.StatusOK, rec.Code)

	snap := decode[domain.LedgerSnapshot](t, env.do(t, http.MethodGet, "/api/v1/ledger", id, nil))
	assert.Equal(t, domain.Profile{Name: "Booyah", Bio: "gg"}, snap.Profile)
}

func TestEquip(t *testing.T) {
	env := newTestEnv(t, richDefaults)
	id := env.newPlayer(t)

	rec := env.do(t, http.MethodPost, "/api/v1/profile/equip", id, EquipRequest{Slot: "hat", ItemID: "103"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[ValidationErrorResponse](t, rec).Fields, "slot")

	rec = env.do(t, http.MethodPost, "/api/v1/profile/equip", id, EquipRequest{Slot: "banner", ItemID: "103"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrMsgNotOwnedError, decode[ErrorResponse](t, rec).Error)

	rec = env.do(t, http.MethodPost, "/api/v1/store/buy", id, BuyRequest{ItemID: "103"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/api/v1/profile/equip", id, EquipRequest{Slot: "Banner", ItemID: "103"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	snap := decode[domain.LedgerSnapshot](t, env.do(t, http.MethodGet, "/api/v1/ledger", id, nil))
	assert.Equal(t, "103", snap.Equipped[domain.SlotBanner])
}

func TestGetCatalogItem(t *testing.T) {
	env := newTestEnv(t, testDefaults)

	rec := env.do(t, http.MethodGet, "/api/v1/catalog/101", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Dragon AK", decode[domain.ItemDescriptor](t, rec).Name)

	rec = env.do(t, http.MethodGet, "/api/v1/catalog/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGamesAndPreview(t *testing.T) {
	env := newTestEnv(t, testDefaults)

	rec := env.do(t, http.MethodGet, "/api/v1/games", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	games := decode[[]royale.Game](t, rec)
	require.Len(t, games, 1)
	assert.Equal(t, "coin_royale", games[0].Key)

	rec = env.do(t, http.MethodGet, "/api/v1/games/coin_royale/preview?limit=1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.PoolEntry](t, rec), 1)

	rec = env.do(t, http.MethodGet, "/api/v1/games/coin_royale/preview?limit=zero", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/games/nope/preview", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSpin(t *testing.T) {
	env := newTestEnv(t, testDefaults)
	id := env.newPlayer(t)

	rec := env.do(t, http.MethodPost, "/api/v1/games/coin_royale/spin", id, SpinRequest{Draws: 1})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	result := decode[domain.SpinResult](t, rec)
	assert.Equal(t, 1, result.DrawCount)
	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, int64(40), result.Balance.Diamonds)
	assert.Equal(t, int64(10010), result.Balance.Gold)

	// 40 diamonds left, the single draw costs 60
	rec = env.do(t, http.MethodPost, "/api/v1/games/coin_royale/spin", id, SpinRequest{Draws: 1})
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, ErrMsgNotEnoughCurrency, decode[ErrorResponse](t, rec).Error)

	rec = env.do(t, http.MethodPost, "/api/v1/games/coin_royale/spin", id, SpinRequest{Draws: 10})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrMsgOfferNotFoundError, decode[ErrorResponse](t, rec).Error)

	rec = env.do(t, http.MethodPost, "/api/v1/games/coin_royale/spin", id, SpinRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/games/nope/spin", id, SpinRequest{Draws: 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouletteSpin(t *testing.T) {
	env := newTestEnv(t, testDefaults)
	id := env.newPlayer(t)

	rec := env.do(t, http.MethodPost, "/api/v1/roulette/spin", id, RouletteRequest{Bet: 100, Color: "purple"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Must be red, black or green", decode[ValidationErrorResponse](t, rec).Fields["color"])

	rec = env.do(t, http.MethodPost, "/api/v1/roulette/spin", id, RouletteRequest{Bet: 100, Color: "RED"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	result := decode[domain.RouletteResult](t, rec)
	assert.True(t, result.Won)
	assert.Equal(t, domain.ColorRed, result.WinningColor)
	assert.Equal(t, int64(200), result.Payout)
	assert.Equal(t, int64(10100), result.Gold)

	rec = env.do(t, http.MethodPost, "/api/v1/roulette/spin", id, RouletteRequest{Bet: 1000000, Color: "red"})
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}

func TestDailyStore(t *testing.T) {
	env := newTestEnv(t, richDefaults)
	id := env.newPlayer(t)

	rec := env.do(t, http.MethodGet, "/api/v1/store/daily", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	store := decode[DailyStoreResponse](t, rec)
	assert.Len(t, store.Offers, 3)
	assert.Equal(t, int64(12*60*60), store.ResetsInSeconds)

	rec = env.do(t, http.MethodPost, "/api/v1/store/buy", id, BuyRequest{ItemID: "101"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	purchase := decode[domain.Purchase](t, rec)
	assert.Equal(t, "101", purchase.Offer.Item.ID)

	rec = env.do(t, http.MethodPost, "/api/v1/store/buy", id, BuyRequest{ItemID: "101"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, ErrMsgAlreadyOwnedError, decode[ErrorResponse](t, rec).Error)

	rec = env.do(t, http.MethodPost, "/api/v1/store/buy", id, BuyRequest{ItemID: "999"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrMsgNotInStoreError, decode[ErrorResponse](t, rec).Error)
}

func TestMissions(t *testing.T) {
	env := newTestEnv(t, testDefaults)
	id := env.newPlayer(t)

	rec := env.do(t, http.MethodGet, "/api/v1/missions", id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.MissionStatus](t, rec), len(mission.Missions))

	rec = env.do(t, http.MethodPost, "/api/v1/missions/1/claim", id, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, ErrMsgMissionIncompleteErr, decode[ErrorResponse](t, rec).Error)

	rec = env.do(t, http.MethodPost, "/api/v1/missions/abc/claim", id, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/missions/42/claim", id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	for i := 0; i < 5; i++ {
		rec = env.do(t, http.MethodPost, "/api/v1/roulette/spin", id, RouletteRequest{Bet: 10, Color: "red"})
		require.Equal(t, http.StatusOK, rec.Code, fmt.Sprintf("spin %d: %s", i, rec.Body.String()))
	}

	rec = env.do(t, http.MethodPost, "/api/v1/missions/1/claim", id, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode[domain.MissionStatus](t, rec).Claimed)

	rec = env.do(t, http.MethodPost, "/api/v1/missions/1/claim", id, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, ErrMsgMissionClaimedError, decode[ErrorResponse](t, rec).Error)
}

func TestDailyLogin(t *testing.T) {
	env := newTestEnv(t, testDefaults)
	id := env.newPlayer(t)

	rec := env.do(t, http.MethodGet, "/api/v1/daily-login", id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decode[domain.LoginStatus](t, rec)
	assert.True(t, status.CanClaim)
	assert.Equal(t, 1, status.NextDay)

	rec = env.do(t, http.MethodPost, "/api/v1/daily-login/claim", id, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, decode[domain.LoginStatus](t, rec).Streak)

	rec = env.do(t, http.MethodPost, "/api/v1/daily-login/claim", id, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	snap := decode[domain.LedgerSnapshot](t, env.do(t, http.MethodGet, "/api/v1/ledger", id, nil))
	assert.Equal(t, int64(10000)+dailylogin.Rewards[0].Amount, snap.Gold)
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }

func TestHealth(t *testing.T) {
	env := newTestEnv(t, testDefaults)

	rec := env.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	HandleReadyz(failingPinger{})(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, HealthStatusUnavailable, decode[HealthResponse](t, rec).Status)
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{fmt.Errorf("wrap: %w", domain.ErrSpinInProgress), http.StatusConflict, ErrMsgSpinInProgressError},
		{&domain.InsufficientFundsError{Currency: domain.CurrencyGold, Required: 5}, http.StatusPaymentRequired, ErrMsgNotEnoughCurrency},
		{domain.ErrInvalidBet, http.StatusBadRequest, ErrMsgInvalidBetError},
		{domain.ErrAlreadyClaimedToday, http.StatusConflict, ErrMsgAlreadyClaimedError},
		{domain.ErrEmptyPool, http.StatusServiceUnavailable, ErrMsgEmptyPoolError},
		{fmt.Errorf("%w: disk full", domain.ErrStorage), http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{errors.New("boom"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}
	for _, tt := range tests {
		status, msg := mapServiceErrorToUserMessage(tt.err)
		assert.Equal(t, tt.status, status, "%v", tt.err)
		assert.Equal(t, tt.msg, msg, "%v", tt.err)
	}
}
