package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/SpinVault_Go/docs"
	"github.com/osse101/SpinVault_Go/internal/handler"
	"github.com/osse101/SpinVault_Go/internal/logger"
	"github.com/osse101/SpinVault_Go/internal/metrics"
	"github.com/osse101/SpinVault_Go/internal/mission"
	"github.com/osse101/SpinVault_Go/internal/player"
	"github.com/osse101/SpinVault_Go/internal/roulette"
	"github.com/osse101/SpinVault_Go/internal/session"
)

// Deps is everything the router dispatches to.
type Deps struct {
	Store    handler.Pinger
	Players  player.Registry
	Items    handler.ItemLookup
	Games    handler.GameCatalog
	Sessions session.Service
	Roulette roulette.Service
	Offers   handler.OfferSource
	Buyer    handler.Buyer
	Missions mission.Service
	Logins   handler.LoginRewards

	// Now defaults to time.Now
	Now            func() time.Time
	TrustedProxies []string
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(port int, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the middleware stack and every route.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(NewRateLimiter(RateLimitRequests, RateLimitWindow), deps.TrustedProxies))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Store))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	games := handler.NewGameHandler(deps.Players, deps.Games, deps.Sessions, deps.Roulette)
	store := handler.NewStoreHandler(deps.Players, deps.Offers, deps.Buyer, deps.Now)
	rewards := handler.NewRewardHandler(deps.Players, deps.Missions, deps.Logins, deps.Now)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/players", handler.HandleCreatePlayer(deps.Players))
		r.Get("/ledger", handler.HandleGetLedger(deps.Players))
		r.Get("/catalog/{id}", handler.HandleGetCatalogItem(deps.Items))

		r.Route("/profile", func(r chi.Router) {
			r.Post("/", handler.HandleUpdateProfile(deps.Players))
			r.Post("/equip", handler.HandleEquip(deps.Players))
		})

		r.Route("/games", func(r chi.Router) {
			r.Get("/", games.HandleListGames)
			r.Get("/{game}/preview", games.HandlePreview)
			r.Post("/{game}/spin", games.HandleSpin)
		})
		r.Post("/roulette/spin", games.HandleRouletteSpin)

		r.Route("/store", func(r chi.Router) {
			r.Get("/daily", store.HandleGetDailyStore)
			r.Post("/buy", store.HandleBuy)
		})

		r.Get("/missions", rewards.HandleListMissions)
		r.Post("/missions/{id}/claim", rewards.HandleClaimMission)

		r.Route("/daily-login", func(r chi.Router) {
			r.Get("/", rewards.HandleGetDailyLogin)
			r.Post("/claim", rewards.HandleClaimDailyLogin)
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// loggingMiddleware tags each request with an id, echoed in the response,
// and logs its start and completion.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
