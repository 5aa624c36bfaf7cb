package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinVault_Go/internal/logger"
	"github.com/osse101/SpinVault_Go/internal/storage"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	h := SecurityHeadersMiddleware()(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	expected := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, want := range expected {
		assert.Equal(t, want, rec.Header().Get(header), header)
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	h := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		_, err := r.Body.Read(buf)
		for err == nil {
			_, err = r.Body.Read(buf)
		}
		if strings.Contains(err.Error(), "too large") {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small")))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewRateLimiter(2, time.Minute)
	l.now = func() time.Time { return now }
	l.lastReset = now

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"), "clients are counted separately")

	now = now.Add(2 * time.Minute)
	assert.True(t, l.Allow("a"), "window resets")
}

func TestRateLimitMiddleware(t *testing.T) {
	h := RateLimitMiddleware(NewRateLimiter(1, time.Hour), nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	req.Header.Set(HeaderForwardedFor, "1.1.1.1, 2.2.2.2")

	assert.Equal(t, "10.0.0.1", extractIP(req, nil), "untrusted proxies are ignored")
	assert.Equal(t, "2.2.2.2", extractIP(req, []string{"10.0.0.1"}))
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	var seen string
	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logger.GetRequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ledger", nil))
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))
}

func TestNewRouter_PublicRoutes(t *testing.T) {
	store := storage.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	router := NewRouter(Deps{Store: store})

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewRouter_SwaggerDoc(t *testing.T) {
	router := NewRouter(Deps{Store: storage.NewMemoryStore()})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"title": "SpinVault API"`)
	for _, route := range []string{"/api/v1/games/{game}/spin", "/api/v1/roulette/spin", "/api/v1/store/buy", "/api/v1/daily-login/claim"} {
		assert.Contains(t, body, `"`+route+`"`)
	}
}

func TestServer_StartStop(t *testing.T) {
	s := NewServer(0, Deps{Store: storage.NewMemoryStore()})

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.Eventually(t, func() bool {
		return s.Stop(ctx) == nil
	}, time.Second, 10*time.Millisecond)

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(time.Second):
		t.Fatal("server did not stop")
	}
}
