package server

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimiter counts requests per client in a fixed window.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	counts    map[string]int
	lastReset time.Time
	now       func() time.Time
}

// NewRateLimiter allows limit requests per client per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		window:    window,
		counts:    make(map[string]int),
		lastReset: time.Now(),
		now:       time.Now,
	}
}

// Allow records a request and reports whether it is within the limit.
func (l *RateLimiter) Allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.now().Sub(l.lastReset) > l.window {
		l.counts = make(map[string]int)
		l.lastReset = l.now()
	}
	l.counts[client]++

	if n := l.counts[client]; n > l.limit {
		if n%100 == 0 { // Log every 100 requests to avoid log spam
			slog.Warn(LogMsgHighRequestRate, "client", client, "count", n)
		}
		return false
	}
	return true
}

// RateLimitMiddleware rejects clients over the limiter's budget
func RateLimitMiddleware(limiter *RateLimiter, trustedProxies []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy != remoteIP {
			continue
		}
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// Rightmost hop is the one our proxy saw
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
		break
	}
	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
