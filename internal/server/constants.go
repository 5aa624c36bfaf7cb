package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgHighRequestRate  = "Blocking high request rate"
)

// HTTP header names
const (
	HeaderRequestID      = "X-Request-ID"
	HeaderAuthorization  = "Authorization"
	HeaderCookie         = "Cookie"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Request limits
const (
	MaxRequestBodyBytes = 1 << 20
	RateLimitRequests   = 1000
	RateLimitWindow     = 5 * time.Minute
	ReadHeaderTimeout   = 5 * time.Second
)

// QuietPaths are not logged per request
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
	"/swagger/",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
