package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameSpinsTotal            = "spins_total"
	MetricNameDrawsTotal            = "draws_total"
	MetricNameDuplicateCompensation = "duplicate_compensations_total"
	MetricNameRouletteSpins         = "roulette_spins_total"
	MetricNameRouletteWagered       = "roulette_wagered_total"
)

// Economy metric names
const (
	MetricNameCurrencySpent        = "currency_spent_total"
	MetricNameCurrencyGranted      = "currency_granted_total"
	MetricNameStorePurchases       = "store_purchases_total"
	MetricNameRewardsClaimed       = "rewards_claimed_total"
	MetricNamePersistedStateResets = "persisted_state_resets_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextSpinsTotal            = "Total number of settled game sessions"
	HelpTextDrawsTotal            = "Total number of lottery draws by targeted tier and resolution source"
	HelpTextDuplicateCompensation = "Total number of duplicate wins converted into currency"
	HelpTextRouletteSpins         = "Total number of roulette spins by result"
	HelpTextRouletteWagered       = "Total gold wagered on roulette"
)

// Economy metric help text
const (
	HelpTextCurrencySpent        = "Total currency debited from ledgers"
	HelpTextCurrencyGranted      = "Total currency credited to ledgers"
	HelpTextStorePurchases       = "Total number of daily store purchases"
	HelpTextRewardsClaimed       = "Total number of mission and login rewards claimed"
	HelpTextPersistedStateResets = "Total number of malformed persisted fields reset to defaults"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelGame     = "game"
	LabelTier     = "tier"
	LabelSource   = "source"
	LabelCurrency = "currency"
	LabelResult   = "result"
	LabelField    = "field"
)

// Label values
const (
	ResultWin  = "win"
	ResultLoss = "loss"

	// PathUnmatched labels requests that matched no route
	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. Spin endpoints hold the request through the reveal delay, so the
// upper buckets extend past the longest configured delay.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
