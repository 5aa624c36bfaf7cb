package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelGame},
	)

	DrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawsTotal,
			Help: HelpTextDrawsTotal,
		},
		[]string{LabelGame, LabelTier, LabelSource},
	)

	DuplicateCompensations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDuplicateCompensation,
			Help: HelpTextDuplicateCompensation,
		},
		[]string{LabelGame},
	)

	RouletteSpins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRouletteSpins,
			Help: HelpTextRouletteSpins,
		},
		[]string{LabelResult},
	)

	RouletteWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRouletteWagered,
			Help: HelpTextRouletteWagered,
		},
	)
)

// Economy Metrics
var (
	CurrencySpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCurrencySpent,
			Help: HelpTextCurrencySpent,
		},
		[]string{LabelCurrency},
	)

	CurrencyGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCurrencyGranted,
			Help: HelpTextCurrencyGranted,
		},
		[]string{LabelCurrency},
	)

	StorePurchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStorePurchases,
			Help: HelpTextStorePurchases,
		},
		[]string{LabelCurrency},
	)

	RewardsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsClaimed,
			Help: HelpTextRewardsClaimed,
		},
		[]string{LabelType},
	)

	PersistedStateResets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePersistedStateResets,
			Help: HelpTextPersistedStateResets,
		},
		[]string{LabelField},
	)
)
