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
		[]string{LabelMode, LabelTier, LabelSource},
	)

	SpinRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinRejections,
			Help: HelpTextSpinRejections,
		},
		[]string{LabelReason},
	)

	CreditsWagered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCreditsWagered,
			Help: HelpTextCreditsWagered,
		},
		[]string{LabelMode},
	)

	CreditsPaid = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCreditsPaid,
			Help: HelpTextCreditsPaid,
		},
		[]string{LabelMode},
	)

	SpinReturnMultiple = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameSpinReturnMultiple,
			Help:    HelpTextSpinReturnMultiple,
			Buckets: ReturnMultipleBuckets,
		},
		[]string{LabelMode},
	)

	AchievementsUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsUnlocked,
			Help: HelpTextAchievementsUnlocked,
		},
		[]string{LabelAchievement},
	)

	BalanceResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBalanceResets,
			Help: HelpTextBalanceResets,
		},
	)
)
