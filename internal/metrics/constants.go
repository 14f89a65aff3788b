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
	MetricNameSpinsTotal           = "spins_total"
	MetricNameSpinRejections       = "spin_rejections_total"
	MetricNameCreditsWagered       = "credits_wagered_total"
	MetricNameCreditsPaid          = "credits_paid_total"
	MetricNameSpinReturnMultiple   = "spin_return_multiple"
	MetricNameAchievementsUnlocked = "achievements_unlocked_total"
	MetricNameBalanceResets        = "balance_resets_total"
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
	HelpTextSpinsTotal           = "Total number of resolved spins"
	HelpTextSpinRejections       = "Total number of refused spin requests"
	HelpTextCreditsWagered       = "Total credits debited as bets"
	HelpTextCreditsPaid          = "Total credits paid out by resolved spins"
	HelpTextSpinReturnMultiple   = "Payout of a resolved spin as a multiple of its bet"
	HelpTextAchievementsUnlocked = "Total number of achievements unlocked"
	HelpTextBalanceResets        = "Total number of balance resets"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelMode        = "mode"
	LabelTier        = "tier"
	LabelSource      = "source"
	LabelReason      = "reason"
	LabelAchievement = "achievement"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ReturnMultipleBuckets cover a loss (0) up to the jackpot range
var ReturnMultipleBuckets = []float64{0, 1, 2, 5, 10, 20, 50, 100, 250}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)

// UnmatchedRoute labels requests that matched no chi route
const UnmatchedRoute = "unmatched"
