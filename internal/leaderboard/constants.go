package leaderboard

import "time"

// Query limits
const (
	DefaultTopLimit = 10
	MaxTopLimit     = 100
)

// Cache settings
const (
	CacheSize = 32
	CacheTTL  = time.Minute
	// MinCacheTTL keeps the LRU's purge ticker (ttl/100) well above zero
	MinCacheTTL = 100 * time.Millisecond
)

// RefreshJobName is the scheduler entry that rewarms the top-N cache
const RefreshJobName = "leaderboard-refresh"

// Log messages
const (
	LogMsgRunSaved       = "Run record saved"
	LogMsgRunSaveFailed  = "Failed to save run record"
	LogMsgCacheRefreshed = "Leaderboard cache refreshed"
	LogMsgSaveQueueFull  = "Run record queue full, deferring to event retry"
)

// Error messages
const (
	ErrMsgDecodeSpinResolved = "failed to decode spin resolved payload"
	ErrMsgQueueFull          = "run record queue is full"
	ErrMsgTopScoresFailed    = "failed to load top scores"
)
