package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Slots error messages
	ErrMsgSpinFailed          = "Failed to process spin"
	ErrMsgAutoSpinStartFailed = "Failed to start auto-spin"
	ErrMsgAutoSpinStopFailed  = "Failed to stop auto-spin"
	ErrMsgGetBalanceFailed    = "Failed to retrieve balance"
	ErrMsgResetBalanceFailed  = "Failed to reset balance"

	// Leaderboard and achievement error messages
	ErrMsgGetLeaderboardFailed  = "Failed to retrieve leaderboard"
	ErrMsgGetAchievementsFailed = "Failed to retrieve achievements"
)

// Success messages for API responses
const (
	MsgAutoSpinStarted = "Auto-spin started"
	MsgAutoSpinStopped = "Auto-spin stopped"
	MsgBalanceReset    = "Balance reset"
)

// Query parameter names
const (
	QueryParamPlayerID = "player_id"
	QueryParamLimit    = "limit"
)
