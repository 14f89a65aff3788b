package postgres

// Error Messages
const (
	ErrMsgFailedToSaveRun          = "failed to save run"
	ErrMsgFailedToQueryTopScores   = "failed to query top scores"
	ErrMsgFailedToQueryPlayerBest  = "failed to query player best"
	ErrMsgFailedToUnlock           = "failed to unlock achievement"
	ErrMsgFailedToListAchievements = "failed to list achievements"
)
