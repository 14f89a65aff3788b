package achievement

// ComboMasterThreshold is the combo a player must reach to unlock combo-master
const ComboMasterThreshold = 5

// Log messages
const (
	LogMsgAchievementUnlocked = "Achievement unlocked"
	LogMsgUnlockFailed        = "Failed to unlock achievement"
)

// Error messages
const (
	ErrMsgDecodeSpinResolved = "failed to decode spin resolved payload"
	ErrMsgListFailed         = "failed to list achievements"
)
