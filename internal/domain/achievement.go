package domain

import "time"

// AchievementKey identifies an achievement
type AchievementKey string

const (
	AchievementFirstWin     AchievementKey = "first-win"
	AchievementComboMaster  AchievementKey = "combo-master"
	AchievementMissionClear AchievementKey = "mission-clear"
	AchievementJackpot      AchievementKey = "jackpot"
)

// Achievement is an unlocked (or unlockable) badge
type Achievement struct {
	Key         AchievementKey `json:"key"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	UnlockedAt  time.Time      `json:"unlocked_at,omitempty"`
}
