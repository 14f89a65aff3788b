package domain

import "time"

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "spin.resolved")
const (
	// EventTypeSpinResolved is published once per spin after balance and combo are settled
	EventTypeSpinResolved = "spin.resolved"

	// EventTypeSpinRejected is published when a spin request is refused
	EventTypeSpinRejected = "spin.rejected"

	// EventTypeAchievementUnlocked is published the first time a player earns an achievement
	EventTypeAchievementUnlocked = "achievement.unlocked"

	// EventTypeBalanceReset is published when a player's balance is restored to the starting amount
	EventTypeBalanceReset = "balance.reset"
)

// SpinRejectedPayload is the event payload for spin.rejected events
type SpinRejectedPayload struct {
	PlayerID string `json:"player_id"`
	Bet      int64  `json:"bet"`
	Reason   string `json:"reason"`
}

// AchievementUnlockedPayload is the event payload for achievement.unlocked events
type AchievementUnlockedPayload struct {
	PlayerID    string      `json:"player_id"`
	Achievement Achievement `json:"achievement"`
}

// BalanceResetPayload is the event payload for balance.reset events
type BalanceResetPayload struct {
	PlayerID string    `json:"player_id"`
	Balance  int64     `json:"balance"`
	ResetAt  time.Time `json:"reset_at"`
}
