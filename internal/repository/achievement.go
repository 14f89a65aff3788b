package repository

import (
	"context"
	"time"

	"github.com/osse101/LuckySpin_Go/internal/domain"
)

// Achievements defines the interface for achievement persistence
type Achievements interface {
	// Unlock records key for the player and reports whether it was newly unlocked
	Unlock(ctx context.Context, playerID string, key domain.AchievementKey, at time.Time) (bool, error)
	// ListUnlocked returns the player's unlocked achievements, oldest first.
	// Only Key and UnlockedAt are populated.
	ListUnlocked(ctx context.Context, playerID string) ([]domain.Achievement, error)
}
