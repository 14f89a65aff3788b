package repository

import (
	"context"

	"github.com/osse101/LuckySpin_Go/internal/domain"
)

// Runs defines the interface for run record persistence
type Runs interface {
	// SaveRun stores a run. Saving the same run ID twice is a no-op.
	SaveRun(ctx context.Context, run domain.RunRecord) error
	// TopScores ranks players by their best run, highest first
	TopScores(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	// PlayerBest returns the player's best run and rank, or domain.ErrPlayerNotFound
	PlayerBest(ctx context.Context, playerID string) (*domain.LeaderboardEntry, error)
}
