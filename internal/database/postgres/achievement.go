package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LuckySpin_Go/internal/database/generated"
	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/repository"
)

// AchievementRepository implements repository.Achievements for PostgreSQL
type AchievementRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewAchievementRepository creates a new AchievementRepository
func NewAchievementRepository(pool *pgxpool.Pool) repository.Achievements {
	return &AchievementRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// Unlock inserts the achievement unless the player already has it
func (r *AchievementRepository) Unlock(ctx context.Context, playerID string, key domain.AchievementKey, at time.Time) (bool, error) {
	affected, err := r.q.UnlockAchievement(ctx, generated.UnlockAchievementParams{
		PlayerID:       playerID,
		AchievementKey: string(key),
		UnlockedAt:     pgtype.Timestamptz{Time: at, Valid: true},
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUnlock, err)
	}
	return affected == 1, nil
}

// ListUnlocked returns the player's achievements in unlock order
func (r *AchievementRepository) ListUnlocked(ctx context.Context, playerID string) ([]domain.Achievement, error) {
	rows, err := r.q.ListPlayerAchievements(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAchievements, err)
	}

	out := make([]domain.Achievement, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Achievement{
			Key:        domain.AchievementKey(row.AchievementKey),
			UnlockedAt: row.UnlockedAt.Time,
		})
	}
	return out, nil
}
