package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LuckySpin_Go/internal/database/generated"
	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/repository"
)

// RunRepository implements repository.Runs for PostgreSQL
type RunRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewRunRepository creates a new RunRepository
func NewRunRepository(pool *pgxpool.Pool) repository.Runs {
	return &RunRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// SaveRun inserts a run record
func (r *RunRepository) SaveRun(ctx context.Context, run domain.RunRecord) error {
	id, err := uuid.Parse(run.ID)
	if err != nil {
		return fmt.Errorf("%w: run id %q: %v", domain.ErrInvalidInput, run.ID, err)
	}
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	mode := run.Mode
	if mode == "" {
		mode = domain.ModeClassic
	}

	_, err = r.q.InsertRun(ctx, generated.InsertRunParams{
		RunID:     pgtype.UUID{Bytes: id, Valid: true},
		PlayerID:  run.PlayerID,
		Score:     run.Score,
		Combos:    int32(run.Combos),
		Mode:      string(mode),
		CreatedAt: pgtype.Timestamptz{Time: createdAt, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveRun, err)
	}
	return nil
}

// TopScores returns the best run of each player, ranked
func (r *RunRepository) TopScores(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	rows, err := r.q.GetTopScores(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTopScores, err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, domain.LeaderboardEntry{
			Rank:      i + 1,
			PlayerID:  row.PlayerID,
			Score:     row.Score,
			Combos:    int(row.Combos),
			CreatedAt: row.CreatedAt.Time,
		})
	}
	return entries, nil
}

// PlayerBest returns the player's best run with its leaderboard rank
func (r *RunRepository) PlayerBest(ctx context.Context, playerID string) (*domain.LeaderboardEntry, error) {
	best, err := r.q.GetPlayerBest(ctx, playerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPlayerBest, err)
	}

	above, err := r.q.CountPlayersAbove(ctx, best.Score)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPlayerBest, err)
	}
	return &domain.LeaderboardEntry{
		Rank:      int(above) + 1,
		PlayerID:  playerID,
		Score:     best.Score,
		Combos:    int(best.Combos),
		CreatedAt: best.CreatedAt.Time,
	}, nil
}
