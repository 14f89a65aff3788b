package leaderboard

import (
	"context"
	"sort"
	"sync"

	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/repository"
)

// MemoryRepository keeps run records in process memory
type MemoryRepository struct {
	mu   sync.RWMutex
	runs map[string]domain.RunRecord
}

// NewMemoryRepository creates an empty MemoryRepository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		runs: make(map[string]domain.RunRecord),
	}
}

var _ repository.Runs = (*MemoryRepository)(nil)

func (r *MemoryRepository) SaveRun(_ context.Context, run domain.RunRecord) error {
	if run.ID == "" || run.PlayerID == "" {
		return domain.ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.runs[run.ID]; !exists {
		r.runs[run.ID] = run
	}
	return nil
}

func (r *MemoryRepository) TopScores(_ context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	ranked := r.ranked()
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (r *MemoryRepository) PlayerBest(_ context.Context, playerID string) (*domain.LeaderboardEntry, error) {
	ranked := r.ranked()
	for i, entry := range ranked {
		if entry.PlayerID != playerID {
			continue
		}
		rank := 1
		for _, other := range ranked[:i] {
			if other.Score > entry.Score {
				rank++
			}
		}
		entry.Rank = rank
		return &entry, nil
	}
	return nil, domain.ErrPlayerNotFound
}

// ranked returns each player's best run, highest score first, earlier run on ties
func (r *MemoryRepository) ranked() []domain.LeaderboardEntry {
	r.mu.RLock()
	best := make(map[string]domain.RunRecord)
	for _, run := range r.runs {
		cur, ok := best[run.PlayerID]
		if !ok || better(run, cur) {
			best[run.PlayerID] = run
		}
	}
	r.mu.RUnlock()

	runs := make([]domain.RunRecord, 0, len(best))
	for _, run := range best {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool { return better(runs[i], runs[j]) })

	out := make([]domain.LeaderboardEntry, len(runs))
	for i, run := range runs {
		out[i] = domain.LeaderboardEntry{
			Rank:      i + 1,
			PlayerID:  run.PlayerID,
			Score:     run.Score,
			Combos:    run.Combos,
			CreatedAt: run.CreatedAt,
		}
	}
	return out
}

func better(a, b domain.RunRecord) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}
