package achievement

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/repository"
)

type unlock struct {
	at  time.Time
	seq uint64
}

// MemoryRepository keeps achievements in process memory
type MemoryRepository struct {
	mu       sync.RWMutex
	seq      uint64
	unlocked map[string]map[domain.AchievementKey]unlock
}

// NewMemoryRepository creates an empty MemoryRepository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		unlocked: make(map[string]map[domain.AchievementKey]unlock),
	}
}

var _ repository.Achievements = (*MemoryRepository)(nil)

func (r *MemoryRepository) Unlock(_ context.Context, playerID string, key domain.AchievementKey, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	player, ok := r.unlocked[playerID]
	if !ok {
		player = make(map[domain.AchievementKey]unlock)
		r.unlocked[playerID] = player
	}
	if _, exists := player[key]; exists {
		return false, nil
	}
	r.seq++
	player[key] = unlock{at: at, seq: r.seq}
	return true, nil
}

// ListUnlocked returns the player's achievements in unlock order
func (r *MemoryRepository) ListUnlocked(_ context.Context, playerID string) ([]domain.Achievement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	player := r.unlocked[playerID]
	keys := make([]domain.AchievementKey, 0, len(player))
	for key := range player {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := player[keys[i]], player[keys[j]]
		if a.at.Equal(b.at) {
			return a.seq < b.seq
		}
		return a.at.Before(b.at)
	})

	out := make([]domain.Achievement, 0, len(keys))
	for _, key := range keys {
		out = append(out, domain.Achievement{Key: key, UnlockedAt: player[key].at})
	}
	return out, nil
}
