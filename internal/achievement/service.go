package achievement

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/event"
	"github.com/osse101/LuckySpin_Go/internal/logger"
	"github.com/osse101/LuckySpin_Go/internal/repository"
)

// Publisher is the subset of the resilient publisher the service needs
type Publisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

// Service defines the interface for achievement operations
type Service interface {
	// Record unlocks whatever the outcome earned and returns only the new ones
	Record(ctx context.Context, outcome domain.SpinOutcome) ([]domain.Achievement, error)
	List(ctx context.Context, playerID string) ([]domain.Achievement, error)
}

type service struct {
	repo      repository.Achievements
	publisher Publisher
	now       func() time.Time
}

// NewService creates a new achievement service
func NewService(repo repository.Achievements, publisher Publisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *service) Record(ctx context.Context, outcome domain.SpinOutcome) ([]domain.Achievement, error) {
	log := logger.FromContext(ctx)

	at := outcome.ResolvedAt
	if at.IsZero() {
		at = s.now()
	}

	var unlocked []domain.Achievement
	var firstErr error
	for _, key := range Earned(outcome) {
		fresh, err := s.repo.Unlock(ctx, outcome.PlayerID, key, at)
		if err != nil {
			log.Warn(LogMsgUnlockFailed, "error", err, "player_id", outcome.PlayerID, "achievement", key)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if !fresh {
			continue
		}

		a, _ := lookup(key)
		a.UnlockedAt = at
		unlocked = append(unlocked, a)
		log.Info(LogMsgAchievementUnlocked, "player_id", outcome.PlayerID, "achievement", key)
		if s.publisher != nil {
			s.publisher.PublishWithRetry(ctx, event.NewAchievementUnlockedEvent(outcome.PlayerID, a))
		}
	}
	return unlocked, firstErr
}

func (s *service) List(ctx context.Context, playerID string) ([]domain.Achievement, error) {
	rows, err := s.repo.ListUnlocked(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListFailed, err)
	}

	out := make([]domain.Achievement, 0, len(rows))
	for _, row := range rows {
		a, ok := lookup(row.Key)
		if !ok {
			// retired keys keep their raw name
			a = domain.Achievement{Key: row.Key, Title: string(row.Key)}
		}
		a.UnlockedAt = row.UnlockedAt
		out = append(out, a)
	}
	return out, nil
}
