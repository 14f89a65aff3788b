package achievement

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/LuckySpin_Go/internal/domain"
)

// MockRepository is a mock implementation of repository.Achievements
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Unlock(ctx context.Context, playerID string, key domain.AchievementKey, at time.Time) (bool, error) {
	args := m.Called(ctx, playerID, key, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ListUnlocked(ctx context.Context, playerID string) ([]domain.Achievement, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Achievement), args.Error(1)
}
