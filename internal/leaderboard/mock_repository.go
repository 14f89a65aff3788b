package leaderboard

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/LuckySpin_Go/internal/domain"
)

// MockRepository is a mock implementation of repository.Runs
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) SaveRun(ctx context.Context, run domain.RunRecord) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockRepository) TopScores(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockRepository) PlayerBest(ctx context.Context, playerID string) (*domain.LeaderboardEntry, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaderboardEntry), args.Error(1)
}
