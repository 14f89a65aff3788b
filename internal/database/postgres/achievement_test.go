package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckySpin_Go/internal/domain"
)

func TestAchievementRepository_UnlockOnce(t *testing.T) {
	repo := NewAchievementRepository(requireDB(t))
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	fresh, err := repo.Unlock(ctx, "alice", domain.AchievementFirstWin, at)
	require.NoError(t, err)
	assert.True(t, fresh)

	fresh, err = repo.Unlock(ctx, "alice", domain.AchievementFirstWin, at.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, fresh, "second unlock is a no-op")

	_, err = repo.Unlock(ctx, "alice", domain.AchievementJackpot, at.Add(time.Minute))
	require.NoError(t, err)

	list, err := repo.ListUnlocked(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.AchievementFirstWin, list[0].Key)
	assert.True(t, at.Equal(list[0].UnlockedAt))
	assert.Equal(t, domain.AchievementJackpot, list[1].Key)

	other, err := repo.ListUnlocked(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAchievementRepository_SameInstantKeepsUnlockOrder(t *testing.T) {
	repo := NewAchievementRepository(requireDB(t))
	ctx := context.Background()
	at := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	for _, key := range []domain.AchievementKey{domain.AchievementFirstWin, domain.AchievementComboMaster, domain.AchievementJackpot} {
		fresh, err := repo.Unlock(ctx, "dana", key, at)
		require.NoError(t, err)
		require.True(t, fresh)
	}

	list, err := repo.ListUnlocked(ctx, "dana")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, domain.AchievementFirstWin, list[0].Key)
	assert.Equal(t, domain.AchievementComboMaster, list[1].Key)
	assert.Equal(t, domain.AchievementJackpot, list[2].Key)
}
