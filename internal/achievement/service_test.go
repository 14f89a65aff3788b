package achievement

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/event"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) PublishWithRetry(_ context.Context, evt event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) unlockedKeys() []domain.AchievementKey {
	p.mu.Lock()
	defer p.mu.Unlock()
	var keys []domain.AchievementKey
	for _, evt := range p.events {
		keys = append(keys, evt.Payload.(domain.AchievementUnlockedPayload).Achievement.Key)
	}
	return keys
}

var resolvedAt = time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

func winningOutcome(combo int, tier domain.ResultTier) domain.SpinOutcome {
	return domain.SpinOutcome{
		SpinID:     "spin-1",
		PlayerID:   "alice",
		Wins:       []domain.WinResult{{LineIndex: 0, Symbol: "1", Payout: 10, Multiplier: 1}},
		Tier:       tier,
		Combo:      combo,
		ResolvedAt: resolvedAt,
	}
}

func TestEarned(t *testing.T) {
	tests := []struct {
		name    string
		outcome domain.SpinOutcome
		want    []domain.AchievementKey
	}{
		{"loss", domain.SpinOutcome{Combo: 1, Tier: domain.ResultNone}, nil},
		{"plain win", winningOutcome(2, domain.ResultWin), []domain.AchievementKey{domain.AchievementFirstWin}},
		{"combo master", winningOutcome(5, domain.ResultBigWin),
			[]domain.AchievementKey{domain.AchievementFirstWin, domain.AchievementComboMaster}},
		{"jackpot", winningOutcome(4, domain.ResultJackpot),
			[]domain.AchievementKey{domain.AchievementFirstWin, domain.AchievementJackpot}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Earned(tt.outcome))
		})
	}

	mission := winningOutcome(8, domain.ResultJackpot)
	mission.MissionCleared = true
	assert.Equal(t, []domain.AchievementKey{
		domain.AchievementFirstWin,
		domain.AchievementComboMaster,
		domain.AchievementMissionClear,
		domain.AchievementJackpot,
	}, Earned(mission))
}

func TestService_RecordUnlocksOnce(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewService(NewMemoryRepository(), pub)
	ctx := context.Background()

	unlocked, err := svc.Record(ctx, winningOutcome(2, domain.ResultWin))
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	assert.Equal(t, "First Win", unlocked[0].Title)
	assert.Equal(t, resolvedAt, unlocked[0].UnlockedAt)

	unlocked, err = svc.Record(ctx, winningOutcome(5, domain.ResultWin))
	require.NoError(t, err)
	require.Len(t, unlocked, 1, "first-win is already held")
	assert.Equal(t, domain.AchievementComboMaster, unlocked[0].Key)

	assert.Equal(t, []domain.AchievementKey{domain.AchievementFirstWin, domain.AchievementComboMaster}, pub.unlockedKeys())

	list, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Combo Master", list[1].Title)

	empty, err := svc.List(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestService_RecordContinuesPastFailures(t *testing.T) {
	repo := &MockRepository{}
	boom := errors.New("db down")
	repo.On("Unlock", mock.Anything, "alice", domain.AchievementFirstWin, resolvedAt).Return(false, boom)
	repo.On("Unlock", mock.Anything, "alice", domain.AchievementJackpot, resolvedAt).Return(true, nil)

	pub := &recordingPublisher{}
	svc := NewService(repo, pub)

	unlocked, err := svc.Record(context.Background(), winningOutcome(1, domain.ResultJackpot))
	assert.ErrorIs(t, err, boom)
	require.Len(t, unlocked, 1)
	assert.Equal(t, domain.AchievementJackpot, unlocked[0].Key)
	assert.Equal(t, []domain.AchievementKey{domain.AchievementJackpot}, pub.unlockedKeys())
	repo.AssertExpectations(t)
}

func TestService_ListWrapsErrors(t *testing.T) {
	repo := &MockRepository{}
	boom := errors.New("db down")
	repo.On("ListUnlocked", mock.Anything, "alice").Return(nil, boom)

	_, err := NewService(repo, nil).List(context.Background(), "alice")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), ErrMsgListFailed)
}

func TestService_ListKeepsUnknownKeys(t *testing.T) {
	repo := &MockRepository{}
	repo.On("ListUnlocked", mock.Anything, "alice").Return([]domain.Achievement{
		{Key: "retired", UnlockedAt: resolvedAt},
	}, nil)

	list, err := NewService(repo, nil).List(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "retired", list[0].Title)
}

func TestEventHandler_SpinResolved(t *testing.T) {
	bus := event.NewMemoryBus()
	pub := &recordingPublisher{}
	svc := NewService(NewMemoryRepository(), pub)
	NewEventHandler(svc).Register(bus)

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, event.NewSpinResolvedEvent(winningOutcome(6, domain.ResultBigWin), "manual")))

	list, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Len(t, pub.unlockedKeys(), 2)
}

func TestEventHandler_DecodesMapPayload(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)
	h := NewEventHandler(svc)

	evt := event.Event{
		Type: event.SpinResolved,
		Payload: map[string]interface{}{
			"player_id":   "carol",
			"wins":        []interface{}{map[string]interface{}{"symbol": "7", "payout": 20, "multiplier": 1}},
			"tier":        "win",
			"combo":       2,
			"resolved_at": resolvedAt.Format(time.RFC3339),
		},
	}
	require.NoError(t, h.HandleSpinResolved(context.Background(), evt))

	list, err := svc.List(context.Background(), "carol")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.AchievementFirstWin, list[0].Key)
}

func TestEventHandler_BadPayload(t *testing.T) {
	h := NewEventHandler(NewService(NewMemoryRepository(), nil))
	err := h.HandleSpinResolved(context.Background(), event.Event{Type: event.SpinResolved, Payload: "garbage"})
	assert.Error(t, err)
}

func TestMemoryRepository_OrdersByUnlockTime(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Unlock(ctx, "alice", domain.AchievementJackpot, resolvedAt.Add(time.Minute))
	require.NoError(t, err)
	_, err = repo.Unlock(ctx, "alice", domain.AchievementFirstWin, resolvedAt)
	require.NoError(t, err)

	list, err := repo.ListUnlocked(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.AchievementFirstWin, list[0].Key)
	assert.Equal(t, domain.AchievementJackpot, list[1].Key)
}

func TestMemoryRepository_SameInstantKeepsUnlockOrder(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for _, key := range []domain.AchievementKey{domain.AchievementJackpot, domain.AchievementFirstWin, domain.AchievementComboMaster} {
		fresh, err := repo.Unlock(ctx, "alice", key, resolvedAt)
		require.NoError(t, err)
		require.True(t, fresh)
	}

	list, err := repo.ListUnlocked(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, domain.AchievementJackpot, list[0].Key)
	assert.Equal(t, domain.AchievementFirstWin, list[1].Key)
	assert.Equal(t, domain.AchievementComboMaster, list[2].Key)
}
