package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckySpin_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(SpinResolved, func(ctx context.Context, evt Event) error {
		assert.Equal(t, SpinResolved, evt.Type)
		outcome, err := DecodePayload[domain.SpinOutcome](evt.Payload)
		require.NoError(t, err)
		assert.Equal(t, "p1", outcome.PlayerID)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), NewSpinResolvedEvent(domain.SpinOutcome{PlayerID: "p1"}, "manual"))
	require.NoError(t, err)
	assert.True(t, handled, "handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, evt Event) error {
		count++
		return nil
	}

	bus.Subscribe(SpinRejected, handler)
	bus.Subscribe(SpinRejected, handler)

	require.NoError(t, bus.Publish(context.Background(), NewSpinRejectedEvent("p1", 100, "insufficient funds")))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: "nobody_listens"}))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	secondRan := false

	bus.Subscribe(BalanceReset, func(ctx context.Context, evt Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(BalanceReset, func(ctx context.Context, evt Event) error {
		secondRan = true
		return nil
	})

	err := bus.Publish(context.Background(), NewBalanceResetEvent("p1", 10000, time.Now()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encountered 1 errors")
	assert.True(t, secondRan, "a failing handler must not stop later handlers")
}

func TestEventConstructors(t *testing.T) {
	evt := NewAchievementUnlockedEvent("p2", domain.Achievement{Key: domain.AchievementJackpot})
	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, "p2", evt.GetMetadataValue(MetadataKeyPlayerID))
	assert.Nil(t, evt.GetMetadataValue("missing"))

	payload, err := DecodePayload[domain.AchievementUnlockedPayload](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, domain.AchievementJackpot, payload.Achievement.Key)

	spin := NewSpinResolvedEvent(domain.SpinOutcome{PlayerID: "p3"}, "autospin")
	assert.Equal(t, "autospin", spin.GetMetadataValue(MetadataKeySource))

	assert.Nil(t, Event{}.GetMetadataValue("x"))
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{"player_id": "p9", "bet": 250, "reason": "in_progress"}

	payload, err := DecodePayload[domain.SpinRejectedPayload](raw)
	require.NoError(t, err)
	assert.Equal(t, "p9", payload.PlayerID)
	assert.Equal(t, int64(250), payload.Bet)
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(base, 2))
	assert.Equal(t, 8*time.Second, CalculateRetryDelay(base, 3))
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 0))
}
