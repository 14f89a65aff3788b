package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.SpinResolved, s.handleSpinResolved)
	s.bus.Subscribe(event.SpinRejected, s.handleSpinRejected)
	s.bus.Subscribe(event.AchievementUnlocked, s.handleAchievementUnlocked)
	s.bus.Subscribe(event.BalanceReset, s.handleBalanceReset)

	slog.Info(LogMsgSubscriberRegistered,
		"types", []string{
			EventTypeSpinResolved,
			EventTypeSpinRejected,
			EventTypeAchievementUnlocked,
			EventTypeBalanceReset,
		})
}

// handleSpinResolved broadcasts the outcome of a finished spin.
// Stream problems never fail the publish, so bad payloads are only logged.
func (s *Subscriber) handleSpinResolved(_ context.Context, evt event.Event) error {
	outcome, err := event.DecodePayload[domain.SpinOutcome](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	source, _ := evt.GetMetadataValue(event.MetadataKeySource).(string)
	payload := SpinResolvedPayload{
		SpinID:          outcome.SpinID,
		PlayerID:        outcome.PlayerID,
		Mode:            outcome.Mode,
		Rows:            gridRows(outcome.Grid),
		Wins:            outcome.Wins,
		Bet:             outcome.Bet,
		TotalPayout:     outcome.TotalPayout,
		Tier:            outcome.Tier,
		Combo:           outcome.Combo,
		Balance:         outcome.Balance,
		MissionProgress: outcome.MissionProgress,
		Message:         outcome.Message,
		Source:          source,
	}
	s.hub.Broadcast(EventTypeSpinResolved, outcome.PlayerID, payload)

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeSpinResolved,
		"player_id", outcome.PlayerID,
		"tier", outcome.Tier)
	return nil
}

func (s *Subscriber) handleSpinRejected(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.SpinRejectedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(EventTypeSpinRejected, p.PlayerID, SpinRejectedPayload{
		PlayerID: p.PlayerID,
		Bet:      p.Bet,
		Reason:   p.Reason,
	})
	return nil
}

func (s *Subscriber) handleAchievementUnlocked(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.AchievementUnlockedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(EventTypeAchievementUnlocked, p.PlayerID, AchievementPayload{
		PlayerID:    p.PlayerID,
		Key:         string(p.Achievement.Key),
		Title:       p.Achievement.Title,
		Description: p.Achievement.Description,
	})
	return nil
}

func (s *Subscriber) handleBalanceReset(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.BalanceResetPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(EventTypeBalanceReset, p.PlayerID, BalanceResetPayload{
		PlayerID: p.PlayerID,
		Balance:  p.Balance,
		ResetAt:  p.ResetAt,
	})
	return nil
}
