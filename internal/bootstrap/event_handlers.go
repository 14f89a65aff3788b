package bootstrap

import (
	"log/slog"

	"github.com/osse101/LuckySpin_Go/internal/achievement"
	"github.com/osse101/LuckySpin_Go/internal/event"
	"github.com/osse101/LuckySpin_Go/internal/leaderboard"
	"github.com/osse101/LuckySpin_Go/internal/metrics"
	"github.com/osse101/LuckySpin_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus     event.Bus
	Achievements achievement.Service
	Leaderboard  leaderboard.Service
	Hub          *sse.Hub // optional
}

// RegisterEventHandlers subscribes every spin listener to the bus:
// achievements, the leaderboard run record, metrics, and the SSE fan-out.
// Handlers run after a spin has resolved, so none of them can change its outcome.
func RegisterEventHandlers(deps EventHandlerDependencies) {
	achievement.NewEventHandler(deps.Achievements).Register(deps.EventBus)
	slog.Info(LogMsgAchievementHandlerReady)

	leaderboard.NewEventHandler(deps.Leaderboard).Register(deps.EventBus)
	slog.Info(LogMsgLeaderboardHandlerReady)

	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberReady)
	}
}
