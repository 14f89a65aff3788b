package metrics

import (
	"context"

	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/event"
	"github.com/osse101/LuckySpin_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.SpinResolved,
		event.SpinRejected,
		event.AchievementUnlocked,
		event.BalanceReset,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics.
// Metrics never fail the publish, so decode problems are only logged.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.SpinResolved:
		outcome, err := event.DecodePayload[domain.SpinOutcome](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		source, _ := evt.GetMetadataValue(event.MetadataKeySource).(string)
		RecordSpin(outcome, source)

	case event.SpinRejected:
		payload, err := event.DecodePayload[domain.SpinRejectedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		SpinRejections.WithLabelValues(payload.Reason).Inc()

	case event.AchievementUnlocked:
		payload, err := event.DecodePayload[domain.AchievementUnlockedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		AchievementsUnlocked.WithLabelValues(string(payload.Achievement.Key)).Inc()

	case event.BalanceReset:
		BalanceResets.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// RecordSpin updates the game metrics for one resolved spin
func RecordSpin(outcome domain.SpinOutcome, source string) {
	mode := string(outcome.Mode)
	SpinsTotal.WithLabelValues(mode, string(outcome.Tier), source).Inc()
	CreditsWagered.WithLabelValues(mode).Add(float64(outcome.Bet))
	CreditsPaid.WithLabelValues(mode).Add(float64(outcome.TotalPayout))
	if outcome.Bet > 0 {
		SpinReturnMultiple.WithLabelValues(mode).Observe(float64(outcome.TotalPayout) / float64(outcome.Bet))
	}
}
