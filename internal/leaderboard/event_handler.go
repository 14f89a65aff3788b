package leaderboard

import (
	"context"
	"fmt"

	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/event"
)

// EventHandler records a run for every resolved spin
type EventHandler struct {
	service Service
}

// NewEventHandler creates a new leaderboard event handler
func NewEventHandler(service Service) *EventHandler {
	return &EventHandler{
		service: service,
	}
}

// Register subscribes the handler to relevant events
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.SpinResolved, h.HandleSpinResolved)
}

// HandleSpinResolved queues the run record of a resolved spin
func (h *EventHandler) HandleSpinResolved(ctx context.Context, evt event.Event) error {
	outcome, err := event.DecodePayload[domain.SpinOutcome](evt.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDecodeSpinResolved, err)
	}
	return h.service.RecordRun(ctx, outcome)
}
