package achievement

import (
	"context"
	"fmt"

	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/event"
)

// EventHandler unlocks achievements from resolved spins
type EventHandler struct {
	service Service
}

// NewEventHandler creates a new achievement event handler
func NewEventHandler(service Service) *EventHandler {
	return &EventHandler{
		service: service,
	}
}

// Register subscribes the handler to relevant events
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.SpinResolved, h.HandleSpinResolved)
}

// HandleSpinResolved records the achievements earned by one spin
func (h *EventHandler) HandleSpinResolved(ctx context.Context, evt event.Event) error {
	outcome, err := event.DecodePayload[domain.SpinOutcome](evt.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDecodeSpinResolved, err)
	}
	_, err = h.service.Record(ctx, outcome)
	return err
}
