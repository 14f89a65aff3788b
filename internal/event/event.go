package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/LuckySpin_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata carries optional key/value context alongside a payload
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types
const (
	SpinResolved        Type = Type(domain.EventTypeSpinResolved)
	SpinRejected        Type = Type(domain.EventTypeSpinRejected)
	AchievementUnlocked Type = Type(domain.EventTypeAchievementUnlocked)
	BalanceReset        Type = Type(domain.EventTypeBalanceReset)
)

// Metadata keys
const (
	MetadataKeyPlayerID = "player_id"
	MetadataKeySource   = "source"
)

// Type-safe event constructors

// NewSpinResolvedEvent wraps a resolved spin outcome
func NewSpinResolvedEvent(outcome domain.SpinOutcome, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinResolved,
		Payload: outcome,
		Metadata: Metadata{
			MetadataKeyPlayerID: outcome.PlayerID,
			MetadataKeySource:   source,
		},
	}
}

// NewSpinRejectedEvent reports a spin request that was refused
func NewSpinRejectedEvent(playerID string, bet int64, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinRejected,
		Payload: domain.SpinRejectedPayload{
			PlayerID: playerID,
			Bet:      bet,
			Reason:   reason,
		},
		Metadata: Metadata{MetadataKeyPlayerID: playerID},
	}
}

// NewAchievementUnlockedEvent reports a newly earned achievement
func NewAchievementUnlockedEvent(playerID string, achievement domain.Achievement) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AchievementUnlocked,
		Payload: domain.AchievementUnlockedPayload{
			PlayerID:    playerID,
			Achievement: achievement,
		},
		Metadata: Metadata{MetadataKeyPlayerID: playerID},
	}
}

// NewBalanceResetEvent reports a balance restored to the starting amount
func NewBalanceResetEvent(playerID string, balance int64, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BalanceReset,
		Payload: domain.BalanceResetPayload{
			PlayerID: playerID,
			Balance:  balance,
			ResetAt:  at,
		},
		Metadata: Metadata{MetadataKeyPlayerID: playerID},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously; every handler runs even if an earlier one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
