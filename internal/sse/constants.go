package sse

import (
	"time"

	"github.com/osse101/LuckySpin_Go/internal/domain"
)

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE
const (
	// EventTypeSpinResolved carries the outcome of a finished spin
	EventTypeSpinResolved = domain.EventTypeSpinResolved

	// EventTypeSpinRejected is sent when a spin request was refused
	EventTypeSpinRejected = domain.EventTypeSpinRejected

	// EventTypeAchievementUnlocked is sent the first time a player earns an achievement
	EventTypeAchievementUnlocked = domain.EventTypeAchievementUnlocked

	// EventTypeBalanceReset is sent when a balance is restored
	EventTypeBalanceReset = domain.EventTypeBalanceReset

	// EventTypeConnected is the first event on every stream
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Query parameters
const (
	QueryParamTypes  = "types"
	QueryParamPlayer = "player"
)

// Log messages
const (
	LogMsgClientConnected      = "SSE client connected"
	LogMsgClientDisconnected   = "SSE client disconnected"
	LogMsgEventBroadcast       = "Broadcasting SSE event"
	LogMsgWriteError           = "Failed to write SSE event"
	LogMsgBroadcastDropped     = "SSE broadcast buffer full, event dropped"
	LogMsgInvalidPayload       = "Invalid event payload for SSE"
	LogMsgSubscriberRegistered = "SSE subscriber registered for event types"
)
