package discord

import (
	"time"

	"github.com/osse101/LuckySpin_Go/internal/sse"
)

// SSE client configuration
const (
	// sseInitialBackoff is the initial backoff duration for reconnection
	sseInitialBackoff = 1 * time.Second

	// sseMaxBackoff is the maximum backoff duration for reconnection
	sseMaxBackoff = 30 * time.Second

	// sseBackoffMultiplier is the multiplier for exponential backoff
	sseBackoffMultiplier = 2.0

	// sseBufferSize is the buffer size for reading SSE events
	sseBufferSize = 64 * 1024

	sseEventsPath = "/api/v1/events"
)

// SSE event types the bot announces
const (
	SSEEventTypeSpinResolved        = sse.EventTypeSpinResolved
	SSEEventTypeAchievementUnlocked = sse.EventTypeAchievementUnlocked
)

// NotifiedEventTypes is the stream filter the bot subscribes with
func NotifiedEventTypes() []string {
	return []string{SSEEventTypeSpinResolved, SSEEventTypeAchievementUnlocked}
}

// SSE log messages
const (
	sseLogMsgClientConnected   = "SSE client connected"
	sseLogMsgClientStopped     = "SSE client stopped"
	sseLogMsgConnectionFailed  = "SSE connection failed"
	sseLogMsgParseError        = "Failed to parse SSE event"
	sseLogMsgHandlerError      = "SSE event handler error"
	sseLogMsgNotificationSent  = "Discord notification sent"
	sseLogMsgNotificationError = "Failed to send Discord notification"
)
