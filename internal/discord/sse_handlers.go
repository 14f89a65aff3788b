package discord

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/sse"
)

// ChannelSender is the part of the Discord session the notifier posts with
type ChannelSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// SSENotifier posts big wins and achievements to a Discord channel
type SSENotifier struct {
	sender             ChannelSender
	notificationChanID string
}

// NewSSENotifier creates a new SSE notifier
func NewSSENotifier(sender ChannelSender, notificationChanID string) *SSENotifier {
	return &SSENotifier{
		sender:             sender,
		notificationChanID: notificationChanID,
	}
}

// RegisterHandlers registers all SSE event handlers with the client
func (n *SSENotifier) RegisterHandlers(client *SSEClient) {
	client.OnEvent(SSEEventTypeSpinResolved, n.handleSpinResolved)
	client.OnEvent(SSEEventTypeAchievementUnlocked, n.handleAchievementUnlocked)
}

// handleSpinResolved announces big wins and jackpots. Ordinary results stay quiet.
func (n *SSENotifier) handleSpinResolved(event SSEEvent) error {
	if n.notificationChanID == "" {
		return nil
	}

	var payload sse.SpinResolvedPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		slog.Warn(sseLogMsgParseError, "error", err, "event_type", event.Type)
		return nil
	}
	if payload.Tier != domain.ResultBigWin && payload.Tier != domain.ResultJackpot {
		return nil
	}

	title, color := tierStyle(payload.Tier)
	embed := &discordgo.MessageEmbed{
		Title: title,
		Description: printer.Sprintf("%s won **%d credits** on a %d bet!",
			displayPlayer(payload.PlayerID), payload.TotalPayout, payload.Bet),
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Mode", Value: formatMode(payload.Mode), Inline: true},
			{Name: "Combo", Value: fmt.Sprintf("x%d", payload.Combo), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: FooterLuckySpin},
	}

	return n.send(event.Type, embed)
}

func (n *SSENotifier) handleAchievementUnlocked(event SSEEvent) error {
	if n.notificationChanID == "" {
		return nil
	}

	var payload sse.AchievementPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		slog.Warn(sseLogMsgParseError, "error", err, "event_type", event.Type)
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏅 Achievement Unlocked: %s", payload.Title),
		Description: fmt.Sprintf("%s earned **%s**\n%s", displayPlayer(payload.PlayerID), payload.Title, payload.Description),
		Color:       ColorJackpot,
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterLuckySpin},
	}

	return n.send(event.Type, embed)
}

func (n *SSENotifier) send(eventType string, embed *discordgo.MessageEmbed) error {
	if _, err := n.sender.ChannelMessageSendEmbed(n.notificationChanID, embed); err != nil {
		slog.Error(sseLogMsgNotificationError, "event_type", eventType, "error", err)
		return err
	}
	slog.Debug(sseLogMsgNotificationSent, "event_type", eventType)
	return nil
}
