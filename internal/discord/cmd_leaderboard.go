package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Leaderboard sizes offered to Discord
const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 25
)

// LeaderboardCommand returns the /leaderboard command definition and handler
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minValue := float64(1)
	cmd := &discordgo.ApplicationCommand{
		Name:        "leaderboard",
		Description: "Show the best runs",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "limit",
				Description: "Number of entries (default: 10)",
				Required:    false,
				MinValue:    &minValue,
				MaxValue:    maxLeaderboardLimit,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		limit := defaultLeaderboardLimit
		if opt, ok := optionMap(i)["limit"]; ok {
			limit = int(opt.IntValue())
		}
		playerID := playerIDFor(getInteractionUser(i))

		handleEmbedResponse(s, i, func() (string, error) {
			info, err := client.GetLeaderboard(playerID, limit)
			if err != nil {
				return "", err
			}
			return formatLeaderboard(info, playerID), nil
		}, ResponseConfig{Title: "🏆 Leaderboard", Color: ColorJackpot})
	}

	return cmd, handler
}

func formatLeaderboard(info *LeaderboardInfo, playerID string) string {
	if len(info.Entries) == 0 {
		return "No runs recorded yet. Be the first with `/spin`!"
	}

	lines := make([]string, 0, len(info.Entries)+2)
	onPage := false
	for _, e := range info.Entries {
		lines = append(lines, formatRank(e))
		if e.PlayerID == playerID {
			onPage = true
		}
	}
	if info.Player != nil && !onPage {
		lines = append(lines, "", "Your best: "+formatRank(*info.Player))
	}
	return strings.Join(lines, "\n")
}
