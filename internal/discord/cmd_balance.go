package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// BalanceCommand returns the /balance command definition and handler
func BalanceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "balance",
		Description: "Show your credits, combo and mission progress",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		playerID := playerIDFor(getInteractionUser(i))

		handleEmbedResponse(s, i, func() (string, error) {
			info, err := client.GetBalance(playerID)
			if err != nil {
				return "", err
			}
			return formatBalance(info), nil
		}, ResponseConfig{Title: "💰 Balance", Color: ColorInfo})
	}

	return cmd, handler
}

func formatBalance(info *BalanceInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", formatCredits(info.Balance))
	fmt.Fprintf(&b, "Combo: x%d\n", info.Combo)
	b.WriteString(printer.Sprintf("Score: %d\n", info.Score))
	if info.MissionProgress > 0 {
		fmt.Fprintf(&b, "Mission: %d%%\n", info.MissionProgress)
	}
	if info.AutoSpin.Running {
		fmt.Fprintf(&b, "Auto-spin: running (%d spins)", info.AutoSpin.Spins)
	}
	return strings.TrimRight(b.String(), "\n")
}
