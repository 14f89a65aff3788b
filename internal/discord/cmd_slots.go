package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/slots"
)

// Bet bounds advertised to Discord. The API enforces the configured limits.
const (
	discordMinBet = slots.MinBetAmount
	discordMaxBet = slots.MaxBetAmount
)

// modeChoices lists every game mode as a slash command choice
func modeChoices() []*discordgo.ApplicationCommandOptionChoice {
	modes := slots.AllModes()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(modes))
	for _, m := range modes {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  formatMode(m),
			Value: string(m),
		})
	}
	return choices
}

func betOption(required bool) *discordgo.ApplicationCommandOption {
	minValue := float64(discordMinBet)
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "bet",
		Description: fmt.Sprintf("Credits to bet (%d-%d)", discordMinBet, discordMaxBet),
		Required:    required,
		MinValue:    &minValue,
		MaxValue:    float64(discordMaxBet),
	}
}

func modeOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "mode",
		Description: "Game mode (default: classic)",
		Required:    false,
		Choices:     modeChoices(),
	}
}

// betAndMode reads the bet and mode options, defaulting the mode to classic
func betAndMode(i *discordgo.InteractionCreate) (int64, string) {
	options := optionMap(i)
	var bet int64
	if opt, ok := options["bet"]; ok {
		bet = opt.IntValue()
	}
	mode := string(domain.ModeClassic)
	if opt, ok := options["mode"]; ok {
		mode = opt.StringValue()
	}
	return bet, mode
}

// SpinCommand returns the /spin command definition and handler
func SpinCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "spin",
		Description: "Spin the reels!",
		Options: []*discordgo.ApplicationCommandOption{
			betOption(true),
			modeOption(),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		bet, mode := betAndMode(i)

		outcome, err := client.Spin(playerIDFor(user), bet, mode)
		if err != nil {
			slog.Error("Failed to spin", "error", err, "user_id", user.ID)
			respondFriendlyError(s, i, err.Error())
			return
		}

		sendEmbed(s, i, buildSpinEmbed(outcome, user.Username))
	}

	return cmd, handler
}

// buildSpinEmbed creates an embed for a settled spin
func buildSpinEmbed(o *domain.SpinOutcome, username string) *discordgo.MessageEmbed {
	title, color := tierStyle(o.Tier)

	fields := []*discordgo.MessageEmbedField{
		{Name: "Reels", Value: formatGrid(o.Grid), Inline: false},
		{Name: "Bet", Value: formatCredits(o.Bet), Inline: true},
		{Name: "Payout", Value: formatCredits(o.TotalPayout), Inline: true},
		{Name: "Balance", Value: formatCredits(o.Balance), Inline: true},
		{Name: "Combo", Value: fmt.Sprintf("x%d", o.Combo), Inline: true},
	}
	if len(o.Wins) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Lines",
			Value:  fmt.Sprintf("%d winning line(s)", len(o.Wins)),
			Inline: true,
		})
	}
	if o.Mode == domain.ModeMission {
		progress := fmt.Sprintf("%d%%", o.MissionProgress)
		if o.MissionCleared {
			progress = "Cleared! 🏁"
		}
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Mission", Value: progress, Inline: true})
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: o.Message,
		Color:       color,
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s • %s mode", username, formatMode(o.Mode)),
		},
	}
}

// AutoSpinCommand returns the /autospin command with start and stop subcommands
func AutoSpinCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "autospin",
		Description: "Let the machine spin for you",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "start",
				Description: "Start spinning automatically until you run out of credits",
				Options: []*discordgo.ApplicationCommandOption{
					betOption(true),
					modeOption(),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "stop",
				Description: "Stop auto-spin after the current spin",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		options := i.ApplicationCommandData().Options
		if len(options) == 0 {
			return
		}
		sub := options[0]
		playerID := playerIDFor(getInteractionUser(i))

		handleEmbedResponse(s, i, func() (string, error) {
			if sub.Name == "stop" {
				if err := client.StopAutoSpin(playerID); err != nil {
					return "", err
				}
				return "Auto-spin will stop after the current spin.", nil
			}

			bet, mode := subcommandBetAndMode(sub)
			if err := client.StartAutoSpin(playerID, bet, mode); err != nil {
				return "", err
			}
			return fmt.Sprintf("Auto-spin started at %s per spin in %s mode.", formatCredits(bet), formatMode(domain.GameMode(mode))), nil
		}, ResponseConfig{Title: "🔁 Auto-Spin", Color: ColorInfo})
	}

	return cmd, handler
}

func subcommandBetAndMode(sub *discordgo.ApplicationCommandInteractionDataOption) (int64, string) {
	var bet int64
	mode := string(domain.ModeClassic)
	for _, opt := range sub.Options {
		switch opt.Name {
		case "bet":
			bet = opt.IntValue()
		case "mode":
			mode = opt.StringValue()
		}
	}
	return bet, mode
}
