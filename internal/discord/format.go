package discord

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/LuckySpin_Go/internal/domain"
)

var (
	printer   = message.NewPrinter(language.English)
	titleCase = cases.Title(language.English)
)

// formatCredits renders an amount with thousands separators
func formatCredits(n int64) string {
	return printer.Sprintf("%d credits", n)
}

// formatMode turns a mode key like "challenge" into "Challenge"
func formatMode(mode domain.GameMode) string {
	return titleCase.String(string(mode))
}

// formatTier turns "big_win" into "Big Win"
func formatTier(tier domain.ResultTier) string {
	return titleCase.String(strings.ReplaceAll(string(tier), "_", " "))
}

// formatGrid lays a row-major grid out in rows of three
func formatGrid(g domain.Grid) string {
	var b strings.Builder
	for i, sym := range g {
		if i > 0 {
			if i%3 == 0 {
				b.WriteString("\n")
			} else {
				b.WriteString(" | ")
			}
		}
		b.WriteString(string(sym))
	}
	return b.String()
}

// tierStyle returns the embed title and color for a result tier
func tierStyle(tier domain.ResultTier) (string, int) {
	switch tier {
	case domain.ResultJackpot:
		return "🌟 MEGA WIN! 🌟", ColorJackpot
	case domain.ResultBigWin:
		return "🎉 BIG WIN! 🎉", ColorBigWin
	case domain.ResultWin:
		return "🎰 Win! 🎰", ColorWin
	default:
		return "🎰 LuckySpin 🎰", ColorLoss
	}
}

// formatRank renders a leaderboard line
func formatRank(e domain.LeaderboardEntry) string {
	medal := fmt.Sprintf("#%d", e.Rank)
	switch e.Rank {
	case 1:
		medal = "🥇"
	case 2:
		medal = "🥈"
	case 3:
		medal = "🥉"
	}
	return printer.Sprintf("%s %s: %d pts (combo x%d)", medal, displayPlayer(e.PlayerID), e.Score, e.Combos)
}

// displayPlayer shows Discord players as mentions and everyone else verbatim
func displayPlayer(playerID string) string {
	if id, ok := strings.CutPrefix(playerID, PlayerIDPrefix); ok && id != "" {
		return "<@" + id + ">"
	}
	return playerID
}
