package slots

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/utils"
)

// ModeState is the pre-spin session state that mode rules read
type ModeState struct {
	Combo           int
	MissionProgress int
}

// ModeBonus is what a mode adds after the line payout
type ModeBonus struct {
	Amount          int64
	MissionProgress int
	MissionCleared  bool
	Message         string
}

// ModeRules describes one game mode
type ModeRules struct {
	Mode       domain.GameMode
	Multiplier decimal.Decimal
	MaxLines   int // 0 counts every winning line
}

// RulesFor returns the rules of a mode. An empty mode is classic.
func RulesFor(mode domain.GameMode) (ModeRules, error) {
	switch mode {
	case domain.ModeClassic, "":
		return ModeRules{Mode: domain.ModeClassic, Multiplier: decimal.NewFromInt(1)}, nil
	case domain.ModePremium:
		return ModeRules{Mode: domain.ModePremium, Multiplier: decimal.RequireFromString(PremiumMultiplier)}, nil
	case domain.ModeChallenge:
		return ModeRules{Mode: domain.ModeChallenge, Multiplier: decimal.NewFromInt(1), MaxLines: ChallengeMaxLines}, nil
	case domain.ModeMission:
		return ModeRules{Mode: domain.ModeMission, Multiplier: decimal.NewFromInt(1)}, nil
	default:
		return ModeRules{}, fmt.Errorf("%w: %s", domain.ErrUnknownMode, mode)
	}
}

// AllModes lists the supported modes
func AllModes() []domain.GameMode {
	return []domain.GameMode{domain.ModeClassic, domain.ModePremium, domain.ModeChallenge, domain.ModeMission}
}

// FilterWins keeps only the first MaxLines wins
func (r ModeRules) FilterWins(wins []domain.WinResult) []domain.WinResult {
	if r.MaxLines <= 0 || len(wins) <= r.MaxLines {
		return wins
	}
	return wins[:r.MaxLines]
}

// Bonus computes the mode's extra payout. Bonuses are whole multiples of bet.
func (r ModeRules) Bonus(bet int64, won bool, state ModeState) ModeBonus {
	out := ModeBonus{MissionProgress: state.MissionProgress}
	if !won {
		return out
	}

	switch r.Mode {
	case domain.ModeChallenge:
		if state.Combo >= ChallengeComboThreshold {
			out.Amount = bet * ChallengeBonusMultiple
			out.Message = "🔥 Challenge cleared! Special bonus paid"
		}
	case domain.ModeMission:
		if state.MissionProgress >= MissionClearThreshold {
			out.Amount = bet * MissionBonusMultiple
			out.MissionProgress = 0
			out.MissionCleared = true
			out.Message = "🎯 Mission complete! Bonus paid"
		} else {
			out.MissionProgress = utils.ClampInt(state.MissionProgress+MissionProgressStep, 0, MissionProgressMax)
		}
	}
	return out
}
