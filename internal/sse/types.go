package sse

import (
	"time"

	"github.com/osse101/LuckySpin_Go/internal/domain"
)

// SpinResolvedPayload is what a presentation layer needs to show a finished spin
type SpinResolvedPayload struct {
	SpinID          string             `json:"spin_id"`
	PlayerID        string             `json:"player_id"`
	Mode            domain.GameMode    `json:"mode"`
	Rows            [][]domain.Symbol  `json:"rows"`
	Wins            []domain.WinResult `json:"wins"`
	Bet             int64              `json:"bet"`
	TotalPayout     int64              `json:"total_payout"`
	Tier            domain.ResultTier  `json:"tier"`
	Combo           int                `json:"combo"`
	Balance         int64              `json:"balance"`
	MissionProgress int                `json:"mission_progress,omitempty"`
	Message         string             `json:"message"`
	Source          string             `json:"source,omitempty"` // "manual" or "autospin"
}

// SpinRejectedPayload explains why a spin did not start
type SpinRejectedPayload struct {
	PlayerID string `json:"player_id"`
	Bet      int64  `json:"bet"`
	Reason   string `json:"reason"`
}

// AchievementPayload announces a newly unlocked achievement
type AchievementPayload struct {
	PlayerID    string `json:"player_id"`
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// BalanceResetPayload announces a restored balance
type BalanceResetPayload struct {
	PlayerID string    `json:"player_id"`
	Balance  int64     `json:"balance"`
	ResetAt  time.Time `json:"reset_at"`
}

// gridRows splits a row-major grid into rows of three
func gridRows(g domain.Grid) [][]domain.Symbol {
	rows := make([][]domain.Symbol, 0, (len(g)+2)/3)
	for i := 0; i < len(g); i += 3 {
		end := i + 3
		if end > len(g) {
			end = len(g)
		}
		row := make([]domain.Symbol, end-i)
		copy(row, g[i:end])
		rows = append(rows, row)
	}
	return rows
}
