package domain

import (
	"strings"
	"time"
)

// Symbol is an opaque reel token. Identity is string equality.
type Symbol string

// SymbolTier groups symbols by rarity for the weighted draw
type SymbolTier string

const (
	TierLow     SymbolTier = "low"
	TierMedium  SymbolTier = "medium"
	TierHigh    SymbolTier = "high"
	TierSpecial SymbolTier = "special"
)

// Grid is the row-major symbol layout of a spin (9 cells for 3x3, 3 cells for a single reel row)
type Grid []Symbol

// Clone returns a copy that shares no backing array with g
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	copy(out, g)
	return out
}

// String renders the grid one row per line
func (g Grid) String() string {
	var sb strings.Builder
	for i, s := range g {
		if i > 0 {
			if i%3 == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteString(" | ")
			}
		}
		sb.WriteString(string(s))
	}
	return sb.String()
}

// Payline is an ordered triple of grid indices
type Payline [3]int

// WinResult describes one winning payline
type WinResult struct {
	LineIndex  int     `json:"line_index"`
	Line       Payline `json:"line"`
	Symbol     Symbol  `json:"symbol"`
	Payout     int     `json:"payout"`     // symbol payout factor from the paytable
	Multiplier int     `json:"multiplier"` // 1 for an exact triple, 2 with wild substitution
}

// ResultTier classifies a spin by how much it paid
type ResultTier string

const (
	ResultNone    ResultTier = "none"
	ResultWin     ResultTier = "win"
	ResultBigWin  ResultTier = "big_win"
	ResultJackpot ResultTier = "jackpot" // shown to players as MEGA WIN
)

// Payout is the output of the payout calculator
type Payout struct {
	Total int64      `json:"total"`
	Tier  ResultTier `json:"tier"`
}

// GameMode selects the rule variant applied on top of the base payout
type GameMode string

const (
	ModeClassic   GameMode = "classic"
	ModePremium   GameMode = "premium"
	ModeChallenge GameMode = "challenge"
	ModeMission   GameMode = "mission"
)

// SpinSource records who asked for a spin
type SpinSource string

const (
	SourceManual   SpinSource = "manual"
	SourceAutoSpin SpinSource = "autospin"
)

// SpinState is the lifecycle state of the spin sequencer
type SpinState int

const (
	SpinIdle SpinState = iota
	SpinSpinning
	SpinSettling
	SpinResolved
)

func (s SpinState) String() string {
	switch s {
	case SpinIdle:
		return "idle"
	case SpinSpinning:
		return "spinning"
	case SpinSettling:
		return "settling"
	case SpinResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// SpinOutcome is the aggregate produced once per resolved spin
type SpinOutcome struct {
	SpinID          string      `json:"spin_id"`
	PlayerID        string      `json:"player_id"`
	Mode            GameMode    `json:"mode"`
	Source          SpinSource  `json:"source,omitempty"`
	Grid            Grid        `json:"grid"`
	Wins            []WinResult `json:"wins"`
	Bet             int64       `json:"bet"`
	LinePayout      int64       `json:"line_payout"`
	Bonus           int64       `json:"bonus"`
	TotalPayout     int64       `json:"total_payout"`
	Tier            ResultTier  `json:"tier"`
	Combo           int         `json:"combo"`
	Balance         int64       `json:"balance"`
	Score           int64       `json:"score"`
	MissionProgress int         `json:"mission_progress,omitempty"`
	MissionCleared  bool        `json:"mission_cleared,omitempty"`
	Message         string      `json:"message"`
	ResolvedAt      time.Time   `json:"resolved_at"`
}

// IsWin reports whether the spin paid anything
func (o SpinOutcome) IsWin() bool {
	return len(o.Wins) > 0
}
