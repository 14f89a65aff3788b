package slots

import "time"

// Symbol variants
const (
	VariantClassic = "classic"
	VariantNumeric = "numeric"
	VariantReel3   = "reel3"
)

// Grid sizes
const (
	GridCells3x3 = 9
	GridCellsRow = 3
	ReelColumns  = 3
)

// Classic emoji symbols
const (
	SymbolParty   = "🎊"
	SymbolBolt    = "⚡"
	SymbolFire    = "🔥"
	SymbolMoney   = "💰"
	SymbolTarget  = "🎯"
	SymbolClover  = "🍀"
	SymbolBoom    = "💥"
	SymbolStar    = "🌟"
	SymbolDiamond = "💎"
)

// Tier weights for the classic calibration (out of 6000)
const (
	ClassicWeightLow     = 2700 // 45%
	ClassicWeightMedium  = 1800 // 30%
	ClassicWeightHigh    = 1020 // 17%
	ClassicWeightSpecial = 480  // 8%
)

// DefaultSymbolPayout applies to symbols missing from a paytable
const DefaultSymbolPayout = 1

// Payline multipliers
const (
	LineMultiplierExact = 1
	LineMultiplierWild  = 2
)

// Tier thresholds as multiples of the bet
const (
	DefaultBigWinMultiple  = 20
	DefaultJackpotMultiple = 50
)

// Combo steps
const (
	ComboStepWin     = 1
	ComboStepBigWin  = 2
	ComboStepJackpot = 3
	ComboResetValue  = 1
)

// Mode rules
const (
	PremiumMultiplier          = "1.5"
	ChallengeMaxLines          = 4
	ChallengeComboThreshold    = 3
	ChallengeBonusMultiple     = 5
	MissionProgressStep        = 33
	MissionProgressMax         = 100
	MissionClearThreshold      = 99
	MissionBonusMultiple       = 10
	AchievementComboMasterSize = 5
)

// Spin timing defaults
const (
	DefaultBaseSpins         = 15
	DefaultSpinStep          = 3
	DefaultDrawInterval      = 80 * time.Millisecond
	DefaultColumnStagger     = 15 * time.Millisecond
	DefaultAutoSpinWinDelay  = 1500 * time.Millisecond
	DefaultAutoSpinLossDelay = 1000 * time.Millisecond
)

// Betting limits
const (
	DefaultStartingBalance = 10000
	DefaultBet             = 100
	MinBetAmount           = 10
	MaxBetAmount           = 10000
)

// Metric labels
const (
	MetricOutcomeWin    = "win"
	MetricOutcomeLoss   = "loss"
	MetricRejectFunds   = "insufficient_funds"
	MetricRejectBusy    = "in_progress"
	MetricRejectInvalid = "invalid_bet"
)
