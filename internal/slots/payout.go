package slots

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/LuckySpin_Go/internal/domain"
)

// Thresholds are tier boundaries expressed as multiples of the bet
type Thresholds struct {
	BigWin  int64 `yaml:"big_win"`
	Jackpot int64 `yaml:"jackpot"`
}

// DefaultThresholds returns the standard 20x / 50x boundaries
func DefaultThresholds() Thresholds {
	return Thresholds{BigWin: DefaultBigWinMultiple, Jackpot: DefaultJackpotMultiple}
}

// Calculator turns payline wins into a payout and a tier
type Calculator struct {
	table      *Paytable
	thresholds Thresholds
}

// NewCalculator creates a calculator. Zero thresholds fall back to the defaults.
func NewCalculator(table *Paytable, thresholds Thresholds) *Calculator {
	def := DefaultThresholds()
	if thresholds.BigWin <= 0 {
		thresholds.BigWin = def.BigWin
	}
	if thresholds.Jackpot <= 0 {
		thresholds.Jackpot = def.Jackpot
	}
	return &Calculator{table: table, thresholds: thresholds}
}

// Thresholds returns the active tier boundaries
func (c *Calculator) Thresholds() Thresholds {
	return c.thresholds
}

// ComputePayout sums bet x symbolPayout x lineMultiplier x modeMultiplier over all wins.
// Each line's multiple of the bet is truncated to a whole number, so the total is
// always an integer multiple of bet. No wins always yields zero.
//
// Truncation is per line and costs the player on fractional multiples: a premium
// (1.5x) line with payout 3 at bet 100 pays 400, not 450, and a payout-1 line pays
// the same under premium as under classic.
func (c *Calculator) ComputePayout(wins []domain.WinResult, bet int64, modeMultiplier decimal.Decimal) domain.Payout {
	if len(wins) == 0 || bet <= 0 {
		return domain.Payout{Total: 0, Tier: domain.ResultNone}
	}

	var multiple int64
	for _, w := range wins {
		line := decimal.NewFromInt(int64(w.Payout)).
			Mul(decimal.NewFromInt(int64(w.Multiplier))).
			Mul(modeMultiplier).
			Truncate(0)
		multiple += line.IntPart()
	}

	total := multiple * bet
	return domain.Payout{Total: total, Tier: c.Classify(total, bet, wins)}
}

// Classify assigns the tier for a total. Priority: jackpot, big win, win, none.
// Any win on a special symbol is a jackpot regardless of amount.
func (c *Calculator) Classify(total, bet int64, wins []domain.WinResult) domain.ResultTier {
	if len(wins) == 0 {
		return domain.ResultNone
	}
	if total >= bet*c.thresholds.Jackpot || c.hasSpecial(wins) {
		return domain.ResultJackpot
	}
	if total >= bet*c.thresholds.BigWin {
		return domain.ResultBigWin
	}
	return domain.ResultWin
}

func (c *Calculator) hasSpecial(wins []domain.WinResult) bool {
	for _, w := range wins {
		if c.table.IsSpecial(w.Symbol) {
			return true
		}
	}
	return false
}

// NextCombo applies the combo rule: +1 win, +2 big win, +3 jackpot, reset on a loss
func NextCombo(current int, tier domain.ResultTier, resetValue int) int {
	switch tier {
	case domain.ResultJackpot:
		return current + ComboStepJackpot
	case domain.ResultBigWin:
		return current + ComboStepBigWin
	case domain.ResultWin:
		return current + ComboStepWin
	default:
		return resetValue
	}
}
