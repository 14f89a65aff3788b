package slots

import (
	"github.com/osse101/LuckySpin_Go/internal/domain"
)

// Resolution is the pure result of scoring one grid
type Resolution struct {
	Wins            []domain.WinResult
	LinePayout      int64
	Bonus           int64
	Total           int64
	Tier            domain.ResultTier
	Combo           int
	MissionProgress int
	MissionCleared  bool
	Message         string
}

// Engine bundles the pieces that score a settled grid
type Engine struct {
	table      *Paytable
	evaluator  *Evaluator
	calculator *Calculator
	comboReset int
}

// NewEngine creates an engine for one paytable
func NewEngine(table *Paytable, thresholds Thresholds, comboReset int) *Engine {
	return &Engine{
		table:      table,
		evaluator:  NewEvaluator(table),
		calculator: NewCalculator(table, thresholds),
		comboReset: comboReset,
	}
}

// Paytable returns the engine's paytable
func (e *Engine) Paytable() *Paytable {
	return e.table
}

// Calculator returns the engine's payout calculator
func (e *Engine) Calculator() *Calculator {
	return e.calculator
}

// NewGenerator returns a generator drawing from the engine's weight table
func (e *Engine) NewGenerator(rng RNG) *Generator {
	return NewGenerator(e.table.Weights, rng)
}

// Resolve scores grid under the given mode. The mode bonus is added before the
// tier is assigned, so a bonus can lift a spin into a higher tier.
func (e *Engine) Resolve(grid domain.Grid, bet int64, rules ModeRules, state ModeState) Resolution {
	wins := rules.FilterWins(e.evaluator.Evaluate(grid))
	payout := e.calculator.ComputePayout(wins, bet, rules.Multiplier)
	bonus := rules.Bonus(bet, len(wins) > 0, state)

	total := payout.Total + bonus.Amount
	tier := e.calculator.Classify(total, bet, wins)

	return Resolution{
		Wins:            wins,
		LinePayout:      payout.Total,
		Bonus:           bonus.Amount,
		Total:           total,
		Tier:            tier,
		Combo:           NextCombo(state.Combo, tier, e.comboReset),
		MissionProgress: bonus.MissionProgress,
		MissionCleared:  bonus.MissionCleared,
		Message:         bonus.Message,
	}
}
