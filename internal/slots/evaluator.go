package slots

import (
	"github.com/osse101/LuckySpin_Go/internal/domain"
)

// Evaluator finds winning paylines on a grid. It holds no mutable state.
type Evaluator struct {
	table *Paytable
}

// NewEvaluator creates an evaluator for the given paytable
func NewEvaluator(table *Paytable) *Evaluator {
	return &Evaluator{table: table}
}

// Evaluate returns one WinResult per winning payline, in payline order.
// Lines whose indices fall outside the grid are skipped.
func (e *Evaluator) Evaluate(grid domain.Grid) []domain.WinResult {
	var wins []domain.WinResult
	for i, line := range e.table.Paylines {
		if line[0] >= len(grid) || line[1] >= len(grid) || line[2] >= len(grid) {
			continue
		}
		sym, mult, ok := e.evaluateLine([3]domain.Symbol{grid[line[0]], grid[line[1]], grid[line[2]]})
		if !ok {
			continue
		}
		wins = append(wins, domain.WinResult{
			LineIndex:  i,
			Line:       line,
			Symbol:     sym,
			Payout:     e.table.PayoutFor(sym),
			Multiplier: mult,
		})
	}
	return wins
}

// evaluateLine applies the two line rules:
// an exact non-wild triple pays x1; with any wild, the remaining non-wild
// symbols must number at least two and be equal to pay x2. All-wild does not pay.
func (e *Evaluator) evaluateLine(cells [3]domain.Symbol) (domain.Symbol, int, bool) {
	var rest [3]domain.Symbol
	n := 0
	for _, c := range cells {
		if e.table.IsWild(c) {
			continue
		}
		rest[n] = c
		n++
	}

	if n == 3 {
		if rest[0] == rest[1] && rest[1] == rest[2] {
			return rest[0], LineMultiplierExact, true
		}
		return "", 0, false
	}

	if n >= 2 && rest[0] == rest[1] {
		return rest[0], LineMultiplierWild, true
	}
	return "", 0, false
}
