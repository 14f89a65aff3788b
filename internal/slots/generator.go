package slots

import (
	"fmt"
	"sort"

	"github.com/osse101/LuckySpin_Go/internal/domain"
)

// WeightedSymbol pairs a symbol with its draw weight
type WeightedSymbol struct {
	Symbol domain.Symbol
	Weight int
}

// WeightTable is a cumulative weight table. One RNG draw selects one symbol.
// Duplicate symbols accumulate weight.
type WeightTable struct {
	symbols    []domain.Symbol
	cumulative []int
	total      int
}

// NewWeightTable builds a cumulative table from entries, preserving first-seen order
func NewWeightTable(entries []WeightedSymbol) (*WeightTable, error) {
	index := make(map[domain.Symbol]int, len(entries))
	var symbols []domain.Symbol
	var weights []int

	for _, e := range entries {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: negative weight %d for %q", domain.ErrInvalidTable, e.Weight, e.Symbol)
		}
		if e.Weight == 0 {
			continue
		}
		if i, ok := index[e.Symbol]; ok {
			weights[i] += e.Weight
			continue
		}
		index[e.Symbol] = len(symbols)
		symbols = append(symbols, e.Symbol)
		weights = append(weights, e.Weight)
	}

	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: no symbols with positive weight", domain.ErrInvalidTable)
	}

	t := &WeightTable{
		symbols:    symbols,
		cumulative: make([]int, len(weights)),
	}
	for i, w := range weights {
		t.total += w
		t.cumulative[i] = t.total
	}
	return t, nil
}

// Pick maps a roll in [0, Total) to a symbol
func (t *WeightTable) Pick(roll int) domain.Symbol {
	i := sort.SearchInts(t.cumulative, roll+1)
	if i >= len(t.symbols) {
		i = len(t.symbols) - 1
	}
	return t.symbols[i]
}

// Total is the sum of all weights
func (t *WeightTable) Total() int {
	return t.total
}

// Symbols returns the distinct symbols in table order
func (t *WeightTable) Symbols() []domain.Symbol {
	out := make([]domain.Symbol, len(t.symbols))
	copy(out, t.symbols)
	return out
}

// Weight returns the accumulated weight of sym, 0 if absent
func (t *WeightTable) Weight(sym domain.Symbol) int {
	prev := 0
	for i, s := range t.symbols {
		if s == sym {
			return t.cumulative[i] - prev
		}
		prev = t.cumulative[i]
	}
	return 0
}

// Probability returns the draw probability of sym
func (t *WeightTable) Probability(sym domain.Symbol) float64 {
	return float64(t.Weight(sym)) / float64(t.total)
}

// Generator draws independent symbols from a weight table
type Generator struct {
	table *WeightTable
	rng   RNG
}

// NewGenerator creates a generator. A nil rng uses a crypto-seeded source.
func NewGenerator(table *WeightTable, rng RNG) *Generator {
	if rng == nil {
		rng = NewSecureSeededRNG()
	}
	return &Generator{table: table, rng: rng}
}

// NextSymbol draws one symbol
func (g *Generator) NextSymbol() domain.Symbol {
	return g.table.Pick(g.rng.Intn(g.table.total))
}

// NextGrid draws size independent symbols
func (g *Generator) NextGrid(size int) domain.Grid {
	grid := make(domain.Grid, size)
	for i := range grid {
		grid[i] = g.NextSymbol()
	}
	return grid
}
