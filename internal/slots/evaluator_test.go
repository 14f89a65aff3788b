package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/osse101/LuckySpin_Go/internal/domain"
)

func TestEvaluator_LineRules(t *testing.T) {
	eval := NewEvaluator(testPaytable(t))

	tests := []struct {
		name     string
		line     []string
		wantWin  bool
		wantSym  domain.Symbol
		wantMult int
	}{
		{"exact triple", []string{"3", "3", "3"}, true, "3", LineMultiplierExact},
		{"no match", []string{"3", "4", "5"}, false, "", 0},
		{"pair without wild", []string{"3", "3", "4"}, false, "", 0},
		{"one wild completes pair", []string{"3", "3", "W"}, true, "3", LineMultiplierWild},
		{"wild in the middle", []string{"2", "W", "2"}, true, "2", LineMultiplierWild},
		{"wild first", []string{"W", "5", "5"}, true, "5", LineMultiplierWild},
		{"wild with mismatched pair", []string{"3", "W", "4"}, false, "", 0},
		{"two wilds leave one symbol", []string{"W", "W", "3"}, false, "", 0},
		{"all wild", []string{"W", "W", "W"}, false, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// place the line on the top row, fill the rest with symbols that cannot complete any line
			g := grid(tt.line[0], tt.line[1], tt.line[2], "4", "5", "6", "8", "9", "1")
			wins := eval.Evaluate(g)

			var top []domain.WinResult
			for _, w := range wins {
				if w.LineIndex == 0 {
					top = append(top, w)
				}
			}
			if !tt.wantWin {
				assert.Empty(t, top)
				return
			}
			require.Len(t, top, 1)
			assert.Equal(t, tt.wantSym, top[0].Symbol)
			assert.Equal(t, tt.wantMult, top[0].Multiplier)
			assert.Equal(t, domain.Payline{0, 1, 2}, top[0].Line)
		})
	}
}

func TestEvaluator_AllEightLines(t *testing.T) {
	eval := NewEvaluator(testPaytable(t))

	wins := eval.Evaluate(grid("2", "2", "2", "2", "2", "2", "2", "2", "2"))
	require.Len(t, wins, 8)
	for i, w := range wins {
		assert.Equal(t, i, w.LineIndex)
		assert.Equal(t, StandardPaylines[i], w.Line)
		assert.Equal(t, 2, w.Payout)
		assert.Equal(t, LineMultiplierExact, w.Multiplier)
	}
}

func TestEvaluator_DiagonalsAndColumns(t *testing.T) {
	eval := NewEvaluator(testPaytable(t))

	// main diagonal of 3s, middle column of 5s with a wild at the centre
	wins := eval.Evaluate(grid(
		"3", "5", "8",
		"1", "W", "2",
		"9", "5", "3",
	))
	require.Len(t, wins, 2)
	assert.Equal(t, domain.Payline{1, 4, 7}, wins[0].Line)
	assert.Equal(t, domain.Symbol("5"), wins[0].Symbol)
	assert.Equal(t, LineMultiplierWild, wins[0].Multiplier)
	assert.Equal(t, domain.Payline{0, 4, 8}, wins[1].Line)
	assert.Equal(t, domain.Symbol("3"), wins[1].Symbol)
}

func TestEvaluator_UnlistedSymbolPaysDefault(t *testing.T) {
	eval := NewEvaluator(testPaytable(t))
	wins := eval.Evaluate(grid("9", "9", "9", "1", "2", "3", "4", "5", "6"))
	require.Len(t, wins, 1)
	assert.Equal(t, DefaultSymbolPayout, wins[0].Payout)
}

func TestEvaluator_RowLayout(t *testing.T) {
	tables, err := LoadPaytables("")
	require.NoError(t, err)
	reel := tables[VariantReel3]
	eval := NewEvaluator(reel)

	wins := eval.Evaluate(grid(SymbolDiamond, SymbolStar, SymbolDiamond))
	require.Len(t, wins, 1)
	assert.Equal(t, domain.Symbol(SymbolDiamond), wins[0].Symbol)
	assert.Equal(t, 10, wins[0].Payout)
	assert.Equal(t, LineMultiplierWild, wins[0].Multiplier)

	assert.Empty(t, eval.Evaluate(grid(SymbolStar, SymbolStar, SymbolStar)))
}

func TestEvaluator_ShortGridSkipsLines(t *testing.T) {
	eval := NewEvaluator(testPaytable(t))
	wins := eval.Evaluate(grid("1", "1", "1"))
	require.Len(t, wins, 1)
	assert.Equal(t, 0, wins[0].LineIndex)
}

func TestEvaluator_Idempotent(t *testing.T) {
	eval := NewEvaluator(testPaytable(t))

	rapid.Check(t, func(t *rapid.T) {
		cells := rapid.SliceOfN(rapid.SampledFrom(numericSymbols), 9, 9).Draw(t, "grid")
		g := grid(cells...)
		before := g.Clone()

		first := eval.Evaluate(g)
		second := eval.Evaluate(g)

		assert.Equal(t, first, second)
		assert.Equal(t, before, g, "evaluation must not mutate the grid")

		for _, w := range first {
			assert.NotEqual(t, wild, w.Symbol, "a wild is never the winning symbol")
			assert.Contains(t, []int{LineMultiplierExact, LineMultiplierWild}, w.Multiplier)
		}
	})
}

func BenchmarkEvaluator_Evaluate(b *testing.B) {
	eval := NewEvaluator(testPaytable(b))
	g := grid("1", "W", "1", "2", "1", "W", "1", "3", "1")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = eval.Evaluate(g)
	}
}
