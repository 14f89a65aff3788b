package slots

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/osse101/LuckySpin_Go/internal/domain"
)

var one = decimal.NewFromInt(1)

func TestCalculator_EndToEndRowOfOnes(t *testing.T) {
	pt := testPaytable(t)
	wins := NewEvaluator(pt).Evaluate(grid("1", "1", "1", "2", "3", "4", "5", "6", "7"))
	require.Len(t, wins, 1)

	payout := NewCalculator(pt, DefaultThresholds()).ComputePayout(wins, 100, one)
	assert.Equal(t, int64(1000), payout.Total)
	assert.Equal(t, domain.ResultWin, payout.Tier)
}

func TestCalculator_EndToEndRowOfSevensIsJackpot(t *testing.T) {
	pt := testPaytable(t)
	wins := NewEvaluator(pt).Evaluate(grid("7", "7", "7", "1", "2", "3", "4", "5", "6"))
	require.Len(t, wins, 1)

	payout := NewCalculator(pt, DefaultThresholds()).ComputePayout(wins, 100, one)
	assert.Equal(t, int64(2000), payout.Total)
	assert.Equal(t, domain.ResultJackpot, payout.Tier, "7 is special, so any 7 win is a jackpot")
}

func TestCalculator_ClassifyBoundaries(t *testing.T) {
	calc := NewCalculator(testPaytable(t), DefaultThresholds())
	wins := []domain.WinResult{{Symbol: "3", Payout: 3, Multiplier: 1}}

	tests := []struct {
		total int64
		want  domain.ResultTier
	}{
		{1999, domain.ResultWin},
		{2000, domain.ResultBigWin},
		{4999, domain.ResultBigWin},
		{5000, domain.ResultJackpot},
		{100, domain.ResultWin},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, calc.Classify(tt.total, 100, wins), "total %d", tt.total)
	}

	assert.Equal(t, domain.ResultNone, calc.Classify(5000, 100, nil))
}

func TestCalculator_NoWinsIsZero(t *testing.T) {
	calc := NewCalculator(testPaytable(t), DefaultThresholds())
	payout := calc.ComputePayout(nil, 100, one)
	assert.Equal(t, domain.Payout{Total: 0, Tier: domain.ResultNone}, payout)
}

func TestCalculator_WildAndModeMultipliers(t *testing.T) {
	calc := NewCalculator(testPaytable(t), DefaultThresholds())
	wins := []domain.WinResult{
		{Symbol: "3", Payout: 3, Multiplier: LineMultiplierWild},
		{Symbol: "2", Payout: 2, Multiplier: LineMultiplierExact},
	}

	// (3*2 + 2*1) * 100
	assert.Equal(t, int64(800), calc.ComputePayout(wins, 100, one).Total)

	// premium: 3*2*1.5 = 9, 2*1*1.5 = 3
	premium := decimal.RequireFromString(PremiumMultiplier)
	assert.Equal(t, int64(1200), calc.ComputePayout(wins, 100, premium).Total)

	// premium on an odd payout truncates per line: 3*1*1.5 = 4.5 -> 4
	odd := []domain.WinResult{{Symbol: "3", Payout: 3, Multiplier: LineMultiplierExact}}
	assert.Equal(t, int64(400), calc.ComputePayout(odd, 100, premium).Total)
}

func TestCalculator_PremiumTruncationCost(t *testing.T) {
	calc := NewCalculator(testPaytable(t), DefaultThresholds())
	premium := decimal.RequireFromString(PremiumMultiplier)

	tests := []struct {
		name    string
		payout  int
		classic int64
		premium int64
	}{
		{"payout 1 gains nothing", 1, 100, 100},
		{"payout 2 is exact", 2, 200, 300},
		{"payout 3 loses half a bet", 3, 300, 400},
		{"payout 7 loses half a bet", 7, 700, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wins := []domain.WinResult{{Symbol: "3", Payout: tt.payout, Multiplier: LineMultiplierExact}}
			assert.Equal(t, tt.classic, calc.ComputePayout(wins, 100, one).Total)
			assert.Equal(t, tt.premium, calc.ComputePayout(wins, 100, premium).Total)
		})
	}
}

func TestCalculator_CustomThresholds(t *testing.T) {
	calc := NewCalculator(testPaytable(t), Thresholds{BigWin: 5, Jackpot: 10})
	wins := []domain.WinResult{{Symbol: "3", Payout: 3, Multiplier: 1}}
	assert.Equal(t, domain.ResultBigWin, calc.Classify(500, 100, wins))
	assert.Equal(t, domain.ResultJackpot, calc.Classify(1000, 100, wins))
	assert.Equal(t, Thresholds{BigWin: 5, Jackpot: 10}, calc.Thresholds())

	def := NewCalculator(testPaytable(t), Thresholds{})
	assert.Equal(t, DefaultThresholds(), def.Thresholds())
}

func TestCalculator_Conservation(t *testing.T) {
	pt := testPaytable(t)
	eval := NewEvaluator(pt)
	calc := NewCalculator(pt, DefaultThresholds())

	rapid.Check(t, func(t *rapid.T) {
		cells := rapid.SliceOfN(rapid.SampledFrom(numericSymbols), 9, 9).Draw(t, "grid")
		bet := rapid.Int64Range(1, 10000).Draw(t, "bet")
		mode := rapid.SampledFrom(AllModes()).Draw(t, "mode")

		rules, err := RulesFor(mode)
		require.NoError(t, err)

		wins := rules.FilterWins(eval.Evaluate(grid(cells...)))
		payout := calc.ComputePayout(wins, bet, rules.Multiplier)

		assert.Zero(t, payout.Total%bet, "payout %d is not a multiple of bet %d", payout.Total, bet)
		assert.GreaterOrEqual(t, payout.Total, int64(0))
		if len(wins) == 0 {
			assert.Zero(t, payout.Total)
			assert.Equal(t, domain.ResultNone, payout.Tier)
		} else {
			assert.NotEqual(t, domain.ResultNone, payout.Tier)
		}
	})
}

func TestNextCombo(t *testing.T) {
	assert.Equal(t, 2, NextCombo(1, domain.ResultWin, ComboResetValue))
	assert.Equal(t, 3, NextCombo(1, domain.ResultBigWin, ComboResetValue))
	assert.Equal(t, 4, NextCombo(1, domain.ResultJackpot, ComboResetValue))
	assert.Equal(t, 1, NextCombo(9, domain.ResultNone, ComboResetValue), "a loss resets the combo")
	assert.Equal(t, 0, NextCombo(9, domain.ResultNone, 0))
}
