package slots

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/event"
	"github.com/osse101/LuckySpin_Go/internal/wallet"
)

const wild = domain.Symbol("W")

// testingT is satisfied by *testing.T, *testing.B and *rapid.T
type testingT interface {
	require.TestingT
	Helper()
	Fatal(args ...any)
}

// numericSymbols are drawn with equal weight, so SequenceRNG value i picks numericSymbols[i]
var numericSymbols = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "W"}

// testPaytable is a 3x3 table with a wild "W", special "7", payout(1)=10 and payout(7)=20
func testPaytable(t testingT) *Paytable {
	t.Helper()
	pt, err := BuildPaytable("test", VariantSpec{
		Layout:  LayoutGrid,
		Wild:    string(wild),
		Special: []string{"7"},
		Tiers: []TierSpec{
			{Tier: string(domain.TierLow), Weight: len(numericSymbols), Symbols: numericSymbols},
		},
		Payouts: map[string]int{"1": 10, "2": 2, "3": 3, "7": 20, "W": 8},
	})
	require.NoError(t, err)
	return pt
}

// fastConfig settles cells in index order: cell i stops at (2+i)*10ms
func fastConfig() SequencerConfig {
	return SequencerConfig{
		BaseSpins:    2,
		SpinStep:     1,
		DrawInterval: 10 * time.Millisecond,
	}
}

// symbolIndex returns the SequenceRNG value that draws sym from testPaytable
func symbolIndex(sym string) int {
	for i, s := range numericSymbols {
		if s == sym {
			return i
		}
	}
	panic("unknown symbol " + sym)
}

// rngFor returns an RNG that draws grid in cell order, repeating
func rngFor(grid ...string) *SequenceRNG {
	values := make([]int, len(grid))
	for i, s := range grid {
		values[i] = symbolIndex(s)
	}
	return NewSequenceRNG(values...)
}

func grid(symbols ...string) domain.Grid {
	g := make(domain.Grid, len(symbols))
	for i, s := range symbols {
		g[i] = domain.Symbol(s)
	}
	return g
}

type testRig struct {
	seq     *Sequencer
	clock   *steppedClock
	account *wallet.MemoryAccount
	engine  *Engine
}

func newRig(t testingT, balance int64, rng RNG, cfg SequencerConfig) *testRig {
	t.Helper()
	engine := NewEngine(testPaytable(t), DefaultThresholds(), ComboResetValue)
	clock := newSteppedClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	account := wallet.NewMemoryAccount(balance, ComboResetValue)
	seq := NewSequencer(SequencerOptions{
		PlayerID: "player-1",
		Engine:   engine,
		Account:  account,
		RNG:      rng,
		Clock:    clock,
		Config:   cfg,
	})
	return &testRig{seq: seq, clock: clock, account: account, engine: engine}
}

func (r *testRig) balance(t testingT) int64 {
	t.Helper()
	bal, err := r.account.Balance(context.Background())
	require.NoError(t, err)
	return bal
}

// recordingPublisher captures published events
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) PublishWithRetry(_ context.Context, evt event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) ofType(typ event.Type) []event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []event.Event
	for _, e := range p.events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}
