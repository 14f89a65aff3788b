package slots

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/logger"
)

// Auto-spin stop reasons
const (
	StopReasonManual            = "manual"
	StopReasonInsufficientFunds = "insufficient_funds"
	StopReasonMaxSpins          = "max_spins"
	StopReasonBigWin            = "big_win"
	StopReasonError             = "error"
)

// AutoSpinConfig controls the auto-spin cadence
type AutoSpinConfig struct {
	WinDelay     time.Duration
	LossDelay    time.Duration
	MaxSpins     int  // 0 means unlimited
	StopOnBigWin bool // stop after a big win or jackpot
}

// DefaultAutoSpinConfig returns the standard delays
func DefaultAutoSpinConfig() AutoSpinConfig {
	return AutoSpinConfig{WinDelay: DefaultAutoSpinWinDelay, LossDelay: DefaultAutoSpinLossDelay}
}

// AutoSpinStatus is a snapshot of an auto-spinner
type AutoSpinStatus struct {
	Running    bool            `json:"running"`
	Bet        int64           `json:"bet"`
	Mode       domain.GameMode `json:"mode"`
	Spins      int             `json:"spins"`
	StopReason string          `json:"stop_reason,omitempty"`
}

// AutoSpinner re-requests spins on a sequencer after each resolution.
// It stops itself when the next spin would be rejected for insufficient funds.
type AutoSpinner struct {
	seq    *Sequencer
	clock  Clock
	cfg    AutoSpinConfig
	onStop func(reason string)

	mu         sync.Mutex
	running    bool
	awaiting   bool
	generation int
	ctx        context.Context
	bet        int64
	mode       domain.GameMode
	spins      int
	timer      Timer
	stopReason string
}

// NewAutoSpinner attaches an auto-spinner to seq. onStop may be nil.
func NewAutoSpinner(seq *Sequencer, clock Clock, cfg AutoSpinConfig, onStop func(reason string)) *AutoSpinner {
	if clock == nil {
		clock = RealClock()
	}
	a := &AutoSpinner{seq: seq, clock: clock, cfg: cfg, onStop: onStop}
	seq.AddListener(a.onOutcome)
	return a
}

// Start begins auto-spinning with bet in mode. The first spin is requested immediately.
func (a *AutoSpinner) Start(ctx context.Context, bet int64, mode domain.GameMode) error {
	if _, err := RulesFor(mode); err != nil {
		return err
	}

	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return domain.ErrAutoSpinActive
	}
	a.running = true
	a.generation++
	gen := a.generation
	a.ctx = context.WithoutCancel(ctx)
	a.bet = bet
	a.mode = mode
	a.spins = 0
	a.stopReason = ""
	a.mu.Unlock()

	logger.FromContext(ctx).Info("Auto-spin started", "player_id", a.seq.playerID, "bet", bet, "mode", mode)

	if err := a.spinNext(gen); err != nil {
		return err
	}
	return nil
}

// Stop prevents the next spin. A spin already in flight still resolves.
func (a *AutoSpinner) Stop() error {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return domain.ErrAutoSpinNotRunning
	}
	a.halt(StopReasonManual)
	a.mu.Unlock()

	a.notifyStop(StopReasonManual)
	return nil
}

// Status returns a snapshot
func (a *AutoSpinner) Status() AutoSpinStatus {
	a.mu.Lock()
	defer a.mu.Unlock()
	return AutoSpinStatus{
		Running:    a.running,
		Bet:        a.bet,
		Mode:       a.mode,
		Spins:      a.spins,
		StopReason: a.stopReason,
	}
}

// halt clears the running state. Caller holds a.mu.
func (a *AutoSpinner) halt(reason string) {
	a.running = false
	a.awaiting = false
	a.generation++
	a.stopReason = reason
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

func (a *AutoSpinner) notifyStop(reason string) {
	logger.Info("Auto-spin stopped", "player_id", a.seq.playerID, "reason", reason)
	if a.onStop == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Auto-spin stop hook panicked", "panic", r)
		}
	}()
	a.onStop(reason)
}

func (a *AutoSpinner) spinNext(gen int) error {
	a.mu.Lock()
	if !a.running || gen != a.generation {
		a.mu.Unlock()
		return nil
	}
	ctx, bet, mode := a.ctx, a.bet, a.mode
	a.awaiting = true
	a.mu.Unlock()

	_, err := a.seq.request(ctx, bet, mode, domain.SourceAutoSpin)
	if err == nil {
		return nil
	}

	a.mu.Lock()
	if gen != a.generation {
		a.mu.Unlock()
		return nil
	}
	a.awaiting = false

	if errors.Is(err, domain.ErrSpinInProgress) {
		// a manual spin is in flight; try again after it has had time to land
		a.timer = a.clock.AfterFunc(a.cfg.LossDelay, func() { _ = a.spinNext(gen) })
		a.mu.Unlock()
		return nil
	}

	reason := StopReasonError
	if errors.Is(err, domain.ErrInsufficientFunds) {
		reason = StopReasonInsufficientFunds
	}
	a.halt(reason)
	a.mu.Unlock()

	a.notifyStop(reason)
	return fmt.Errorf("auto-spin stopped: %w", err)
}

func (a *AutoSpinner) onOutcome(_ context.Context, outcome domain.SpinOutcome) error {
	a.mu.Lock()
	if !a.running || !a.awaiting || outcome.Source != domain.SourceAutoSpin {
		a.mu.Unlock()
		return nil
	}
	a.awaiting = false
	a.spins++

	stop := ""
	switch {
	case a.cfg.MaxSpins > 0 && a.spins >= a.cfg.MaxSpins:
		stop = StopReasonMaxSpins
	case a.cfg.StopOnBigWin && (outcome.Tier == domain.ResultBigWin || outcome.Tier == domain.ResultJackpot):
		stop = StopReasonBigWin
	}
	if stop != "" {
		a.halt(stop)
		a.mu.Unlock()
		a.notifyStop(stop)
		return nil
	}

	delay := a.cfg.LossDelay
	if outcome.IsWin() {
		delay = a.cfg.WinDelay
	}
	gen := a.generation
	a.timer = a.clock.AfterFunc(delay, func() {
		if err := a.spinNext(gen); err != nil {
			logger.Debug("Auto-spin ended", "player_id", a.seq.playerID, "error", err)
		}
	})
	a.mu.Unlock()
	return nil
}
