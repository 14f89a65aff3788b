package slots

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/logger"
	"github.com/osse101/LuckySpin_Go/internal/wallet"
)

// SequencerConfig controls spin timing
type SequencerConfig struct {
	BaseSpins     int           // ticks before cell 0 stops
	SpinStep      int           // extra ticks per cell index
	DrawInterval  time.Duration // delay between ticks of column 0
	ColumnStagger time.Duration // extra delay per column
	SettleDelay   time.Duration // pause between the last stop and resolution
}

// DefaultSequencerConfig returns the standard timing: 15+3i ticks at 80+15*(i%3) ms
func DefaultSequencerConfig() SequencerConfig {
	return SequencerConfig{
		BaseSpins:     DefaultBaseSpins,
		SpinStep:      DefaultSpinStep,
		DrawInterval:  DefaultDrawInterval,
		ColumnStagger: DefaultColumnStagger,
	}
}

// StopCount is the number of ticks before cell i settles
func (c SequencerConfig) StopCount(i int) int {
	n := c.BaseSpins + i*c.SpinStep
	if n < 1 {
		return 1
	}
	return n
}

// TickDelay is the delay between ticks of cell i
func (c SequencerConfig) TickDelay(i int) time.Duration {
	return c.DrawInterval + time.Duration(i%ReelColumns)*c.ColumnStagger
}

// Listener receives every resolved outcome. Errors and panics are logged and ignored.
type Listener func(ctx context.Context, outcome domain.SpinOutcome) error

// FrameHook observes each intermediate tick of a spinning cell. It is cosmetic only.
type FrameHook func(cell, remaining int)

// SequencerOptions wires a sequencer's collaborators
type SequencerOptions struct {
	PlayerID    string
	Engine      *Engine
	Account     wallet.Account
	RNG         RNG
	Clock       Clock
	Config      SequencerConfig
	Mode        domain.GameMode
	FrameHook   FrameHook
	IDGenerator func() string
}

type activeSpin struct {
	id        string
	ctx       context.Context
	bet       int64
	rules     ModeRules
	source    domain.SpinSource
	state     ModeState
	balance   int64
	startedAt time.Time
	result    chan domain.SpinOutcome
	timers    []Timer
}

// Sequencer drives one player's spins through Idle, Spinning, Settling and Resolved.
// At most one spin is in flight; resolution happens exactly once per spin.
type Sequencer struct {
	playerID  string
	engine    *Engine
	gen       *Generator
	account   wallet.Account
	clock     Clock
	cfg       SequencerConfig
	mode      domain.GameMode
	frameHook FrameHook
	newID     func() string

	mu              sync.Mutex
	state           domain.SpinState
	grid            domain.Grid
	remaining       []int
	settled         int
	spin            *activeSpin
	score           int64
	missionProgress int
	listeners       []Listener
}

// NewSequencer creates an idle sequencer
func NewSequencer(opts SequencerOptions) *Sequencer {
	if opts.Clock == nil {
		opts.Clock = RealClock()
	}
	if opts.IDGenerator == nil {
		opts.IDGenerator = uuid.NewString
	}
	if opts.Config.DrawInterval <= 0 {
		opts.Config.DrawInterval = DefaultDrawInterval
	}
	if opts.Mode == "" {
		opts.Mode = domain.ModeClassic
	}

	cells := opts.Engine.Paytable().Cells
	return &Sequencer{
		playerID:  opts.PlayerID,
		engine:    opts.Engine,
		gen:       opts.Engine.NewGenerator(opts.RNG),
		account:   opts.Account,
		clock:     opts.Clock,
		cfg:       opts.Config,
		mode:      opts.Mode,
		frameHook: opts.FrameHook,
		newID:     opts.IDGenerator,
		state:     domain.SpinIdle,
		grid:      make(domain.Grid, cells),
	}
}

// AddListener registers l for every future outcome
func (s *Sequencer) AddListener(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// State returns the current lifecycle state
func (s *Sequencer) State() domain.SpinState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Grid returns a snapshot of the visible grid
func (s *Sequencer) Grid() domain.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone()
}

// Score returns the cumulative payout of the session
func (s *Sequencer) Score() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// MissionProgress returns the mission meter, 0..100
func (s *Sequencer) MissionProgress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.missionProgress
}

// Account returns the wallet the sequencer debits and credits
func (s *Sequencer) Account() wallet.Account {
	return s.account
}

// RequestSpin starts a spin in the sequencer's default mode
func (s *Sequencer) RequestSpin(ctx context.Context, bet int64) (<-chan domain.SpinOutcome, error) {
	return s.RequestSpinMode(ctx, bet, s.mode)
}

// RequestSpinMode debits bet and starts the per-cell timers. It fails without
// mutating anything when a spin is already in flight or the balance is below bet.
// The returned channel yields exactly one outcome and is then closed.
func (s *Sequencer) RequestSpinMode(ctx context.Context, bet int64, mode domain.GameMode) (<-chan domain.SpinOutcome, error) {
	return s.request(ctx, bet, mode, domain.SourceManual)
}

func (s *Sequencer) request(ctx context.Context, bet int64, mode domain.GameMode, source domain.SpinSource) (<-chan domain.SpinOutcome, error) {
	if bet <= 0 {
		return nil, fmt.Errorf("%w: bet must be positive, got %d", domain.ErrInvalidBet, bet)
	}
	rules, err := RulesFor(mode)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.SpinIdle {
		return nil, fmt.Errorf("%w: state %s", domain.ErrSpinInProgress, s.state)
	}

	combo, err := s.account.Combo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read combo: %w", err)
	}

	balance, err := s.account.Debit(ctx, bet)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to debit bet: %w", err)
	}

	spin := &activeSpin{
		id:        s.newID(),
		ctx:       context.WithoutCancel(ctx),
		bet:       bet,
		rules:     rules,
		source:    source,
		state:     ModeState{Combo: combo, MissionProgress: s.missionProgress},
		balance:   balance,
		startedAt: s.clock.Now(),
		result:    make(chan domain.SpinOutcome, 1),
		timers:    make([]Timer, len(s.grid)),
	}

	s.spin = spin
	s.state = domain.SpinSpinning
	s.settled = 0
	s.remaining = make([]int, len(s.grid))
	for i := range s.grid {
		s.remaining[i] = s.cfg.StopCount(i)
	}
	for i := range s.grid {
		s.schedule(spin, i)
	}

	logger.FromContext(ctx).Debug("Spin started",
		"player_id", s.playerID, "spin_id", spin.id, "bet", bet, "mode", rules.Mode, "source", source)

	return spin.result, nil
}

// schedule arms the next tick of cell i. Caller holds s.mu.
func (s *Sequencer) schedule(spin *activeSpin, i int) {
	spin.timers[i] = s.clock.AfterFunc(s.cfg.TickDelay(i), func() { s.tick(spin, i) })
}

func (s *Sequencer) tick(spin *activeSpin, i int) {
	s.mu.Lock()
	if s.spin != spin || s.remaining[i] <= 0 {
		s.mu.Unlock()
		return
	}

	s.remaining[i]--
	if s.remaining[i] > 0 {
		s.schedule(spin, i)
		left := s.remaining[i]
		s.mu.Unlock()
		s.frame(spin.ctx, i, left)
		return
	}

	// final draw for this cell
	s.grid[i] = s.gen.NextSymbol()
	s.settled++
	if s.state == domain.SpinSpinning {
		s.state = domain.SpinSettling
	}
	done := s.settled == len(s.grid)
	s.mu.Unlock()

	if !done {
		return
	}
	if s.cfg.SettleDelay > 0 {
		s.clock.AfterFunc(s.cfg.SettleDelay, func() { s.resolve(spin) })
		return
	}
	s.resolve(spin)
}

func (s *Sequencer) frame(ctx context.Context, cell, remaining int) {
	if s.frameHook == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Warn("Frame hook panicked", "player_id", s.playerID, "panic", r)
		}
	}()
	s.frameHook(cell, remaining)
}

// resolve scores the settled grid once, settles the wallet and delivers the outcome
func (s *Sequencer) resolve(spin *activeSpin) {
	s.mu.Lock()
	if s.spin != spin || s.state == domain.SpinResolved {
		s.mu.Unlock()
		return
	}
	s.state = domain.SpinResolved
	grid := s.grid.Clone()
	s.mu.Unlock()

	ctx := spin.ctx
	log := logger.FromContext(ctx)

	res := s.engine.Resolve(grid, spin.bet, spin.rules, spin.state)

	balance := spin.balance
	if res.Total > 0 {
		newBalance, err := s.account.Credit(ctx, res.Total)
		if err != nil {
			log.Error("Failed to credit payout", "player_id", s.playerID, "spin_id", spin.id, "payout", res.Total, "error", err)
		} else {
			balance = newBalance
		}
	}
	if err := s.account.SetCombo(ctx, res.Combo); err != nil {
		log.Error("Failed to store combo", "player_id", s.playerID, "spin_id", spin.id, "error", err)
	}

	s.mu.Lock()
	s.score += res.Total
	s.missionProgress = res.MissionProgress
	score := s.score
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	outcome := domain.SpinOutcome{
		SpinID:          spin.id,
		PlayerID:        s.playerID,
		Mode:            spin.rules.Mode,
		Source:          spin.source,
		Grid:            grid,
		Wins:            res.Wins,
		Bet:             spin.bet,
		LinePayout:      res.LinePayout,
		Bonus:           res.Bonus,
		TotalPayout:     res.Total,
		Tier:            res.Tier,
		Combo:           res.Combo,
		Balance:         balance,
		Score:           score,
		MissionProgress: res.MissionProgress,
		MissionCleared:  res.MissionCleared,
		ResolvedAt:      s.clock.Now(),
	}
	outcome.Message = FormatMessage(outcome, res.Message)

	log.Info("Spin resolved",
		"player_id", s.playerID,
		"spin_id", spin.id,
		"tier", outcome.Tier,
		"payout", outcome.TotalPayout,
		"combo", outcome.Combo,
		"elapsed", outcome.ResolvedAt.Sub(spin.startedAt))

	s.mu.Lock()
	s.spin = nil
	s.state = domain.SpinIdle
	s.mu.Unlock()

	spin.result <- outcome
	close(spin.result)

	for _, l := range listeners {
		s.notify(ctx, l, outcome)
	}
}

func (s *Sequencer) notify(ctx context.Context, l Listener, outcome domain.SpinOutcome) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error("Spin listener panicked", "player_id", s.playerID, "spin_id", outcome.SpinID, "panic", r)
		}
	}()
	if err := l(ctx, outcome); err != nil {
		logger.FromContext(ctx).Warn("Spin listener failed", "player_id", s.playerID, "spin_id", outcome.SpinID, "error", err)
	}
}

// ResetIfIdle restores the account balance and combo. The idle check and the
// reset happen under the sequencer lock, so no spin can debit in between.
func (s *Sequencer) ResetIfIdle(ctx context.Context, balance int64, combo int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.SpinIdle {
		return fmt.Errorf("%w: state %s", domain.ErrSpinInProgress, s.state)
	}
	if err := s.account.Reset(ctx, balance); err != nil {
		return fmt.Errorf("failed to reset balance: %w", err)
	}
	if err := s.account.SetCombo(ctx, combo); err != nil {
		return fmt.Errorf("failed to reset combo: %w", err)
	}
	return nil
}

// Cancel stops the timers of an in-flight spin and refunds its bet.
// It is a no-op when idle or once resolution has begun.
func (s *Sequencer) Cancel(ctx context.Context) bool {
	s.mu.Lock()
	spin := s.spin
	if spin == nil || s.state == domain.SpinResolved {
		s.mu.Unlock()
		return false
	}
	for _, t := range spin.timers {
		if t != nil {
			t.Stop()
		}
	}
	s.spin = nil
	s.state = domain.SpinIdle
	s.mu.Unlock()

	if _, err := s.account.Credit(ctx, spin.bet); err != nil {
		logger.FromContext(ctx).Error("Failed to refund cancelled spin", "player_id", s.playerID, "spin_id", spin.id, "error", err)
	}
	close(spin.result)
	return true
}
