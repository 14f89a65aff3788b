package slots

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/LuckySpin_Go/internal/concurrency"
	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/event"
	"github.com/osse101/LuckySpin_Go/internal/logger"
	"github.com/osse101/LuckySpin_Go/internal/wallet"
)

// Publisher is the subset of the resilient publisher the service needs
type Publisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

// Config holds the game rules the service applies to every session
type Config struct {
	StartingBalance int64
	MinBet          int64
	MaxBet          int64
	ComboReset      int
	Thresholds      Thresholds
	Sequencer       SequencerConfig
	AutoSpin        AutoSpinConfig
}

// DefaultConfig returns the standard rules
func DefaultConfig() Config {
	return Config{
		StartingBalance: DefaultStartingBalance,
		MinBet:          MinBetAmount,
		MaxBet:          MaxBetAmount,
		ComboReset:      ComboResetValue,
		Thresholds:      DefaultThresholds(),
		Sequencer:       DefaultSequencerConfig(),
		AutoSpin:        DefaultAutoSpinConfig(),
	}
}

// PlayerState is a snapshot of one player's session
type PlayerState struct {
	PlayerID        string         `json:"player_id"`
	Balance         int64          `json:"balance"`
	Combo           int            `json:"combo"`
	Score           int64          `json:"score"`
	MissionProgress int            `json:"mission_progress"`
	SpinState       string         `json:"spin_state"`
	AutoSpin        AutoSpinStatus `json:"auto_spin"`
}

// SymbolView describes one symbol of the active paytable
type SymbolView struct {
	Symbol      domain.Symbol     `json:"symbol"`
	Tier        domain.SymbolTier `json:"tier"`
	Weight      int               `json:"weight"`
	Probability float64           `json:"probability"`
	Payout      int               `json:"payout"`
	Wild        bool              `json:"wild,omitempty"`
	Special     bool              `json:"special,omitempty"`
}

// PaytableView is the public description of the active variant
type PaytableView struct {
	Variant    string            `json:"variant"`
	Cells      int               `json:"cells"`
	Paylines   []domain.Payline  `json:"paylines"`
	Symbols    []SymbolView      `json:"symbols"`
	Thresholds Thresholds        `json:"thresholds"`
	Modes      []domain.GameMode `json:"modes"`
}

// Service defines the interface for slots operations
type Service interface {
	Spin(ctx context.Context, playerID string, bet int64, mode domain.GameMode) (*domain.SpinOutcome, error)
	StartAutoSpin(ctx context.Context, playerID string, bet int64, mode domain.GameMode) error
	StopAutoSpin(ctx context.Context, playerID string) error
	PlayerState(ctx context.Context, playerID string) (*PlayerState, error)
	ResetBalance(ctx context.Context, playerID string) (*PlayerState, error)
	Paytable() PaytableView
	Shutdown(ctx context.Context) error
}

type session struct {
	seq  *Sequencer
	auto *AutoSpinner
}

type service struct {
	engine    *Engine
	store     wallet.Store
	publisher Publisher
	locks     *concurrency.LockManager
	clock     Clock
	rng       RNG
	cfg       Config

	mu       sync.Mutex
	sessions map[string]*session
	closed   bool
}

// Options are the optional collaborators of NewService
type Options struct {
	Clock Clock
	RNG   RNG // shared by every session; nil uses a crypto-seeded source
}

// NewService creates a new slots service
func NewService(engine *Engine, store wallet.Store, publisher Publisher, cfg Config, opts Options) Service {
	if opts.Clock == nil {
		opts.Clock = RealClock()
	}
	if opts.RNG == nil {
		opts.RNG = NewSecureSeededRNG()
	}
	return &service{
		engine:    engine,
		store:     store,
		publisher: publisher,
		locks:     concurrency.NewLockManager(),
		clock:     opts.Clock,
		rng:       opts.RNG,
		cfg:       cfg,
		sessions:  make(map[string]*session),
	}
}

func (s *service) session(playerID string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errors.New("slots service is shutting down")
	}
	if sess, ok := s.sessions[playerID]; ok {
		return sess, nil
	}

	seq := NewSequencer(SequencerOptions{
		PlayerID: playerID,
		Engine:   s.engine,
		Account:  s.store.Account(playerID),
		RNG:      s.rng,
		Clock:    s.clock,
		Config:   s.cfg.Sequencer,
	})
	sess := &session{seq: seq}
	sess.auto = NewAutoSpinner(seq, s.clock, s.cfg.AutoSpin, func(reason string) {
		if reason == StopReasonInsufficientFunds {
			s.publish(context.Background(), event.NewSpinRejectedEvent(playerID, sess.auto.Status().Bet, MetricRejectFunds))
		}
	})
	seq.AddListener(func(ctx context.Context, outcome domain.SpinOutcome) error {
		s.publish(ctx, event.NewSpinResolvedEvent(outcome, string(outcome.Source)))
		return nil
	})

	s.sessions[playerID] = sess
	return sess, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishWithRetry(ctx, evt)
}

func (s *service) validateBet(bet int64) error {
	if bet < s.cfg.MinBet {
		return fmt.Errorf("%w: minimum bet is %d", domain.ErrInvalidBet, s.cfg.MinBet)
	}
	if s.cfg.MaxBet > 0 && bet > s.cfg.MaxBet {
		return fmt.Errorf("%w: maximum bet is %d", domain.ErrInvalidBet, s.cfg.MaxBet)
	}
	return nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return MetricRejectFunds
	case errors.Is(err, domain.ErrSpinInProgress):
		return MetricRejectBusy
	default:
		return MetricRejectInvalid
	}
}

// Spin requests one spin and waits for it to resolve
func (s *service) Spin(ctx context.Context, playerID string, bet int64, mode domain.GameMode) (*domain.SpinOutcome, error) {
	log := logger.FromContext(ctx)

	if err := s.validateBet(bet); err != nil {
		s.publish(ctx, event.NewSpinRejectedEvent(playerID, bet, rejectReason(err)))
		return nil, err
	}

	sess, err := s.session(playerID)
	if err != nil {
		return nil, err
	}

	var ch <-chan domain.SpinOutcome
	err = s.locks.WithLock(playerID, func() (err error) {
		ch, err = sess.seq.RequestSpinMode(ctx, bet, mode)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) || errors.Is(err, domain.ErrSpinInProgress) {
			log.Info("Spin rejected", "player_id", playerID, "bet", bet, "reason", err)
			s.publish(ctx, event.NewSpinRejectedEvent(playerID, bet, rejectReason(err)))
		}
		return nil, err
	}

	select {
	case outcome, ok := <-ch:
		if !ok {
			return nil, errors.New("spin was cancelled")
		}
		return &outcome, nil
	case <-ctx.Done():
		// the spin still resolves and credits in the background
		return nil, ctx.Err()
	}
}

// StartAutoSpin begins auto-spinning for the player
func (s *service) StartAutoSpin(ctx context.Context, playerID string, bet int64, mode domain.GameMode) error {
	if err := s.validateBet(bet); err != nil {
		return err
	}
	sess, err := s.session(playerID)
	if err != nil {
		return err
	}
	return s.locks.WithLock(playerID, func() error {
		return sess.auto.Start(ctx, bet, mode)
	})
}

// StopAutoSpin prevents the player's next automatic spin
func (s *service) StopAutoSpin(ctx context.Context, playerID string) error {
	sess, err := s.session(playerID)
	if err != nil {
		return err
	}
	return s.locks.WithLock(playerID, sess.auto.Stop)
}

// PlayerState returns the player's balance, combo and session counters
func (s *service) PlayerState(ctx context.Context, playerID string) (*PlayerState, error) {
	sess, err := s.session(playerID)
	if err != nil {
		return nil, err
	}
	return s.snapshot(ctx, playerID, sess)
}

func (s *service) snapshot(ctx context.Context, playerID string, sess *session) (*PlayerState, error) {
	acc := sess.seq.Account()
	balance, err := acc.Balance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}
	combo, err := acc.Combo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read combo: %w", err)
	}
	return &PlayerState{
		PlayerID:        playerID,
		Balance:         balance,
		Combo:           combo,
		Score:           sess.seq.Score(),
		MissionProgress: sess.seq.MissionProgress(),
		SpinState:       sess.seq.State().String(),
		AutoSpin:        sess.auto.Status(),
	}, nil
}

// ResetBalance stops auto-spin, then restores the starting balance and combo.
// Refused while a spin is in flight; auto-spin stays stopped either way.
func (s *service) ResetBalance(ctx context.Context, playerID string) (*PlayerState, error) {
	sess, err := s.session(playerID)
	if err != nil {
		return nil, err
	}

	err = s.locks.WithLock(playerID, func() error {
		if sess.auto.Status().Running {
			_ = sess.auto.Stop()
		}
		return sess.seq.ResetIfIdle(ctx, s.cfg.StartingBalance, s.cfg.ComboReset)
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Balance reset", "player_id", playerID, "balance", s.cfg.StartingBalance)
	s.publish(ctx, event.NewBalanceResetEvent(playerID, s.cfg.StartingBalance, s.clock.Now()))

	return s.snapshot(ctx, playerID, sess)
}

// Paytable describes the active variant
func (s *service) Paytable() PaytableView {
	pt := s.engine.Paytable()
	view := PaytableView{
		Variant:    pt.Name,
		Cells:      pt.Cells,
		Paylines:   pt.Paylines,
		Thresholds: s.engine.Calculator().Thresholds(),
		Modes:      AllModes(),
	}
	for _, sym := range pt.Weights.Symbols() {
		view.Symbols = append(view.Symbols, SymbolView{
			Symbol:      sym,
			Tier:        pt.Tiers[sym],
			Weight:      pt.Weights.Weight(sym),
			Probability: pt.Weights.Probability(sym),
			Payout:      pt.PayoutFor(sym),
			Wild:        pt.IsWild(sym),
			Special:     pt.IsSpecial(sym),
		})
	}
	sort.SliceStable(view.Symbols, func(i, j int) bool {
		return view.Symbols[i].Payout < view.Symbols[j].Payout
	})
	return view
}

// Shutdown stops every auto-spinner and waits for in-flight spins to resolve
func (s *service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	sessions := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		_ = sess.auto.Stop()
	}

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		busy := 0
		for _, sess := range sessions {
			if sess.seq.State() != domain.SpinIdle {
				busy++
			}
		}
		if busy == 0 {
			return nil
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return fmt.Errorf("%d spins still in flight: %w", busy, ctx.Err())
		}
	}
}
