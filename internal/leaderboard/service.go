package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/logger"
	"github.com/osse101/LuckySpin_Go/internal/repository"
	"github.com/osse101/LuckySpin_Go/internal/worker"
)

// Enqueuer accepts background jobs. *worker.Pool satisfies it.
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

// Service defines the interface for leaderboard operations
type Service interface {
	// RecordRun persists the run summary of a resolved spin in the background
	RecordRun(ctx context.Context, outcome domain.SpinOutcome) error
	Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	PlayerBest(ctx context.Context, playerID string) (*domain.LeaderboardEntry, error)
	// Refresh reloads every cached page from the repository
	Refresh(ctx context.Context) error
}

type service struct {
	repo         repository.Runs
	jobs         Enqueuer
	cache        *topCache
	defaultLimit int
}

type options struct {
	defaultLimit int
	cacheTTL     time.Duration
}

// Option tunes a leaderboard service
type Option func(*options)

// WithDefaultLimit sets the page size used when a caller passes no limit
func WithDefaultLimit(n int) Option {
	return func(o *options) {
		if n > 0 && n <= MaxTopLimit {
			o.defaultLimit = n
		}
	}
}

// WithCacheTTL sets how long a cached page is served before it expires.
// Non-positive values keep the default; anything shorter than MinCacheTTL is raised to it.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *options) {
		switch {
		case ttl <= 0:
		case ttl < MinCacheTTL:
			o.cacheTTL = MinCacheTTL
		default:
			o.cacheTTL = ttl
		}
	}
}

// NewService creates a new leaderboard service. A nil jobs saves runs inline.
func NewService(repo repository.Runs, jobs Enqueuer, opts ...Option) Service {
	o := options{defaultLimit: DefaultTopLimit, cacheTTL: CacheTTL}
	for _, opt := range opts {
		opt(&o)
	}
	return &service{
		repo:         repo,
		jobs:         jobs,
		cache:        newTopCache(CacheSize, o.cacheTTL),
		defaultLimit: o.defaultLimit,
	}
}

// RunFromOutcome builds the run record written for a resolved spin
func RunFromOutcome(outcome domain.SpinOutcome) domain.RunRecord {
	createdAt := outcome.ResolvedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return domain.RunRecord{
		ID:        outcome.SpinID,
		PlayerID:  outcome.PlayerID,
		Score:     outcome.Score,
		Combos:    outcome.Combo,
		Mode:      outcome.Mode,
		CreatedAt: createdAt,
	}
}

func (s *service) RecordRun(ctx context.Context, outcome domain.SpinOutcome) error {
	run := RunFromOutcome(outcome)
	save := worker.JobFunc(func(jobCtx context.Context) error {
		return s.save(jobCtx, run)
	})

	if s.jobs == nil {
		return save(ctx)
	}
	if !s.jobs.Enqueue(save) {
		logger.FromContext(ctx).Warn(LogMsgSaveQueueFull, "player_id", run.PlayerID, "run_id", run.ID)
		return errors.New(ErrMsgQueueFull)
	}
	return nil
}

func (s *service) save(ctx context.Context, run domain.RunRecord) error {
	log := logger.FromContext(ctx)
	if err := s.repo.SaveRun(ctx, run); err != nil {
		log.Error(LogMsgRunSaveFailed, "error", err, "player_id", run.PlayerID, "run_id", run.ID)
		return err
	}
	log.Debug(LogMsgRunSaved, "player_id", run.PlayerID, "score", run.Score)
	return nil
}

func (s *service) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	limit = s.clampLimit(limit)
	if entries, ok := s.cache.Get(limit); ok {
		return entries, nil
	}

	entries, err := s.repo.TopScores(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgTopScoresFailed, err)
	}
	s.cache.Set(limit, entries)
	return entries, nil
}

func (s *service) PlayerBest(ctx context.Context, playerID string) (*domain.LeaderboardEntry, error) {
	return s.repo.PlayerBest(ctx, playerID)
}

func (s *service) Refresh(ctx context.Context) error {
	limits := s.cache.Limits()
	if len(limits) == 0 {
		limits = []int{s.defaultLimit}
	}

	for _, limit := range limits {
		entries, err := s.repo.TopScores(ctx, limit)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgTopScoresFailed, err)
		}
		s.cache.Set(limit, entries)
	}
	logger.FromContext(ctx).Debug(LogMsgCacheRefreshed, "pages", len(limits))
	return nil
}

// RefreshJob wraps Refresh for the scheduler
func RefreshJob(svc Service) worker.Job {
	return worker.JobFunc(svc.Refresh)
}

func (s *service) clampLimit(limit int) int {
	if limit <= 0 {
		return s.defaultLimit
	}
	if limit > MaxTopLimit {
		return MaxTopLimit
	}
	return limit
}
