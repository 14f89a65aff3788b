package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/LuckySpin_Go/internal/achievement"
	"github.com/osse101/LuckySpin_Go/internal/bootstrap"
	"github.com/osse101/LuckySpin_Go/internal/config"
	"github.com/osse101/LuckySpin_Go/internal/leaderboard"
	"github.com/osse101/LuckySpin_Go/internal/logger"
	"github.com/osse101/LuckySpin_Go/internal/scheduler"
	"github.com/osse101/LuckySpin_Go/internal/server"
	"github.com/osse101/LuckySpin_Go/internal/slots"
	"github.com/osse101/LuckySpin_Go/internal/sse"
	"github.com/osse101/LuckySpin_Go/internal/worker"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 15 * time.Second
)

// @title LuckySpin API
// @version 1.0
// @description Slot machine spins, auto-spin, balances, leaderboard and achievements.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.InitLogger(logger.DefaultConfig())
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if logFile := initLogger(cfg); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		slog.Error("LuckySpin exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	engine, gameCfg, err := bootstrap.InitializeGame(cfg)
	if err != nil {
		return err
	}

	repos, err := bootstrap.InitializeRepositories(startCtx, cfg)
	if err != nil {
		return err
	}

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		repos.Close()
		return err
	}

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()

	hub := sse.NewHub()
	hub.Start()

	slotsService := slots.NewService(engine, repos.Wallets, publisher, gameCfg, slots.Options{})
	achievementService := achievement.NewService(repos.Achievements, publisher)
	leaderboardService := leaderboard.NewService(repos.Runs, pool,
		leaderboard.WithDefaultLimit(cfg.LeaderboardSize),
		leaderboard.WithCacheTTL(cfg.LeaderboardCacheTTL))

	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:     eventBus,
		Achievements: achievementService,
		Leaderboard:  leaderboardService,
		Hub:          hub,
	})

	sched := scheduler.New(pool)
	components := bootstrap.ShutdownComponents{
		SlotsService:       slotsService,
		Scheduler:          sched,
		WorkerPool:         pool,
		Hub:                hub,
		ResilientPublisher: publisher,
		Repositories:       repos,
	}

	if err := sched.Schedule(cfg.LeaderboardRefreshCron, leaderboard.RefreshJobName, leaderboard.RefreshJob(leaderboardService)); err != nil {
		shutdown(components)
		return err
	}
	sched.Start()

	srv := server.NewServer(cfg.Port, server.Deps{
		Slots:          slotsService,
		Leaderboard:    leaderboardService,
		Achievements:   achievementService,
		Hub:            hub,
		Readiness:      repos.Readiness(),
		TrustedProxies: cfg.TrustedProxies,
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateLimitWindow,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
	})
	components.Server = srv

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.Port, "variant", cfg.GameVariant)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err, ok := <-serverErr:
		if ok {
			shutdown(components)
			return err
		}
	}

	shutdown(components)
	return nil
}

func shutdown(components bootstrap.ShutdownComponents) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, components)
}
