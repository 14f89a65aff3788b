package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LuckySpin_Go/internal/achievement"
	"github.com/osse101/LuckySpin_Go/internal/config"
	"github.com/osse101/LuckySpin_Go/internal/database"
	"github.com/osse101/LuckySpin_Go/internal/database/postgres"
	"github.com/osse101/LuckySpin_Go/internal/handler"
	"github.com/osse101/LuckySpin_Go/internal/leaderboard"
	"github.com/osse101/LuckySpin_Go/internal/repository"
	"github.com/osse101/LuckySpin_Go/internal/wallet"
)

// Repositories holds the storage backends used by the application.
// Postgres and Redis are optional: without them the in-memory
// implementations are used and nothing survives a restart.
type Repositories struct {
	Runs         repository.Runs
	Achievements repository.Achievements
	Wallets      wallet.Store

	DB    *pgxpool.Pool
	Redis *wallet.RedisStore
}

// InitializeRepositories connects the configured backends. A database is
// migrated before use.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	repos := &Repositories{}

	if cfg.HasDatabase() {
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		repos.DB = pool
		repos.Runs = postgres.NewRunRepository(pool)
		repos.Achievements = postgres.NewAchievementRepository(pool)
		slog.Info(LogMsgDatabaseConnected)
	} else {
		repos.Runs = leaderboard.NewMemoryRepository()
		repos.Achievements = achievement.NewMemoryRepository()
		slog.Warn(LogMsgDatabaseSkipped)
	}

	if cfg.HasRedis() {
		rdb, err := wallet.NewRedisClient(ctx, wallet.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			repos.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		repos.Redis = wallet.NewRedisStore(rdb, cfg.StartingBalance, cfg.ComboResetValue)
		repos.Wallets = repos.Redis
		slog.Info(LogMsgRedisConnected, "addr", cfg.RedisAddr)
	} else {
		repos.Wallets = wallet.NewMemoryStore(cfg.StartingBalance, cfg.ComboResetValue)
		slog.Warn(LogMsgRedisSkipped)
	}

	return repos, nil
}

// Readiness lists the external dependencies /readyz should ping.
func (r *Repositories) Readiness() map[string]handler.HealthChecker {
	checks := make(map[string]handler.HealthChecker)
	if r.DB != nil {
		checks["postgres"] = r.DB
	}
	if r.Redis != nil {
		checks["redis"] = r.Redis
	}
	return checks
}

// Close releases the wallet store and database pool.
func (r *Repositories) Close() {
	if r.Wallets != nil {
		if err := r.Wallets.Close(); err != nil {
			slog.Error(LogMsgWalletStoreCloseFailed, "error", err)
		}
	}
	if r.DB != nil {
		r.DB.Close()
	}
}
