package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration
type Config struct {
	// Server
	Port            int           `envconfig:"PORT" default:"8080"`
	TrustedProxies  []string      `envconfig:"TRUSTED_PROXIES"`
	RateLimit       int           `envconfig:"RATE_LIMIT" default:"120"`
	RateLimitWindow time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`

	// Logging
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"text"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"lucky-spin"`
	Version     string `envconfig:"VERSION" default:"dev"`
	Environment string `envconfig:"ENVIRONMENT" default:"dev"`
	LogDir      string `envconfig:"LOG_DIR" default:"logs"`

	// Database (optional, leaderboard falls back to memory when empty)
	DatabaseURL       string        `envconfig:"DATABASE_URL"`
	DBMaxConns        int           `envconfig:"DB_MAX_CONNS" default:"10"`
	DBMaxConnIdleTime time.Duration `envconfig:"DB_MAX_CONN_IDLE_TIME" default:"5m"`
	DBMaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"30m"`

	// Redis (optional, wallets fall back to memory when empty)
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// Game
	PaytablePath    string `envconfig:"PAYTABLE_PATH" default:"configs/paytable.yaml"`
	PaytableSchema  string `envconfig:"PAYTABLE_SCHEMA" default:"configs/schemas/paytable.schema.json"`
	GameVariant     string `envconfig:"GAME_VARIANT" default:"classic"`
	StartingBalance int64  `envconfig:"STARTING_BALANCE" default:"10000"`
	MinBet          int64  `envconfig:"MIN_BET" default:"10"`
	MaxBet          int64  `envconfig:"MAX_BET" default:"10000"`
	BigWinMultiple  int64  `envconfig:"BIG_WIN_MULTIPLE" default:"20"`
	JackpotMultiple int64  `envconfig:"JACKPOT_MULTIPLE" default:"50"`
	ComboResetValue int    `envconfig:"COMBO_RESET_VALUE" default:"1"`

	// Spin timing
	SpinBaseCount     int           `envconfig:"SPIN_BASE_COUNT" default:"15"`
	SpinStep          int           `envconfig:"SPIN_STEP" default:"3"`
	SpinDrawInterval  time.Duration `envconfig:"SPIN_DRAW_INTERVAL" default:"80ms"`
	SpinColumnStagger time.Duration `envconfig:"SPIN_COLUMN_STAGGER" default:"15ms"`
	SettleDelay       time.Duration `envconfig:"SETTLE_DELAY" default:"0s"`
	AutoSpinWinDelay  time.Duration `envconfig:"AUTOSPIN_WIN_DELAY" default:"1500ms"`
	AutoSpinLossDelay time.Duration `envconfig:"AUTOSPIN_LOSS_DELAY" default:"1000ms"`

	// Leaderboard
	LeaderboardSize        int           `envconfig:"LEADERBOARD_SIZE" default:"10"`
	LeaderboardCacheTTL    time.Duration `envconfig:"LEADERBOARD_CACHE_TTL" default:"1m"`
	LeaderboardRefreshCron string        `envconfig:"LEADERBOARD_REFRESH_CRON" default:"@every 30s"`

	// Background work
	WorkerCount     int           `envconfig:"WORKER_COUNT" default:"4"`
	WorkerQueueSize int           `envconfig:"WORKER_QUEUE_SIZE" default:"256"`
	EventMaxRetries int           `envconfig:"EVENT_MAX_RETRIES" default:"3"`
	EventRetryDelay time.Duration `envconfig:"EVENT_RETRY_DELAY" default:"2s"`
	DeadLetterPath  string        `envconfig:"DEAD_LETTER_PATH" default:"logs/deadletter.jsonl"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cross-field constraints envconfig cannot express
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT value: %d", c.Port)
	}
	if c.RateLimit <= 0 || c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT and RATE_LIMIT_WINDOW must be positive")
	}
	if c.MinBet <= 0 || c.MaxBet < c.MinBet {
		return fmt.Errorf("invalid bet range: MIN_BET=%d MAX_BET=%d", c.MinBet, c.MaxBet)
	}
	if c.StartingBalance < 0 {
		return fmt.Errorf("STARTING_BALANCE must not be negative")
	}
	if c.BigWinMultiple <= 0 || c.JackpotMultiple < c.BigWinMultiple {
		return fmt.Errorf("invalid thresholds: BIG_WIN_MULTIPLE=%d JACKPOT_MULTIPLE=%d", c.BigWinMultiple, c.JackpotMultiple)
	}
	if c.SpinBaseCount < 0 || c.SpinStep < 0 {
		return fmt.Errorf("spin counts must not be negative")
	}
	if c.SpinDrawInterval <= 0 {
		return fmt.Errorf("SPIN_DRAW_INTERVAL must be positive")
	}
	if c.ComboResetValue != 0 && c.ComboResetValue != 1 {
		return fmt.Errorf("COMBO_RESET_VALUE must be 0 or 1")
	}
	if c.WorkerCount <= 0 || c.WorkerQueueSize <= 0 {
		return fmt.Errorf("WORKER_COUNT and WORKER_QUEUE_SIZE must be positive")
	}
	if c.LeaderboardSize <= 0 {
		return fmt.Errorf("LEADERBOARD_SIZE must be positive")
	}
	if c.LeaderboardCacheTTL < MinLeaderboardCacheTTL {
		return fmt.Errorf("LEADERBOARD_CACHE_TTL must be at least %s", MinLeaderboardCacheTTL)
	}
	return nil
}

// AddSource reports whether log records should carry file:line
func (c *Config) AddSource() bool {
	return c.Environment == EnvironmentDev || c.Environment == "development"
}

// HasDatabase reports whether Postgres persistence is configured
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// HasRedis reports whether Redis-backed wallets are configured
func (c *Config) HasRedis() bool {
	return c.RedisAddr != ""
}
