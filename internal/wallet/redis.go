package wallet

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/LuckySpin_Go/internal/domain"
)

// debitScript initializes a missing balance, then decrements only when funds suffice.
// Returns -1 when the balance is too low.
var debitScript = redis.NewScript(`
local bal = redis.call('GET', KEYS[1])
if not bal then
  bal = ARGV[2]
  redis.call('SET', KEYS[1], bal)
end
if tonumber(bal) < tonumber(ARGV[1]) then
  return -1
end
return redis.call('DECRBY', KEYS[1], ARGV[1])
`)

// creditScript initializes a missing balance, then increments
var creditScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  redis.call('SET', KEYS[1], ARGV[2])
end
return redis.call('INCRBY', KEYS[1], ARGV[1])
`)

// RedisOptions configures the Redis client
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// RedisStore keeps accounts in Redis under per-player keys
type RedisStore struct {
	rdb             redis.UniversalClient
	startingBalance int64
	initialCombo    int
}

// NewRedisClient creates and pings a client
func NewRedisClient(ctx context.Context, opts RedisOptions) (redis.UniversalClient, error) {
	rdb := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:           []string{opts.Addr},
		Password:        opts.Password,
		DB:              opts.DB,
		PoolSize:        20,
		MinIdleConns:    2,
		PoolTimeout:     5 * time.Second,
		ConnMaxIdleTime: 5 * time.Minute,
		MaxRetries:      3,
		MinRetryBackoff: 100 * time.Millisecond,
		MaxRetryBackoff: 500 * time.Millisecond,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", opts.Addr, err)
	}
	return rdb, nil
}

// NewRedisStore wraps an existing client
func NewRedisStore(rdb redis.UniversalClient, startingBalance int64, initialCombo int) *RedisStore {
	return &RedisStore{rdb: rdb, startingBalance: startingBalance, initialCombo: initialCombo}
}

// Account returns a handle for the player's keys
func (s *RedisStore) Account(playerID string) Account {
	return &RedisAccount{
		rdb:             s.rdb,
		balanceKey:      KeyPrefix + playerID + KeySuffixBal,
		comboKey:        KeyPrefix + playerID + KeySuffixCombo,
		startingBalance: s.startingBalance,
		initialCombo:    s.initialCombo,
	}
}

// Ping reports whether Redis is reachable
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Close closes the underlying client
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

// RedisAccount is one player's Redis-backed balance and combo
type RedisAccount struct {
	rdb             redis.UniversalClient
	balanceKey      string
	comboKey        string
	startingBalance int64
	initialCombo    int
}

func (a *RedisAccount) Balance(ctx context.Context) (int64, error) {
	// SETNX keeps a concurrent first access from overwriting a debit
	if err := a.rdb.SetNX(ctx, a.balanceKey, a.startingBalance, 0).Err(); err != nil {
		return 0, fmt.Errorf("failed to initialize balance: %w", err)
	}
	bal, err := a.rdb.Get(ctx, a.balanceKey).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to read balance: %w", err)
	}
	return bal, nil
}

func (a *RedisAccount) Debit(ctx context.Context, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	res, err := debitScript.Run(ctx, a.rdb, []string{a.balanceKey}, amount, a.startingBalance).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to debit: %w", err)
	}
	if res < 0 {
		bal, _ := a.Balance(ctx)
		return bal, fmt.Errorf("%w: balance %d, need %d", domain.ErrInsufficientFunds, bal, amount)
	}
	return res, nil
}

func (a *RedisAccount) Credit(ctx context.Context, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	res, err := creditScript.Run(ctx, a.rdb, []string{a.balanceKey}, amount, a.startingBalance).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to credit: %w", err)
	}
	return res, nil
}

func (a *RedisAccount) Reset(ctx context.Context, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	if err := a.rdb.Set(ctx, a.balanceKey, amount, 0).Err(); err != nil {
		return fmt.Errorf("failed to reset balance: %w", err)
	}
	return nil
}

func (a *RedisAccount) Combo(ctx context.Context) (int, error) {
	v, err := a.rdb.Get(ctx, a.comboKey).Result()
	if errors.Is(err, redis.Nil) {
		return a.initialCombo, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read combo: %w", err)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("corrupt combo value %q: %w", v, err)
	}
	return n, nil
}

func (a *RedisAccount) SetCombo(ctx context.Context, n int) error {
	if err := a.rdb.Set(ctx, a.comboKey, n, 0).Err(); err != nil {
		return fmt.Errorf("failed to write combo: %w", err)
	}
	return nil
}
