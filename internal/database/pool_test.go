package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/LuckySpin_Go/internal/database/generated"
	"github.com/osse101/LuckySpin_Go/internal/testing/leaktest"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testDBConnString, terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("luckyspin"),
		postgres.WithUsername("luckyspin"),
		postgres.WithPassword("luckyspin"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

// migratedPool opens a pool on a freshly reset schema
func migratedPool(t *testing.T, maxConns int) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	ctx := context.Background()
	pool, err := NewPool(ctx, testDBConnString, maxConns, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(ctx, pool))
	require.NoError(t, Reset(ctx, pool))
	return pool
}

func runParams(playerID string, score int64, at time.Time) generated.InsertRunParams {
	return generated.InsertRunParams{
		RunID:     pgtype.UUID{Bytes: uuid.New(), Valid: true},
		PlayerID:  playerID,
		Score:     score,
		Combos:    1,
		Mode:      "classic",
		CreatedAt: pgtype.Timestamptz{Time: at, Valid: true},
	}
}

func TestMigrate_CreatesTablesAndIsRepeatable(t *testing.T) {
	pool := migratedPool(t, 4)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, pool), "a second run has nothing to apply")

	columns := map[string][]string{
		"runs":                {"run_id", "player_id", "score", "combos", "mode", "created_at"},
		"player_achievements": {"player_id", "achievement_key", "unlocked_at", "unlock_seq"},
	}
	for table, want := range columns {
		rows, err := pool.Query(ctx,
			"SELECT column_name FROM information_schema.columns WHERE table_name = $1 ORDER BY ordinal_position", table)
		require.NoError(t, err)
		var got []string
		for rows.Next() {
			var name string
			require.NoError(t, rows.Scan(&name))
			got = append(got, name)
		}
		rows.Close()
		require.NoError(t, rows.Err())
		assert.Equal(t, want, got, "columns of %s", table)
	}

	q := generated.New(pool)
	affected, err := q.InsertRun(ctx, runParams("alice", 900, time.Now()))
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	require.NoError(t, Reset(ctx, pool))

	runs, err := q.ListRecentRuns(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, runs, "reset leaves empty tables")
}

func TestPool_ConcurrentRunInserts(t *testing.T) {
	pool := migratedPool(t, 4)
	ctx := context.Background()
	q := generated.New(pool)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	checker := leaktest.NewGoroutineChecker(t)

	const players = 20
	var wg sync.WaitGroup
	for i := 0; i < players; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			params := runParams(fmt.Sprintf("player-%02d", i), int64(100*(i+1)), base.Add(time.Duration(i)*time.Second))
			if _, err := q.InsertRun(ctx, params); err != nil {
				t.Errorf("insert for player %d failed: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "every connection is back in the pool")

	top, err := q.GetTopScores(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "player-19", top[0].PlayerID)
	assert.Equal(t, int64(2000), top[0].Score)

	above, err := q.CountPlayersAbove(ctx, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(10), above)

	checker.Check(2)
}

func TestPool_ExhaustedPoolTimesOutLeaderboardRead(t *testing.T) {
	const maxConns = 2
	pool := migratedPool(t, maxConns)
	ctx := context.Background()
	q := generated.New(pool)

	held := make([]*pgxpool.Conn, maxConns)
	for i := range held {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err)
		held[i] = conn
	}

	shortCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	_, err := q.GetTopScores(shortCtx, 10)
	assert.Error(t, err, "no connection frees up before the deadline")

	held[0].Release()
	_, err = q.GetTopScores(ctx, 10)
	assert.NoError(t, err, "a released connection serves the next read")

	held[1].Release()
	assert.Equal(t, int32(0), pool.Stat().AcquiredConns())
}

func TestPool_RejectedInsertReleasesConnection(t *testing.T) {
	pool := migratedPool(t, 3)
	ctx := context.Background()
	q := generated.New(pool)

	// player_id is VARCHAR(100)
	tooLong := strings.Repeat("x", 101)
	for i := 0; i < 5; i++ {
		_, err := q.InsertRun(ctx, runParams(tooLong, 100, time.Now()))
		assert.Error(t, err)
	}
	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "failed statements do not leak connections")

	affected, err := q.InsertRun(ctx, runParams("bob", 100, time.Now()))
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestPool_DuplicateUnlockIsIgnored(t *testing.T) {
	pool := migratedPool(t, 2)
	ctx := context.Background()
	q := generated.New(pool)

	params := generated.UnlockAchievementParams{
		PlayerID:       "carol",
		AchievementKey: "first-win",
		UnlockedAt:     pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	first, err := q.UnlockAchievement(ctx, params)
	require.NoError(t, err)
	second, err := q.UnlockAchievement(ctx, params)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Zero(t, second)
}

func TestNewPool_BadConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "://not a url", 1, time.Minute, time.Minute)
	assert.ErrorContains(t, err, ErrMsgFailedToParseConnString)
}
