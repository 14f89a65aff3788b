package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/LuckySpin_Go/internal/config"
	"github.com/osse101/LuckySpin_Go/internal/database"
	"github.com/osse101/LuckySpin_Go/internal/database/generated"
)

const dumpLimit = 20

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	q := generated.New(dbPool)

	// Dump Runs
	fmt.Println("--- Recent Runs ---")
	runs, err := q.ListRecentRuns(ctx, dumpLimit)
	if err != nil {
		log.Printf("Failed to query runs: %v", err)
	}
	for _, r := range runs {
		fmt.Printf("RunID: %s, Player: %s, Score: %d, Combos: %d, Mode: %s, CreatedAt: %s\n",
			uuid.UUID(r.RunID.Bytes), r.PlayerID, r.Score, r.Combos, r.Mode, r.CreatedAt.Time.Format(time.RFC3339))
	}

	// Dump Achievements
	fmt.Println("\n--- Achievements ---")
	unlocks, err := q.ListRecentAchievements(ctx, dumpLimit)
	if err != nil {
		log.Printf("Failed to query achievements: %v", err)
		return
	}
	for _, a := range unlocks {
		fmt.Printf("Player: %s, Achievement: %s, UnlockedAt: %s\n", a.PlayerID, a.AchievementKey, a.UnlockedAt.Time.Format(time.RFC3339))
	}
}
