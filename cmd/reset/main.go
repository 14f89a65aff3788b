package main

import (
	"context"
	"log"
	"time"

	"github.com/osse101/LuckySpin_Go/internal/config"
	"github.com/osse101/LuckySpin_Go/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if !cfg.HasDatabase() {
		log.Fatal("DATABASE_URL is not set, nothing to reset")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer pool.Close()

	log.Println("Rolling back and reapplying all migrations...")
	if err := database.Reset(ctx, pool); err != nil {
		log.Fatalf("Failed to reset database: %v", err)
	}

	log.Println("\n✅ Database reset complete! Runs and achievements are empty.")
}
