package leaderboard

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/LuckySpin_Go/internal/domain"
)

// topCache holds ranked pages keyed by their limit
type topCache struct {
	lru *expirable.LRU[int, []domain.LeaderboardEntry]
}

func newTopCache(size int, ttl time.Duration) *topCache {
	return &topCache{
		lru: expirable.NewLRU[int, []domain.LeaderboardEntry](size, nil, ttl),
	}
}

func (c *topCache) Get(limit int) ([]domain.LeaderboardEntry, bool) {
	return c.lru.Get(limit)
}

func (c *topCache) Set(limit int, entries []domain.LeaderboardEntry) {
	c.lru.Add(limit, entries)
}

// Limits returns the page sizes currently cached
func (c *topCache) Limits() []int {
	return c.lru.Keys()
}

func (c *topCache) Clear() {
	c.lru.Purge()
}
