package config

import "time"

// MinLeaderboardCacheTTL is the shortest accepted LEADERBOARD_CACHE_TTL
const MinLeaderboardCacheTTL = time.Second

const (
	// Configuration file paths
	ConfigPathPaytable = "configs/paytable.yaml"

	// Environment names
	EnvironmentDev  = "dev"
	EnvironmentProd = "prod"
)
