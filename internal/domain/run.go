package domain

import "time"

// RunRecord is the persisted summary written after every resolved spin
type RunRecord struct {
	ID        string    `json:"id"`
	PlayerID  string    `json:"player_id"`
	Score     int64     `json:"score"`
	Combos    int       `json:"combos"`
	Mode      GameMode  `json:"mode"`
	CreatedAt time.Time `json:"created_at"`
}

// LeaderboardEntry is a ranked run record
type LeaderboardEntry struct {
	Rank      int       `json:"rank"`
	PlayerID  string    `json:"player_id"`
	Score     int64     `json:"score"`
	Combos    int       `json:"combos"`
	CreatedAt time.Time `json:"created_at"`
}
