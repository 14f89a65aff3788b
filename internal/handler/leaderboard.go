package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/LuckySpin_Go/internal/achievement"
	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/leaderboard"
)

// LeaderboardResponse is the ranked page plus the caller's own standing
type LeaderboardResponse struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
	Player  *domain.LeaderboardEntry  `json:"player,omitempty"`
}

// HandleGetLeaderboard returns the top players by best run.
// With player_id set, the player's own best run is included.
// @Summary Get leaderboard
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Number of entries"
// @Param player_id query string false "Include this player's best run"
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/leaderboard [get]
func HandleGetLeaderboard(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := parseLimit(r, w)
		if !ok {
			return
		}

		entries, err := svc.Top(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetLeaderboardFailed, err)
			return
		}
		if entries == nil {
			entries = []domain.LeaderboardEntry{}
		}
		resp := LeaderboardResponse{Entries: entries}

		if playerID := r.URL.Query().Get(QueryParamPlayerID); playerID != "" {
			best, err := svc.PlayerBest(r.Context(), playerID)
			switch {
			case err == nil:
				resp.Player = best
			case !errors.Is(err, domain.ErrPlayerNotFound):
				respondServiceError(w, r, ErrMsgGetLeaderboardFailed, err)
				return
			}
		}

		respondJSON(w, http.StatusOK, resp)
	}
}

// AchievementsResponse lists unlocked achievements next to the full catalog
type AchievementsResponse struct {
	PlayerID string               `json:"player_id"`
	Unlocked []domain.Achievement `json:"unlocked"`
	Catalog  []domain.Achievement `json:"catalog"`
}

// HandleGetAchievements returns a player's unlocked achievements
// @Summary Get achievements
// @Tags achievements
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} AchievementsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/achievements [get]
func HandleGetAchievements(svc achievement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetQueryParam(r, w, QueryParamPlayerID)
		if !ok {
			return
		}

		unlocked, err := svc.List(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetAchievementsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, AchievementsResponse{
			PlayerID: playerID,
			Unlocked: unlocked,
			Catalog:  achievement.Catalog(),
		})
	}
}
