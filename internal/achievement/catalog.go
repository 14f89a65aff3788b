package achievement

import "github.com/osse101/LuckySpin_Go/internal/domain"

var catalog = []domain.Achievement{
	{Key: domain.AchievementFirstWin, Title: "First Win", Description: "Win any payline"},
	{Key: domain.AchievementComboMaster, Title: "Combo Master", Description: "Reach a combo of 5"},
	{Key: domain.AchievementMissionClear, Title: "Mission Clear", Description: "Complete a mission in mission mode"},
	{Key: domain.AchievementJackpot, Title: "Mega Win", Description: "Land a jackpot"},
}

// Catalog returns every achievement a player can earn
func Catalog() []domain.Achievement {
	out := make([]domain.Achievement, len(catalog))
	copy(out, catalog)
	return out
}

func lookup(key domain.AchievementKey) (domain.Achievement, bool) {
	for _, a := range catalog {
		if a.Key == key {
			return a, true
		}
	}
	return domain.Achievement{}, false
}

// Earned lists the achievements a resolved spin qualifies for, in catalog order
func Earned(outcome domain.SpinOutcome) []domain.AchievementKey {
	var keys []domain.AchievementKey
	if outcome.IsWin() {
		keys = append(keys, domain.AchievementFirstWin)
	}
	if outcome.Combo >= ComboMasterThreshold {
		keys = append(keys, domain.AchievementComboMaster)
	}
	if outcome.MissionCleared {
		keys = append(keys, domain.AchievementMissionClear)
	}
	if outcome.Tier == domain.ResultJackpot {
		keys = append(keys, domain.AchievementJackpot)
	}
	return keys
}
