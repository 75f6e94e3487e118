package analytics

import (
	"context"
	"sort"
)

// LeagueGoalStats is per-league goal volume. Averages are rounded to two
// decimals here so every caller sees identical values.
type LeagueGoalStats struct {
	LeagueName       string  `json:"league_name"`
	TotalMatches     int     `json:"total_matches"`
	TotalGoals       int     `json:"total_goals"`
	AvgGoalsPerMatch float64 `json:"avg_goals_per_match"`
	AvgHomeGoals     float64 `json:"avg_home_goals"`
	AvgAwayGoals     float64 `json:"avg_away_goals"`
}

// LeagueGoalStats groups all matches by league and computes match counts,
// goal totals, and per-match averages, sorted by average goals per match
// descending (league name ascending on ties).
func (e *Engine) LeagueGoalStats(ctx context.Context) ([]LeagueGoalStats, error) {
	matches, err := e.store.Matches(ctx)
	if err != nil {
		return nil, storeFail("load matches", err)
	}

	type totals struct {
		matches, home, away int
	}
	byLeague := make(map[string]*totals)
	for _, m := range matches {
		t := byLeague[m.LeagueName]
		if t == nil {
			t = &totals{}
			byLeague[m.LeagueName] = t
		}
		t.matches++
		t.home += m.HomeGoals
		t.away += m.AwayGoals
	}

	out := make([]LeagueGoalStats, 0, len(byLeague))
	for name, t := range byLeague {
		n := float64(t.matches)
		out = append(out, LeagueGoalStats{
			LeagueName:       name,
			TotalMatches:     t.matches,
			TotalGoals:       t.home + t.away,
			AvgGoalsPerMatch: round2(float64(t.home+t.away) / n),
			AvgHomeGoals:     round2(float64(t.home) / n),
			AvgAwayGoals:     round2(float64(t.away) / n),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgGoalsPerMatch != out[j].AvgGoalsPerMatch {
			return out[i].AvgGoalsPerMatch > out[j].AvgGoalsPerMatch
		}
		return out[i].LeagueName < out[j].LeagueName
	})
	return out, nil
}
