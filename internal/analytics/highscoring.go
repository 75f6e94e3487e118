package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// DefaultMinGoals is the goal threshold applied when the caller does not
// supply one.
const DefaultMinGoals = 3

// HighScoringMatch is one fixture where the queried team reached the goal
// threshold on its own side.
type HighScoringMatch struct {
	Date       time.Time `json:"date"`
	LeagueName string    `json:"league_name"`
	Season     string    `json:"season"`
	HomeTeam   string    `json:"home_team_name"`
	AwayTeam   string    `json:"away_team_name"`
	HomeGoals  int       `json:"home_team_goal"`
	AwayGoals  int       `json:"away_team_goal"`
	Scoreline  string    `json:"scoreline"`
}

// HighScoringMatches returns matches where the named team scored at least
// minGoals, on either side of the fixture, most recent first. A limit of 0
// returns everything.
func (e *Engine) HighScoringMatches(ctx context.Context, team string, minGoals, limit int) ([]HighScoringMatch, error) {
	if team == "" {
		return nil, invalidf("team name must not be empty")
	}
	if minGoals <= 0 {
		return nil, invalidf("min goals must be positive, got %d", minGoals)
	}
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	if _, err := e.store.TeamByName(ctx, team); err != nil {
		return nil, lookupErr("high-scoring matches", err)
	}

	matches, err := e.store.MatchesByTeam(ctx, team)
	if err != nil {
		return nil, storeFail("load team matches", err)
	}

	var out []HighScoringMatch
	for _, m := range matches {
		own := m.HomeGoals
		if m.AwayTeamName == team {
			own = m.AwayGoals
		}
		if own < minGoals {
			continue
		}
		out = append(out, HighScoringMatch{
			Date:       m.Date,
			LeagueName: m.LeagueName,
			Season:     m.Season,
			HomeTeam:   m.HomeTeamName,
			AwayTeam:   m.AwayTeamName,
			HomeGoals:  m.HomeGoals,
			AwayGoals:  m.AwayGoals,
			Scoreline:  fmt.Sprintf("%d-%d", m.HomeGoals, m.AwayGoals),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
