package analytics

import (
	"context"
	"sort"
)

// StandingsRow is a SeasonRecord with its 1-based rank inside one
// league+season table.
type StandingsRow struct {
	Position int `json:"position"`
	SeasonRecord
}

// LeagueStandings builds the full table for one league and season. The team
// set is every name that appears on either side of a match in that
// league+season; there is no direct team-to-league membership table. The
// whole table is derived from a single match scan rather than one scan per
// team. Ordering: points desc, goal difference desc, goals scored desc, then
// team name ascending so repeated queries are byte-identical.
func (e *Engine) LeagueStandings(ctx context.Context, league, season string) ([]StandingsRow, error) {
	if league == "" {
		return nil, invalidf("league name must not be empty")
	}
	if err := validateSeason(season); err != nil {
		return nil, err
	}
	if _, err := e.store.LeagueByName(ctx, league); err != nil {
		return nil, lookupErr("league standings", err)
	}

	matches, err := e.store.MatchesByLeagueSeason(ctx, league, season)
	if err != nil {
		return nil, storeFail("load league season matches", err)
	}

	seen := make(map[string]bool)
	var teams []string
	for _, m := range matches {
		for _, name := range []string{m.HomeTeamName, m.AwayTeamName} {
			if !seen[name] {
				seen[name] = true
				teams = append(teams, name)
			}
		}
	}
	// Fixed enumeration order before the sort; tie-broken rows keep it.
	sort.Strings(teams)

	rows := make([]StandingsRow, 0, len(teams))
	for _, team := range teams {
		rows = append(rows, StandingsRow{SeasonRecord: recordFromMatches(team, season, matches)})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		return a.GoalsScored > b.GoalsScored
	})
	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows, nil
}
