package analytics

import (
	"context"

	"github.com/kickstats/kickstats-data/internal/store"
)

// recentMatchLimit caps the fixtures embedded in a team overview.
const recentMatchLimit = 10

// TeamOverview is the team profile card: identity, career totals, and the
// most recent fixtures.
type TeamOverview struct {
	TeamName      string        `json:"team_name"`
	Team          store.Team    `json:"team_info"`
	TotalMatches  int           `json:"total_matches"`
	TotalGoals    int           `json:"total_goals_scored"`
	RecentMatches []store.Match `json:"recent_matches"`
}

// PlayerOverview is the player profile card: bio plus the latest snapshot
// summary.
type PlayerOverview struct {
	PlayerName     string           `json:"player_name"`
	Player         store.Player     `json:"basic_info"`
	Current        *AttributeSample `json:"current_attributes"`
	HistoryEntries int              `json:"attribute_history_count"`
}

// TeamOverview aggregates a team's career totals and its last fixtures.
func (e *Engine) TeamOverview(ctx context.Context, team string) (*TeamOverview, error) {
	if team == "" {
		return nil, invalidf("team name must not be empty")
	}
	t, err := e.store.TeamByName(ctx, team)
	if err != nil {
		return nil, lookupErr("team overview", err)
	}

	matches, err := e.store.MatchesByTeam(ctx, team)
	if err != nil {
		return nil, storeFail("load team matches", err)
	}
	recent, err := e.store.RecentMatchesByTeam(ctx, team, recentMatchLimit)
	if err != nil {
		return nil, storeFail("load recent matches", err)
	}

	goals := 0
	for _, m := range matches {
		if m.HomeTeamName == team {
			goals += m.HomeGoals
		} else {
			goals += m.AwayGoals
		}
	}
	if recent == nil {
		recent = []store.Match{}
	}
	return &TeamOverview{
		TeamName:      team,
		Team:          *t,
		TotalMatches:  len(matches),
		TotalGoals:    goals,
		RecentMatches: recent,
	}, nil
}

// PlayerOverview returns a player's bio and the most recent attribute
// snapshot. A player without snapshots has a nil Current block.
func (e *Engine) PlayerOverview(ctx context.Context, player string) (*PlayerOverview, error) {
	if player == "" {
		return nil, invalidf("player name must not be empty")
	}
	p, err := e.store.PlayerByName(ctx, player)
	if err != nil {
		return nil, lookupErr("player overview", err)
	}
	history, err := e.PlayerAttributeHistory(ctx, player)
	if err != nil {
		return nil, err
	}

	overview := &PlayerOverview{
		PlayerName:     player,
		Player:         *p,
		HistoryEntries: len(history),
	}
	if len(history) > 0 {
		latest := history[len(history)-1]
		overview.Current = &latest
	}
	return overview, nil
}
