package analytics

import (
	"context"

	"github.com/kickstats/kickstats-data/internal/store"
)

// SeasonRecord is one team's aggregate line for one season.
type SeasonRecord struct {
	Team           string `json:"team"`
	Season         string `json:"season"`
	MatchesPlayed  int    `json:"matches_played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsScored    int    `json:"goals_scored"`
	GoalsConceded  int    `json:"goals_conceded"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// TeamSeasonRecord aggregates a team's wins, draws, losses, and goals for one
// season. A team that exists but played no matches that season gets a
// well-formed zero record, not an error; standings iterate over exactly that
// shape.
func (e *Engine) TeamSeasonRecord(ctx context.Context, team, season string) (*SeasonRecord, error) {
	if team == "" {
		return nil, invalidf("team name must not be empty")
	}
	if err := validateSeason(season); err != nil {
		return nil, err
	}
	if _, err := e.store.TeamByName(ctx, team); err != nil {
		return nil, lookupErr("team season record", err)
	}

	matches, err := e.store.MatchesByTeamSeason(ctx, team, season)
	if err != nil {
		return nil, storeFail("load team season matches", err)
	}
	rec := recordFromMatches(team, season, matches)
	return &rec, nil
}

// recordFromMatches folds a match slice into a SeasonRecord from the named
// team's perspective. Matches the team did not take part in are skipped; the
// selection filter already guarantees membership, but the classification is
// re-verified per match rather than assumed.
func recordFromMatches(team, season string, matches []store.Match) SeasonRecord {
	rec := SeasonRecord{Team: team, Season: season}
	for _, m := range matches {
		outcome := ClassifyOutcome(m, team)
		switch outcome {
		case OutcomeNotParticipant:
			continue
		case OutcomeWin:
			rec.Wins++
		case OutcomeLoss:
			rec.Losses++
		case OutcomeDraw:
			rec.Draws++
		}
		rec.MatchesPlayed++
		if m.HomeTeamName == team {
			rec.GoalsScored += m.HomeGoals
			rec.GoalsConceded += m.AwayGoals
		} else {
			rec.GoalsScored += m.AwayGoals
			rec.GoalsConceded += m.HomeGoals
		}
	}
	rec.GoalDifference = rec.GoalsScored - rec.GoalsConceded
	rec.Points = 3*rec.Wins + rec.Draws
	return rec
}
