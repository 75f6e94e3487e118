package analytics

import "context"

// HeadToHeadRecord aggregates all fixtures between two teams irrespective of
// venue.
type HeadToHeadRecord struct {
	Team1        string `json:"team1"`
	Team2        string `json:"team2"`
	TotalMatches int    `json:"total_matches"`
	Team1Wins    int    `json:"team1_wins"`
	Team2Wins    int    `json:"team2_wins"`
	Draws        int    `json:"draws"`
}

// HeadToHead classifies every shared fixture from both teams' perspectives.
// Two teams that exist but never met yield a zero record. The selection
// filter already guarantees both names appear, but each match is still
// re-verified through the classifier rather than trusted.
func (e *Engine) HeadToHead(ctx context.Context, team1, team2 string) (*HeadToHeadRecord, error) {
	if team1 == "" || team2 == "" {
		return nil, invalidf("both team names must be supplied")
	}
	if team1 == team2 {
		return nil, invalidf("team names must differ")
	}
	if _, err := e.store.TeamByName(ctx, team1); err != nil {
		return nil, lookupErr("head-to-head", err)
	}
	if _, err := e.store.TeamByName(ctx, team2); err != nil {
		return nil, lookupErr("head-to-head", err)
	}

	matches, err := e.store.MatchesBetween(ctx, team1, team2)
	if err != nil {
		return nil, storeFail("load shared fixtures", err)
	}

	rec := &HeadToHeadRecord{Team1: team1, Team2: team2}
	for _, m := range matches {
		first := ClassifyOutcome(m, team1)
		second := ClassifyOutcome(m, team2)
		if first == OutcomeNotParticipant || second == OutcomeNotParticipant {
			continue
		}
		rec.TotalMatches++
		switch {
		case first == OutcomeWin:
			rec.Team1Wins++
		case second == OutcomeWin:
			rec.Team2Wins++
		default:
			rec.Draws++
		}
	}
	return rec, nil
}
