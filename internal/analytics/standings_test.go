package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kickstats/kickstats-data/internal/store"
)

func TestLeagueStandings(t *testing.T) {
	e := fixtureEngine()

	rows, err := e.LeagueStandings(context.Background(), englishLeague, "2015/2016")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, 1, rows[0].Position)
	assert.Equal(t, "Arsenal", rows[0].Team)
	assert.Equal(t, 7, rows[0].Points)

	assert.Equal(t, 2, rows[1].Position)
	assert.Equal(t, "Chelsea", rows[1].Team)
	assert.Equal(t, 5, rows[1].Points)

	assert.Equal(t, 3, rows[2].Position)
	assert.Equal(t, "Leeds United", rows[2].Team)
	assert.Equal(t, 4, rows[2].Points)
}

// Across a closed league+season, total wins equal total losses, total draws
// are even, and matches played sum to twice the match count.
func TestLeagueStandingsConservation(t *testing.T) {
	e := fixtureEngine()

	rows, err := e.LeagueStandings(context.Background(), englishLeague, "2015/2016")
	require.NoError(t, err)

	var wins, losses, draws, played, scored, conceded int
	for _, row := range rows {
		wins += row.Wins
		losses += row.Losses
		draws += row.Draws
		played += row.MatchesPlayed
		scored += row.GoalsScored
		conceded += row.GoalsConceded
	}
	assert.Equal(t, wins, losses)
	assert.Zero(t, draws%2)
	assert.Equal(t, 12, played) // 6 matches, two participants each
	assert.Equal(t, scored, conceded)
}

// Equal points rank by goal difference.
func TestLeagueStandingsTieBreak(t *testing.T) {
	s := fixtureStore()
	s.MatchDocs = []store.Match{
		// Both top teams win once against a different straggler; GD +5 beats +3.
		match(1, englishLeague, "2015/2016", day(2015, 8, 1), "Chelsea", "Idle FC", 5, 0),
		match(2, englishLeague, "2015/2016", day(2015, 8, 8), "Arsenal", "Leeds United", 3, 0),
	}
	e := New(s)

	rows, err := e.LeagueStandings(context.Background(), englishLeague, "2015/2016")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Chelsea", rows[0].Team)
	assert.Equal(t, "Arsenal", rows[1].Team)
	assert.Equal(t, rows[0].Points, rows[1].Points)
	assert.Greater(t, rows[0].GoalDifference, rows[1].GoalDifference)
}

func TestLeagueStandingsEmptySeason(t *testing.T) {
	e := fixtureEngine()

	// League exists but has no matches in this season.
	rows, err := e.LeagueStandings(context.Background(), spanishLeague, "2014/2015")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLeagueStandingsErrors(t *testing.T) {
	e := fixtureEngine()
	ctx := context.Background()

	_, err := e.LeagueStandings(ctx, "", "2015/2016")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.LeagueStandings(ctx, englishLeague, "bad season")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.LeagueStandings(ctx, "Nonexistent League", "2015/2016")
	assert.ErrorIs(t, err, ErrNotFound)
}
