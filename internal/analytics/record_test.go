package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamSeasonRecord(t *testing.T) {
	e := fixtureEngine()

	rec, err := e.TeamSeasonRecord(context.Background(), "Arsenal", "2015/2016")
	require.NoError(t, err)
	assert.Equal(t, &SeasonRecord{
		Team:           "Arsenal",
		Season:         "2015/2016",
		MatchesPlayed:  4,
		Wins:           2,
		Draws:          1,
		Losses:         1,
		GoalsScored:    8,
		GoalsConceded:  7,
		GoalDifference: 1,
		Points:         7,
	}, rec)
}

// A team that exists but played no matches in the season gets a well-formed
// zero record.
func TestTeamSeasonRecordNoMatches(t *testing.T) {
	e := fixtureEngine()

	rec, err := e.TeamSeasonRecord(context.Background(), "Real Madrid CF", "2014/2015")
	require.NoError(t, err)
	assert.Equal(t, "Real Madrid CF", rec.Team)
	assert.Zero(t, rec.MatchesPlayed)
	assert.Zero(t, rec.Points)
	assert.Zero(t, rec.GoalDifference)
}

func TestTeamSeasonRecordErrors(t *testing.T) {
	e := fixtureEngine()
	ctx := context.Background()

	_, err := e.TeamSeasonRecord(ctx, "", "2015/2016")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.TeamSeasonRecord(ctx, "Arsenal", "2015-2016")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.TeamSeasonRecord(ctx, "Arsenal", "2015/2017")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.TeamSeasonRecord(ctx, "Nonexistent FC", "2015/2016")
	assert.ErrorIs(t, err, ErrNotFound)
}

// Points must always equal 3*wins + draws, and played must equal the sum of
// the three outcome counts.
func TestTeamSeasonRecordIdentities(t *testing.T) {
	e := fixtureEngine()
	for _, team := range []string{"Arsenal", "Chelsea", "Leeds United"} {
		rec, err := e.TeamSeasonRecord(context.Background(), team, "2015/2016")
		require.NoError(t, err)
		assert.Equal(t, 3*rec.Wins+rec.Draws, rec.Points, team)
		assert.Equal(t, rec.Wins+rec.Draws+rec.Losses, rec.MatchesPlayed, team)
		assert.Equal(t, rec.GoalsScored-rec.GoalsConceded, rec.GoalDifference, team)
	}
}

// The same query against the same snapshot returns identical results.
func TestTeamSeasonRecordIdempotent(t *testing.T) {
	e := fixtureEngine()
	first, err := e.TeamSeasonRecord(context.Background(), "Chelsea", "2015/2016")
	require.NoError(t, err)
	second, err := e.TeamSeasonRecord(context.Background(), "Chelsea", "2015/2016")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
