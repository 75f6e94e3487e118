package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighScoringMatches(t *testing.T) {
	e := fixtureEngine()

	// Arsenal reached 3 goals twice: 3-1 at home (2015-08-15) and 2-3 away
	// (2016-03-12). Most recent first.
	matches, err := e.HighScoringMatches(context.Background(), "Arsenal", 3, 0)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Leeds United", matches[0].HomeTeam)
	assert.Equal(t, "2-3", matches[0].Scoreline)
	assert.Equal(t, "Arsenal", matches[1].HomeTeam)
	assert.Equal(t, "3-1", matches[1].Scoreline)
	assert.True(t, matches[0].Date.After(matches[1].Date))
}

func TestHighScoringMatchesThresholdAndLimit(t *testing.T) {
	e := fixtureEngine()
	ctx := context.Background()

	// Threshold counts the team's own goals only: Arsenal conceding 2 in the
	// 0-2 loss does not qualify at min 2, but scoring 2 in the 2-2 draw does.
	matches, err := e.HighScoringMatches(ctx, "Arsenal", 2, 0)
	require.NoError(t, err)
	assert.Len(t, matches, 3)

	matches, err = e.HighScoringMatches(ctx, "Arsenal", 2, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "2-3", matches[0].Scoreline)

	matches, err = e.HighScoringMatches(ctx, "Arsenal", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestHighScoringMatchesErrors(t *testing.T) {
	e := fixtureEngine()
	ctx := context.Background()

	_, err := e.HighScoringMatches(ctx, "", 3, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.HighScoringMatches(ctx, "Arsenal", 0, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.HighScoringMatches(ctx, "Arsenal", 3, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.HighScoringMatches(ctx, "Nonexistent FC", 3, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}
