package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopPlayersByRating(t *testing.T) {
	e := fixtureEngine()

	players, err := e.TopPlayersByRating(context.Background(), "", 0)
	require.NoError(t, err)
	// The rookie has no rated snapshot and is skipped.
	require.Len(t, players, 2)

	assert.Equal(t, "Lionel Messi", players[0].PlayerName)
	assert.Equal(t, 92.0, players[0].AvgRating)
	assert.Equal(t, 93, players[0].MaxRating)
	assert.Equal(t, 2, players[0].Snapshots)
	assert.Equal(t, "left", players[0].PreferredFoot)

	assert.Equal(t, "John Keeper", players[1].PlayerName)
	assert.Equal(t, 80.0, players[1].AvgRating)
	assert.Equal(t, 1, players[1].Snapshots)
}

func TestTopPlayersByRatingLeagueAndLimit(t *testing.T) {
	e := fixtureEngine()
	ctx := context.Background()

	players, err := e.TopPlayersByRating(ctx, englishLeague, 1)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Lionel Messi", players[0].PlayerName)

	_, err = e.TopPlayersByRating(ctx, "Nonexistent League", 0)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = e.TopPlayersByRating(ctx, "", -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPlayerAttributeHistory(t *testing.T) {
	e := fixtureEngine()

	history, err := e.PlayerAttributeHistory(context.Background(), "Lionel Messi")
	require.NoError(t, err)
	require.Len(t, history, 2)
	// Date ascending.
	assert.True(t, history[0].Date.Before(history[1].Date))
	assert.Equal(t, 93, *history[0].OverallRating)
	assert.Equal(t, 91, *history[1].OverallRating)
}

func TestPlayerAttributeHistoryErrors(t *testing.T) {
	e := fixtureEngine()
	ctx := context.Background()

	_, err := e.PlayerAttributeHistory(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.PlayerAttributeHistory(ctx, "Nonexistent Player")
	assert.ErrorIs(t, err, ErrNotFound)
}
