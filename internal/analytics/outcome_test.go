package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kickstats/kickstats-data/internal/store"
)

func TestClassifyOutcome(t *testing.T) {
	m := store.Match{HomeTeamName: "Arsenal", AwayTeamName: "Chelsea", HomeGoals: 3, AwayGoals: 1}

	assert.Equal(t, OutcomeWin, ClassifyOutcome(m, "Arsenal"))
	assert.Equal(t, OutcomeLoss, ClassifyOutcome(m, "Chelsea"))
	assert.Equal(t, OutcomeNotParticipant, ClassifyOutcome(m, "Leeds United"))

	drawn := store.Match{HomeTeamName: "Arsenal", AwayTeamName: "Chelsea", HomeGoals: 2, AwayGoals: 2}
	assert.Equal(t, OutcomeDraw, ClassifyOutcome(drawn, "Arsenal"))
	assert.Equal(t, OutcomeDraw, ClassifyOutcome(drawn, "Chelsea"))
}

// Every fixture match must classify antisymmetrically: one side's win is the
// other side's loss, and draws match on both sides.
func TestClassifyOutcomeAntisymmetry(t *testing.T) {
	for _, m := range fixtureStore().MatchDocs {
		home := ClassifyOutcome(m, m.HomeTeamName)
		away := ClassifyOutcome(m, m.AwayTeamName)
		switch home {
		case OutcomeWin:
			assert.Equal(t, OutcomeLoss, away, "match %d", m.MatchID)
		case OutcomeLoss:
			assert.Equal(t, OutcomeWin, away, "match %d", m.MatchID)
		case OutcomeDraw:
			assert.Equal(t, OutcomeDraw, away, "match %d", m.MatchID)
		default:
			t.Errorf("match %d: home team classified as non-participant", m.MatchID)
		}
	}
}

func TestPointsForOutcome(t *testing.T) {
	assert.Equal(t, 3, PointsForOutcome(OutcomeWin))
	assert.Equal(t, 1, PointsForOutcome(OutcomeDraw))
	assert.Equal(t, 0, PointsForOutcome(OutcomeLoss))
	assert.Equal(t, 0, PointsForOutcome(OutcomeNotParticipant))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "win", OutcomeWin.String())
	assert.Equal(t, "loss", OutcomeLoss.String())
	assert.Equal(t, "draw", OutcomeDraw.String())
	assert.Equal(t, "not_participant", OutcomeNotParticipant.String())
}
