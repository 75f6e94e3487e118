package analytics

import "github.com/kickstats/kickstats-data/internal/store"

// Outcome is a match result seen from one team's perspective.
type Outcome int

const (
	OutcomeNotParticipant Outcome = iota
	OutcomeWin
	OutcomeLoss
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	case OutcomeDraw:
		return "draw"
	default:
		return "not_participant"
	}
}

// ClassifyOutcome determines the match outcome from the named team's
// perspective. The name is matched exactly against the denormalized home and
// away fields. Every win/draw/loss count in this package routes through here
// so home and away legs can never diverge.
func ClassifyOutcome(m store.Match, team string) Outcome {
	var own, opp int
	switch team {
	case m.HomeTeamName:
		own, opp = m.HomeGoals, m.AwayGoals
	case m.AwayTeamName:
		own, opp = m.AwayGoals, m.HomeGoals
	default:
		return OutcomeNotParticipant
	}
	switch {
	case own > opp:
		return OutcomeWin
	case own < opp:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}

// PointsForOutcome applies the fixed 3/1/0 scheme. A non-participant earns
// nothing.
func PointsForOutcome(o Outcome) int {
	switch o {
	case OutcomeWin:
		return 3
	case OutcomeDraw:
		return 1
	default:
		return 0
	}
}
