package store

import (
	"context"
	"time"
)

// Reader is the read-only view of the snapshot the analytics engine consumes.
// Filtering is pushed down to the implementation; grouping, classification,
// and ranking stay in the engine so each stage is independently testable.
//
// All match slices preserve the implementation's enumeration order unless a
// method documents otherwise. Implementations must be safe for concurrent use.
type Reader interface {
	// Teams
	TeamByName(ctx context.Context, longName string) (*Team, error)
	Teams(ctx context.Context) ([]Team, error)

	// Players
	PlayerByName(ctx context.Context, name string) (*Player, error)
	Players(ctx context.Context) ([]Player, error)

	// Leagues
	LeagueByName(ctx context.Context, name string) (*League, error)
	Leagues(ctx context.Context) ([]League, error)

	// Matches
	Matches(ctx context.Context) ([]Match, error)
	MatchesByTeam(ctx context.Context, team string) ([]Match, error)
	MatchesByTeamSeason(ctx context.Context, team, season string) ([]Match, error)
	MatchesByLeagueSeason(ctx context.Context, league, season string) ([]Match, error)
	// MatchesBetween returns fixtures where the two names occupy the
	// home/away slots in either order.
	MatchesBetween(ctx context.Context, teamA, teamB string) ([]Match, error)
	// RecentMatchesByTeam returns the team's matches sorted date descending,
	// truncated to limit.
	RecentMatchesByTeam(ctx context.Context, team string, limit int) ([]Match, error)
	// SeasonWindow returns the earliest and latest match date across all
	// leagues for a season. ErrNotFound when the season has no matches.
	SeasonWindow(ctx context.Context, season string) (from, to time.Time, err error)

	// Player attribute snapshots
	Attributes(ctx context.Context) ([]PlayerAttributes, error)
	// AttributesByPlayer returns a player's snapshots ordered by date ascending.
	AttributesByPlayer(ctx context.Context, playerID int) ([]PlayerAttributes, error)
	// AttributesInWindow returns snapshots dated within [from, to].
	AttributesInWindow(ctx context.Context, from, to time.Time) ([]PlayerAttributes, error)
}
