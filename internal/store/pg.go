package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PG is the Postgres-backed Reader. All statements are prepared once per
// connection by internal/db; methods refer to them by name.
type PG struct {
	pool *pgxpool.Pool
}

// NewPG wraps a connection pool in a Reader.
func NewPG(pool *pgxpool.Pool) *PG {
	return &PG{pool: pool}
}

// --------------------------------------------------------------------------
// Teams
// --------------------------------------------------------------------------

func (s *PG) TeamByName(ctx context.Context, longName string) (*Team, error) {
	var t Team
	err := s.pool.QueryRow(ctx, "team_by_name", longName).
		Scan(&t.TeamID, &t.FifaID, &t.LongName, &t.ShortName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("team %q: %w", longName, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("team by name: %w", err)
	}
	return &t, nil
}

func (s *PG) Teams(ctx context.Context) ([]Team, error) {
	rows, err := s.pool.Query(ctx, "teams_all")
	if err != nil {
		return nil, fmt.Errorf("teams: %w", err)
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.TeamID, &t.FifaID, &t.LongName, &t.ShortName); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// --------------------------------------------------------------------------
// Players
// --------------------------------------------------------------------------

func (s *PG) PlayerByName(ctx context.Context, name string) (*Player, error) {
	var p Player
	err := s.pool.QueryRow(ctx, "player_by_name", name).
		Scan(&p.PlayerID, &p.FifaID, &p.Name, &p.Birthday, &p.Height, &p.Weight)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("player %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("player by name: %w", err)
	}
	return &p, nil
}

func (s *PG) Players(ctx context.Context) ([]Player, error) {
	rows, err := s.pool.Query(ctx, "players_all")
	if err != nil {
		return nil, fmt.Errorf("players: %w", err)
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.PlayerID, &p.FifaID, &p.Name, &p.Birthday, &p.Height, &p.Weight); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// --------------------------------------------------------------------------
// Leagues
// --------------------------------------------------------------------------

func (s *PG) LeagueByName(ctx context.Context, name string) (*League, error) {
	var l League
	err := s.pool.QueryRow(ctx, "league_by_name", name).
		Scan(&l.LeagueID, &l.CountryID, &l.Name, &l.CountryName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("league %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("league by name: %w", err)
	}
	return &l, nil
}

func (s *PG) Leagues(ctx context.Context) ([]League, error) {
	rows, err := s.pool.Query(ctx, "leagues_all")
	if err != nil {
		return nil, fmt.Errorf("leagues: %w", err)
	}
	defer rows.Close()

	var leagues []League
	for rows.Next() {
		var l League
		if err := rows.Scan(&l.LeagueID, &l.CountryID, &l.Name, &l.CountryName); err != nil {
			return nil, fmt.Errorf("scan league: %w", err)
		}
		leagues = append(leagues, l)
	}
	return leagues, rows.Err()
}

// --------------------------------------------------------------------------
// Matches
// --------------------------------------------------------------------------

func (s *PG) Matches(ctx context.Context) ([]Match, error) {
	return s.queryMatches(ctx, "matches_all")
}

func (s *PG) MatchesByTeam(ctx context.Context, team string) ([]Match, error) {
	return s.queryMatches(ctx, "matches_by_team", team)
}

func (s *PG) MatchesByTeamSeason(ctx context.Context, team, season string) ([]Match, error) {
	return s.queryMatches(ctx, "matches_by_team_season", team, season)
}

func (s *PG) MatchesByLeagueSeason(ctx context.Context, league, season string) ([]Match, error) {
	return s.queryMatches(ctx, "matches_by_league_season", league, season)
}

func (s *PG) MatchesBetween(ctx context.Context, teamA, teamB string) ([]Match, error) {
	return s.queryMatches(ctx, "matches_between", teamA, teamB)
}

func (s *PG) RecentMatchesByTeam(ctx context.Context, team string, limit int) ([]Match, error) {
	return s.queryMatches(ctx, "recent_matches_by_team", team, limit)
}

func (s *PG) SeasonWindow(ctx context.Context, season string) (time.Time, time.Time, error) {
	var from, to *time.Time
	err := s.pool.QueryRow(ctx, "season_window", season).Scan(&from, &to)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("season window: %w", err)
	}
	if from == nil || to == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("season %q: %w", season, ErrNotFound)
	}
	return *from, *to, nil
}

func (s *PG) queryMatches(ctx context.Context, stmt string, args ...any) ([]Match, error) {
	rows, err := s.pool.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", stmt, err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(
			&m.MatchID, &m.CountryID, &m.CountryName,
			&m.LeagueID, &m.LeagueName, &m.Season, &m.Stage, &m.Date,
			&m.HomeTeamID, &m.HomeTeamName, &m.AwayTeamID, &m.AwayTeamName,
			&m.HomeGoals, &m.AwayGoals, &m.Result,
		); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// --------------------------------------------------------------------------
// Player attribute snapshots
// --------------------------------------------------------------------------

func (s *PG) Attributes(ctx context.Context) ([]PlayerAttributes, error) {
	return s.queryAttributes(ctx, "attributes_all")
}

func (s *PG) AttributesByPlayer(ctx context.Context, playerID int) ([]PlayerAttributes, error) {
	return s.queryAttributes(ctx, "attributes_by_player", playerID)
}

func (s *PG) AttributesInWindow(ctx context.Context, from, to time.Time) ([]PlayerAttributes, error) {
	return s.queryAttributes(ctx, "attributes_in_window", from, to)
}

func (s *PG) queryAttributes(ctx context.Context, stmt string, args ...any) ([]PlayerAttributes, error) {
	rows, err := s.pool.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", stmt, err)
	}
	defer rows.Close()

	var attrs []PlayerAttributes
	for rows.Next() {
		var a PlayerAttributes
		if err := rows.Scan(
			&a.PlayerID, &a.FifaID, &a.Date,
			&a.OverallRating, &a.Potential, &a.PreferredFoot,
			&a.AttackingWorkRate, &a.DefensiveWorkRate,
			&a.Crossing, &a.Finishing, &a.HeadingAccuracy, &a.ShortPassing,
			&a.Volleys, &a.Dribbling, &a.Curve, &a.FreeKickAccuracy,
			&a.LongPassing, &a.BallControl, &a.Acceleration, &a.SprintSpeed,
			&a.Agility, &a.Reactions, &a.Balance, &a.ShotPower, &a.Jumping,
			&a.Stamina, &a.Strength, &a.LongShots, &a.Aggression,
			&a.Interceptions, &a.Positioning, &a.Vision, &a.Penalties,
			&a.Marking, &a.StandingTackle, &a.SlidingTackle,
			&a.GKDiving, &a.GKHandling, &a.GKKicking, &a.GKPositioning,
			&a.GKReflexes,
		); err != nil {
			return nil, fmt.Errorf("scan attributes: %w", err)
		}
		attrs = append(attrs, a)
	}
	return attrs, rows.Err()
}
