// Package db provides a pgxpool-based connection pool with prepared statement
// registration and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kickstats/kickstats-data/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

const (
	// Nullable identifier columns coalesce to zero values so the read layer
	// scans into plain ints and strings.
	matchColumns = `match_api_id, COALESCE(country_id, 0), COALESCE(country_name, ''),
		COALESCE(league_id, 0), COALESCE(league_name, ''), season, COALESCE(stage, 0), date,
		COALESCE(home_team_api_id, 0), home_team_name, COALESCE(away_team_api_id, 0), away_team_name,
		home_team_goal, away_team_goal, result`

	attributeColumns = `player_api_id, player_fifa_api_id, date,
		overall_rating, potential, preferred_foot,
		attacking_work_rate, defensive_work_rate,
		crossing, finishing, heading_accuracy, short_passing, volleys,
		dribbling, curve, free_kick_accuracy, long_passing, ball_control,
		acceleration, sprint_speed, agility, reactions, balance,
		shot_power, jumping, stamina, strength, long_shots, aggression,
		interceptions, positioning, vision, penalties, marking,
		standing_tackle, sliding_tackle,
		gk_diving, gk_handling, gk_kicking, gk_positioning, gk_reflexes`
)

// registerPreparedStatements registers every statement the read layer uses.
// Prepared statements eliminate parse overhead on every request.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Entity lookups
		"team_by_name":   "SELECT team_api_id, team_fifa_api_id, team_long_name, COALESCE(team_short_name, '') FROM teams WHERE team_long_name = $1",
		"teams_all":      "SELECT team_api_id, team_fifa_api_id, team_long_name, COALESCE(team_short_name, '') FROM teams ORDER BY team_long_name",
		"player_by_name": "SELECT player_api_id, player_fifa_api_id, player_name, birthday, height, weight FROM players WHERE player_name = $1",
		"players_all":    "SELECT player_api_id, player_fifa_api_id, player_name, birthday, height, weight FROM players ORDER BY player_name",
		"league_by_name": "SELECT league_id, country_id, name, COALESCE(country_name, '') FROM leagues WHERE name = $1",
		"leagues_all":    "SELECT league_id, country_id, name, COALESCE(country_name, '') FROM leagues ORDER BY name",

		// Match scans (filter pushdown for the analytics engine)
		"matches_all":              "SELECT " + matchColumns + " FROM matches",
		"matches_by_team":          "SELECT " + matchColumns + " FROM matches WHERE home_team_name = $1 OR away_team_name = $1",
		"matches_by_team_season":   "SELECT " + matchColumns + " FROM matches WHERE season = $2 AND (home_team_name = $1 OR away_team_name = $1)",
		"matches_by_league_season": "SELECT " + matchColumns + " FROM matches WHERE league_name = $1 AND season = $2",
		"matches_between":          "SELECT " + matchColumns + " FROM matches WHERE (home_team_name = $1 AND away_team_name = $2) OR (home_team_name = $2 AND away_team_name = $1)",
		"recent_matches_by_team":   "SELECT " + matchColumns + " FROM matches WHERE home_team_name = $1 OR away_team_name = $1 ORDER BY date DESC LIMIT $2",
		"season_window":            "SELECT min(date), max(date) FROM matches WHERE season = $1",

		// Attribute snapshot scans
		"attributes_all":       "SELECT " + attributeColumns + " FROM player_attributes",
		"attributes_by_player": "SELECT " + attributeColumns + " FROM player_attributes WHERE player_api_id = $1 ORDER BY date",
		"attributes_in_window": "SELECT " + attributeColumns + " FROM player_attributes WHERE date >= $1 AND date <= $2",
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
