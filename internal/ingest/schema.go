package ingest

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements creates the target tables and the indexes the read layer
// depends on. Matches are denormalized with league, country, and team names
// because names are the lookup keys for every analytical query.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS countries (
		country_id INTEGER PRIMARY KEY,
		name       TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS leagues (
		league_id    INTEGER PRIMARY KEY,
		country_id   INTEGER NOT NULL,
		name         TEXT NOT NULL,
		country_name TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS teams (
		team_api_id      INTEGER PRIMARY KEY,
		team_fifa_api_id INTEGER,
		team_long_name   TEXT NOT NULL,
		team_short_name  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS players (
		player_api_id      INTEGER PRIMARY KEY,
		player_fifa_api_id INTEGER,
		player_name        TEXT NOT NULL,
		birthday           TIMESTAMP,
		height             DOUBLE PRECISION,
		weight             DOUBLE PRECISION
	)`,
	`CREATE TABLE IF NOT EXISTS matches (
		match_api_id     INTEGER PRIMARY KEY,
		country_id       INTEGER,
		country_name     TEXT,
		league_id        INTEGER,
		league_name      TEXT,
		season           TEXT NOT NULL,
		stage            INTEGER,
		date             TIMESTAMP NOT NULL,
		home_team_api_id INTEGER,
		home_team_name   TEXT NOT NULL,
		away_team_api_id INTEGER,
		away_team_name   TEXT NOT NULL,
		home_team_goal   INTEGER NOT NULL,
		away_team_goal   INTEGER NOT NULL,
		result           TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS player_attributes (
		player_api_id       INTEGER NOT NULL,
		player_fifa_api_id  INTEGER,
		date                TIMESTAMP NOT NULL,
		overall_rating      INTEGER,
		potential           INTEGER,
		preferred_foot      TEXT,
		attacking_work_rate TEXT,
		defensive_work_rate TEXT,
		crossing            INTEGER,
		finishing           INTEGER,
		heading_accuracy    INTEGER,
		short_passing       INTEGER,
		volleys             INTEGER,
		dribbling           INTEGER,
		curve               INTEGER,
		free_kick_accuracy  INTEGER,
		long_passing        INTEGER,
		ball_control        INTEGER,
		acceleration        INTEGER,
		sprint_speed        INTEGER,
		agility             INTEGER,
		reactions           INTEGER,
		balance             INTEGER,
		shot_power          INTEGER,
		jumping             INTEGER,
		stamina             INTEGER,
		strength            INTEGER,
		long_shots          INTEGER,
		aggression          INTEGER,
		interceptions       INTEGER,
		positioning         INTEGER,
		vision              INTEGER,
		penalties           INTEGER,
		marking             INTEGER,
		standing_tackle     INTEGER,
		sliding_tackle      INTEGER,
		gk_diving           INTEGER,
		gk_handling         INTEGER,
		gk_kicking          INTEGER,
		gk_positioning      INTEGER,
		gk_reflexes         INTEGER
	)`,

	`CREATE INDEX IF NOT EXISTS idx_teams_long_name ON teams (team_long_name)`,
	`CREATE INDEX IF NOT EXISTS idx_players_name ON players (player_name)`,
	`CREATE INDEX IF NOT EXISTS idx_leagues_name ON leagues (name)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_season ON matches (season)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_league_name ON matches (league_name)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_home_team ON matches (home_team_name)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_away_team ON matches (away_team_name)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_date ON matches (date)`,
	`CREATE INDEX IF NOT EXISTS idx_attrs_player ON player_attributes (player_api_id)`,
	`CREATE INDEX IF NOT EXISTS idx_attrs_date ON player_attributes (date)`,
	`CREATE INDEX IF NOT EXISTS idx_attrs_player_date ON player_attributes (player_api_id, date DESC)`,
}

// EnsureSchema creates tables and indexes if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
