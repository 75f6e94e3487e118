// Package ingest converts the European Soccer SQLite snapshot into the
// Postgres tables the query layer reads. It is a one-shot, replace-everything
// load: the query layer treats the result as read-only between runs.
package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kickstats/kickstats-data/internal/store"

	_ "modernc.org/sqlite" // sqlite driver
)

// Options controls what LoadAll ingests.
type Options struct {
	// SkipAttributes skips the player_attributes table (the largest one).
	SkipAttributes bool
	// AttributeLimit caps loaded attribute rows; 0 means all.
	AttributeLimit int
}

// Loader copies the snapshot from SQLite into Postgres.
type Loader struct {
	src    *sql.DB
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// OpenSource opens the SQLite snapshot read-only.
func OpenSource(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	return db, nil
}

// NewLoader wires a source database and a target pool.
func NewLoader(src *sql.DB, pool *pgxpool.Pool, logger *slog.Logger) *Loader {
	return &Loader{src: src, pool: pool, logger: logger}
}

// LoadAll ensures the schema, clears the target tables, and loads every
// collection in dependency-friendly order.
func (l *Loader) LoadAll(ctx context.Context, opts Options) (LoadResult, error) {
	var result LoadResult

	if err := EnsureSchema(ctx, l.pool); err != nil {
		return result, err
	}
	if _, err := l.pool.Exec(ctx,
		"TRUNCATE countries, leagues, teams, players, matches, player_attributes"); err != nil {
		return result, fmt.Errorf("truncate tables: %w", err)
	}

	steps := []struct {
		name string
		run  func(context.Context, *LoadResult) error
	}{
		{"countries", l.loadCountries},
		{"leagues", l.loadLeagues},
		{"teams", l.loadTeams},
		{"players", l.loadPlayers},
		{"matches", l.loadMatches},
	}
	for _, step := range steps {
		l.logger.Info("Loading " + step.name + "...")
		if err := step.run(ctx, &result); err != nil {
			return result, fmt.Errorf("load %s: %w", step.name, err)
		}
	}

	if !opts.SkipAttributes {
		l.logger.Info("Loading player attributes...")
		if err := l.loadAttributes(ctx, &result, opts.AttributeLimit); err != nil {
			return result, fmt.Errorf("load player attributes: %w", err)
		}
	}

	l.logger.Info("Load complete", "summary", result.Summary())
	return result, nil
}

func (l *Loader) loadCountries(ctx context.Context, result *LoadResult) error {
	rows, err := l.src.QueryContext(ctx, "SELECT id, name FROM Country")
	if err != nil {
		return err
	}
	defer rows.Close()

	var out [][]any
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return err
		}
		out = append(out, []any{id, name})
	}
	if err := rows.Err(); err != nil {
		return err
	}
	n, err := l.copyInto(ctx, "countries", []string{"country_id", "name"}, out)
	result.Countries = n
	return err
}

func (l *Loader) loadLeagues(ctx context.Context, result *LoadResult) error {
	rows, err := l.src.QueryContext(ctx, `
		SELECT l.id, l.country_id, l.name, c.name AS country_name
		FROM League l
		LEFT JOIN Country c ON l.country_id = c.id`)
	if err != nil {
		return err
	}
	defer rows.Close()

	var out [][]any
	for rows.Next() {
		var id, countryID int64
		var name string
		var countryName sql.NullString
		if err := rows.Scan(&id, &countryID, &name, &countryName); err != nil {
			return err
		}
		out = append(out, []any{id, countryID, name, nullStr(countryName)})
	}
	if err := rows.Err(); err != nil {
		return err
	}
	n, err := l.copyInto(ctx, "leagues",
		[]string{"league_id", "country_id", "name", "country_name"}, out)
	result.Leagues = n
	return err
}

func (l *Loader) loadTeams(ctx context.Context, result *LoadResult) error {
	rows, err := l.src.QueryContext(ctx,
		"SELECT team_api_id, team_fifa_api_id, team_long_name, team_short_name FROM Team")
	if err != nil {
		return err
	}
	defer rows.Close()

	var out [][]any
	for rows.Next() {
		var apiID int64
		var fifaID sql.NullInt64
		var longName string
		var shortName sql.NullString
		if err := rows.Scan(&apiID, &fifaID, &longName, &shortName); err != nil {
			return err
		}
		out = append(out, []any{apiID, nullI64(fifaID), longName, nullStr(shortName)})
	}
	if err := rows.Err(); err != nil {
		return err
	}
	n, err := l.copyInto(ctx, "teams",
		[]string{"team_api_id", "team_fifa_api_id", "team_long_name", "team_short_name"}, out)
	result.Teams = n
	return err
}

func (l *Loader) loadPlayers(ctx context.Context, result *LoadResult) error {
	rows, err := l.src.QueryContext(ctx,
		"SELECT player_api_id, player_fifa_api_id, player_name, birthday, height, weight FROM Player")
	if err != nil {
		return err
	}
	defer rows.Close()

	var out [][]any
	for rows.Next() {
		var apiID int64
		var fifaID sql.NullInt64
		var name string
		var birthday sql.NullString
		var height, weight sql.NullFloat64
		if err := rows.Scan(&apiID, &fifaID, &name, &birthday, &height, &weight); err != nil {
			return err
		}
		out = append(out, []any{
			apiID, nullI64(fifaID), name,
			timePtr(birthday), nullF64(height), nullF64(weight),
		})
	}
	if err := rows.Err(); err != nil {
		return err
	}
	n, err := l.copyInto(ctx, "players",
		[]string{"player_api_id", "player_fifa_api_id", "player_name", "birthday", "height", "weight"}, out)
	result.Players = n
	return err
}

func (l *Loader) loadMatches(ctx context.Context, result *LoadResult) error {
	rows, err := l.src.QueryContext(ctx, `
		SELECT m.match_api_id,
		       m.country_id, c.name AS country_name,
		       m.league_id, l.name AS league_name,
		       m.season, m.stage, m.date,
		       m.home_team_api_id, ht.team_long_name AS home_team_name,
		       m.away_team_api_id, at.team_long_name AS away_team_name,
		       m.home_team_goal, m.away_team_goal
		FROM Match m
		LEFT JOIN League l ON m.league_id = l.id
		LEFT JOIN Country c ON m.country_id = c.id
		LEFT JOIN Team ht ON m.home_team_api_id = ht.team_api_id
		LEFT JOIN Team at ON m.away_team_api_id = at.team_api_id`)
	if err != nil {
		return err
	}
	defer rows.Close()

	var out [][]any
	for rows.Next() {
		var matchID int64
		var countryID, leagueID, stage, homeID, awayID sql.NullInt64
		var countryName, leagueName, homeName, awayName, season, date sql.NullString
		var homeGoal, awayGoal sql.NullInt64
		if err := rows.Scan(
			&matchID, &countryID, &countryName, &leagueID, &leagueName,
			&season, &stage, &date,
			&homeID, &homeName, &awayID, &awayName,
			&homeGoal, &awayGoal,
		); err != nil {
			return err
		}

		// The result tag must stay consistent with the goal counts, so
		// fixtures without goals or a date are dropped rather than loaded
		// with an unknown result.
		when := ParseSourceDate(date.String)
		if !homeGoal.Valid || !awayGoal.Valid || when == nil ||
			!homeName.Valid || !awayName.Valid || !season.Valid {
			result.SkippedMatches++
			continue
		}

		out = append(out, []any{
			matchID, nullI64(countryID), nullStr(countryName),
			nullI64(leagueID), nullStr(leagueName),
			season.String, nullI64(stage), *when,
			nullI64(homeID), homeName.String, nullI64(awayID), awayName.String,
			homeGoal.Int64, awayGoal.Int64,
			deriveResult(int(homeGoal.Int64), int(awayGoal.Int64)),
		})
	}
	if err := rows.Err(); err != nil {
		return err
	}
	n, err := l.copyInto(ctx, "matches", []string{
		"match_api_id", "country_id", "country_name",
		"league_id", "league_name", "season", "stage", "date",
		"home_team_api_id", "home_team_name", "away_team_api_id", "away_team_name",
		"home_team_goal", "away_team_goal", "result",
	}, out)
	result.Matches = n
	return err
}

// skillColumns is the shared order of the numeric skill fields in both the
// source and target tables.
var skillColumns = []string{
	"crossing", "finishing", "heading_accuracy", "short_passing", "volleys",
	"dribbling", "curve", "free_kick_accuracy", "long_passing", "ball_control",
	"acceleration", "sprint_speed", "agility", "reactions", "balance",
	"shot_power", "jumping", "stamina", "strength", "long_shots", "aggression",
	"interceptions", "positioning", "vision", "penalties", "marking",
	"standing_tackle", "sliding_tackle",
	"gk_diving", "gk_handling", "gk_kicking", "gk_positioning", "gk_reflexes",
}

func (l *Loader) loadAttributes(ctx context.Context, result *LoadResult, limit int) error {
	query := "SELECT player_api_id, player_fifa_api_id, date, overall_rating, potential, " +
		"preferred_foot, attacking_work_rate, defensive_work_rate, " +
		strings.Join(skillColumns, ", ") +
		" FROM Player_Attributes"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := l.src.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	var out [][]any
	for rows.Next() {
		var playerID, fifaID, overall, potential sql.NullInt64
		var date, foot, attackRate, defendRate sql.NullString
		skills := make([]sql.NullInt64, len(skillColumns))

		dest := []any{&playerID, &fifaID, &date, &overall, &potential, &foot, &attackRate, &defendRate}
		for i := range skills {
			dest = append(dest, &skills[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return err
		}

		when := ParseSourceDate(date.String)
		if !playerID.Valid || when == nil {
			result.SkippedAttributes++
			continue
		}

		row := []any{
			playerID.Int64, nullI64(fifaID), *when,
			nullI64(overall), nullI64(potential),
			nullStr(foot), nullStr(attackRate), nullStr(defendRate),
		}
		for _, s := range skills {
			row = append(row, nullI64(s))
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	columns := append([]string{
		"player_api_id", "player_fifa_api_id", "date",
		"overall_rating", "potential",
		"preferred_foot", "attacking_work_rate", "defensive_work_rate",
	}, skillColumns...)
	n, err := l.copyInto(ctx, "player_attributes", columns, out)
	result.Attributes = n
	return err
}

// copyInto bulk-inserts rows with the Postgres COPY protocol.
func (l *Loader) copyInto(ctx context.Context, table string, columns []string, rows [][]any) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	n, err := l.pool.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy into %s: %w", table, err)
	}
	return int(n), nil
}

// deriveResult precomputes the result tag from the home perspective.
func deriveResult(homeGoals, awayGoals int) string {
	switch {
	case homeGoals > awayGoals:
		return store.ResultHomeWin
	case homeGoals < awayGoals:
		return store.ResultAwayWin
	default:
		return store.ResultDraw
	}
}

// --------------------------------------------------------------------------
// Null scan helpers: database/sql null wrappers to COPY-friendly values
// --------------------------------------------------------------------------

func nullStr(v sql.NullString) any {
	if v.Valid {
		return v.String
	}
	return nil
}

func nullI64(v sql.NullInt64) any {
	if v.Valid {
		return v.Int64
	}
	return nil
}

func nullF64(v sql.NullFloat64) any {
	if v.Valid {
		return v.Float64
	}
	return nil
}

func timePtr(v sql.NullString) any {
	if !v.Valid {
		return nil
	}
	if t := ParseSourceDate(v.String); t != nil {
		return *t
	}
	return nil
}
