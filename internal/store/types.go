// Package store defines the soccer snapshot record types and the read-only
// Reader interface the analytics engine consumes. Two implementations exist:
// PG (pgxpool-backed, production) and Mem (in-memory, used by tests and by
// loader verification).
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned by single-entity lookups when no document matches.
// Collection queries that match nothing return empty slices, not ErrNotFound.
var ErrNotFound = errors.New("store: not found")

// Match result tags, precomputed at load time from the home perspective.
const (
	ResultHomeWin = "home_win"
	ResultAwayWin = "away_win"
	ResultDraw    = "draw"
)

// Match is one fixture with denormalized league, country, and team names.
// Names are the lookup keys used throughout the query layer.
type Match struct {
	MatchID      int       `json:"match_api_id"`
	CountryID    int       `json:"country_id"`
	CountryName  string    `json:"country_name"`
	LeagueID     int       `json:"league_id"`
	LeagueName   string    `json:"league_name"`
	Season       string    `json:"season"` // "YYYY/YYYY"
	Stage        int       `json:"stage"`
	Date         time.Time `json:"date"`
	HomeTeamID   int       `json:"home_team_api_id"`
	HomeTeamName string    `json:"home_team_name"`
	AwayTeamID   int       `json:"away_team_api_id"`
	AwayTeamName string    `json:"away_team_name"`
	HomeGoals    int       `json:"home_team_goal"`
	AwayGoals    int       `json:"away_team_goal"`
	Result       string    `json:"result"`
}

// Team carries both the long name (primary lookup key) and the short code.
type Team struct {
	TeamID    int    `json:"team_api_id"`
	FifaID    *int   `json:"team_fifa_api_id,omitempty"`
	LongName  string `json:"team_long_name"`
	ShortName string `json:"team_short_name"`
}

// Player bio fields. Height is in centimeters, weight in pounds, as in the
// source snapshot.
type Player struct {
	PlayerID int        `json:"player_api_id"`
	FifaID   *int       `json:"player_fifa_api_id,omitempty"`
	Name     string     `json:"player_name"`
	Birthday *time.Time `json:"birthday,omitempty"`
	Height   *float64   `json:"height,omitempty"`
	Weight   *float64   `json:"weight,omitempty"`
}

// League maps one-to-one onto a country in this dataset.
type League struct {
	LeagueID    int    `json:"league_id"`
	CountryID   int    `json:"country_id"`
	Name        string `json:"name"`
	CountryName string `json:"country_name"`
}

// PlayerAttributes is one dated scouting snapshot. Many snapshots exist per
// player; together they form the player's rating time series. Skill fields
// are nullable in the source data and stay pointers here.
type PlayerAttributes struct {
	PlayerID          int       `json:"player_api_id"`
	FifaID            *int      `json:"player_fifa_api_id,omitempty"`
	Date              time.Time `json:"date"`
	OverallRating     *int      `json:"overall_rating"`
	Potential         *int      `json:"potential"`
	PreferredFoot     *string   `json:"preferred_foot"`
	AttackingWorkRate *string   `json:"attacking_work_rate"`
	DefensiveWorkRate *string   `json:"defensive_work_rate"`
	Crossing          *int      `json:"crossing"`
	Finishing         *int      `json:"finishing"`
	HeadingAccuracy   *int      `json:"heading_accuracy"`
	ShortPassing      *int      `json:"short_passing"`
	Volleys           *int      `json:"volleys"`
	Dribbling         *int      `json:"dribbling"`
	Curve             *int      `json:"curve"`
	FreeKickAccuracy  *int      `json:"free_kick_accuracy"`
	LongPassing       *int      `json:"long_passing"`
	BallControl       *int      `json:"ball_control"`
	Acceleration      *int      `json:"acceleration"`
	SprintSpeed       *int      `json:"sprint_speed"`
	Agility           *int      `json:"agility"`
	Reactions         *int      `json:"reactions"`
	Balance           *int      `json:"balance"`
	ShotPower         *int      `json:"shot_power"`
	Jumping           *int      `json:"jumping"`
	Stamina           *int      `json:"stamina"`
	Strength          *int      `json:"strength"`
	LongShots         *int      `json:"long_shots"`
	Aggression        *int      `json:"aggression"`
	Interceptions     *int      `json:"interceptions"`
	Positioning       *int      `json:"positioning"`
	Vision            *int      `json:"vision"`
	Penalties         *int      `json:"penalties"`
	Marking           *int      `json:"marking"`
	StandingTackle    *int      `json:"standing_tackle"`
	SlidingTackle     *int      `json:"sliding_tackle"`
	GKDiving          *int      `json:"gk_diving"`
	GKHandling        *int      `json:"gk_handling"`
	GKKicking         *int      `json:"gk_kicking"`
	GKPositioning     *int      `json:"gk_positioning"`
	GKReflexes        *int      `json:"gk_reflexes"`
}
