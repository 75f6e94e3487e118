package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kickstats/kickstats-data/internal/analytics"
	"github.com/kickstats/kickstats-data/internal/cache"
	"github.com/kickstats/kickstats-data/internal/config"
	"github.com/kickstats/kickstats-data/internal/store"
)

const premierLeague = "England Premier League"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRouter() *chi.Mux {
	rating := func(v int) *int { return &v }
	reader := &store.Mem{
		LeagueDocs: []store.League{
			{LeagueID: 1729, Name: premierLeague, CountryName: "England"},
		},
		TeamDocs: []store.Team{
			{TeamID: 9825, LongName: "Arsenal", ShortName: "ARS"},
			{TeamID: 8455, LongName: "Chelsea", ShortName: "CHE"},
		},
		PlayerDocs: []store.Player{
			{PlayerID: 1, Name: "Lionel Messi"},
		},
		MatchDocs: []store.Match{
			{
				MatchID: 1, LeagueName: premierLeague, Season: "2015/2016",
				Date: day(2015, 8, 15), HomeTeamName: "Arsenal", AwayTeamName: "Chelsea",
				HomeGoals: 3, AwayGoals: 1, Result: store.ResultHomeWin,
			},
			{
				MatchID: 2, LeagueName: premierLeague, Season: "2015/2016",
				Date: day(2016, 1, 9), HomeTeamName: "Chelsea", AwayTeamName: "Arsenal",
				HomeGoals: 2, AwayGoals: 2, Result: store.ResultDraw,
			},
		},
		AttributeDocs: []store.PlayerAttributes{
			{PlayerID: 1, Date: day(2015, 9, 21), OverallRating: rating(93)},
		},
	}
	engine := analytics.New(reader)
	cfg := &config.Config{
		CORSAllowOrigins: []string{"http://localhost:3000"},
		RateLimitEnabled: false,
		CacheEnabled:     true,
	}
	return NewRouter(engine, reader, nil, cache.New(true), cfg)
}

func doGet(t *testing.T, router http.Handler, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestRootAndHealth(t *testing.T) {
	router := testRouter()

	rec, body := doGet(t, router, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Kickstats Data API", body["name"])

	rec, body = doGet(t, router, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])

	rec, body = doGet(t, router, "/health/db")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "not configured", body["database"])

	rec, _ = doGet(t, router, "/health/cache")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListEndpoints(t *testing.T) {
	router := testRouter()

	rec, body := doGet(t, router, "/api/v1/teams")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, body["total_teams"])

	rec, body = doGet(t, router, "/api/v1/leagues")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, body["total_leagues"])
}

// The URL-friendly "2015-2016" season form normalizes to "2015/2016".
func TestSeasonRecordEndpoint(t *testing.T) {
	router := testRouter()

	rec, body := doGet(t, router, "/api/v1/teams/Arsenal/seasons/2015-2016")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2015/2016", body["season"])
	assert.EqualValues(t, 2, body["matches_played"])
	assert.EqualValues(t, 4, body["points"]) // one win, one draw

	rec, body = doGet(t, router, "/api/v1/teams/Arsenal/seasons/2015-2017")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body = doGet(t, router, "/api/v1/teams/Nonexistent%20FC/seasons/2015-2016")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	errBlock, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", errBlock["code"])
}

func TestHighScoringEndpointValidation(t *testing.T) {
	router := testRouter()

	rec, _ := doGet(t, router, "/api/v1/matches/high-scoring")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doGet(t, router, "/api/v1/matches/high-scoring?team=Arsenal&min_goals=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doGet(t, router, "/api/v1/matches/high-scoring?team=Arsenal&min_goals=0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body := doGet(t, router, "/api/v1/matches/high-scoring?team=Arsenal&min_goals=3")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, body["total_matches"])
}

func TestHeadToHeadEndpoint(t *testing.T) {
	router := testRouter()

	rec, body := doGet(t, router, "/api/v1/head-to-head?team1=Arsenal&team2=Chelsea")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, body["total_matches"])
	assert.EqualValues(t, 1, body["team1_wins"])
	assert.EqualValues(t, 1, body["draws"])

	rec, _ = doGet(t, router, "/api/v1/head-to-head?team1=Arsenal")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStandingsEndpointCaching(t *testing.T) {
	router := testRouter()
	path := "/api/v1/leagues/" + url.PathEscape(premierLeague) +
		"/standings?season=" + url.QueryEscape("2015/2016")

	rec, body := doGet(t, router, path)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	standings, ok := body["standings"].([]interface{})
	require.True(t, ok)
	assert.Len(t, standings, 2)

	// Second request replays from cache.
	rec, _ = doGet(t, router, path)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))

	// Conditional request short-circuits to 304.
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("If-None-Match", etag)
	cond := httptest.NewRecorder()
	router.ServeHTTP(cond, req)
	assert.Equal(t, http.StatusNotModified, cond.Code)
}

func TestPlayerEndpoints(t *testing.T) {
	router := testRouter()

	rec, body := doGet(t, router, "/api/v1/players/Lionel%20Messi")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Lionel Messi", body["player_name"])

	rec, body = doGet(t, router, "/api/v1/players/Lionel%20Messi/attributes")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, body["entries"])

	rec, body = doGet(t, router, "/api/v1/players/top?limit=5")
	assert.Equal(t, http.StatusOK, rec.Code)
	players, ok := body["players"].([]interface{})
	require.True(t, ok)
	assert.Len(t, players, 1)
}

func TestScorelinesEndpoint(t *testing.T) {
	router := testRouter()

	rec, body := doGet(t, router, "/api/v1/scorelines/common?limit=1")
	assert.Equal(t, http.StatusOK, rec.Code)
	scorelines, ok := body["scorelines"].([]interface{})
	require.True(t, ok)
	require.Len(t, scorelines, 1)

	rec, _ = doGet(t, router, "/api/v1/scorelines/common?limit=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
