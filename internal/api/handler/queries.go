package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kickstats/kickstats-data/internal/analytics"
	"github.com/kickstats/kickstats-data/internal/api/respond"
	"github.com/kickstats/kickstats-data/internal/cache"
)

const defaultLimit = 10

// normalizeSeason converts the URL-friendly "2015-2016" path form into the
// canonical "2015/2016" the engine expects.
func normalizeSeason(s string) string {
	return strings.ReplaceAll(s, "-", "/")
}

// --------------------------------------------------------------------------
// Listings
// --------------------------------------------------------------------------

// ListTeams returns every team, ordered by long name. Listings only change
// on re-ingest, so they live in the long cache tier.
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "teams_all"
	if h.serveCached(w, r, cacheKey) {
		return
	}
	teams, err := h.reader.Teams(r.Context())
	if err != nil {
		respond.WriteError(w, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "datastore unreachable")
		return
	}
	h.writeCached(w, cacheKey, cache.TTLListing, map[string]interface{}{
		"total_teams": len(teams),
		"teams":       teams,
	})
}

// ListLeagues returns every league, ordered by name.
func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "leagues_all"
	if h.serveCached(w, r, cacheKey) {
		return
	}
	leagues, err := h.reader.Leagues(r.Context())
	if err != nil {
		respond.WriteError(w, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "datastore unreachable")
		return
	}
	h.writeCached(w, cacheKey, cache.TTLListing, map[string]interface{}{
		"total_leagues": len(leagues),
		"leagues":       leagues,
	})
}

// --------------------------------------------------------------------------
// Team queries
// --------------------------------------------------------------------------

// GetTeamOverview returns team info, career totals, and recent matches.
func (h *Handler) GetTeamOverview(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "teamName")
	overview, err := h.engine.TeamOverview(r.Context(), team)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, overview)
}

// GetTeamSeasonRecord returns one team's aggregate line for one season.
func (h *Handler) GetTeamSeasonRecord(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "teamName")
	season := normalizeSeason(chi.URLParam(r, "season"))
	record, err := h.engine.TeamSeasonRecord(r.Context(), team, season)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, record)
}

// GetTeamRatingTrend returns per-season mean player ratings for a team.
func (h *Handler) GetTeamRatingTrend(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "teamName")
	trend, err := h.engine.TeamRatingTrend(r.Context(), team)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"team":  team,
		"trend": trend,
	})
}

// GetHighScoringMatches finds matches where a team reached the goal threshold.
func (h *Handler) GetHighScoringMatches(w http.ResponseWriter, r *http.Request) {
	team := r.URL.Query().Get("team")
	if team == "" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "team query parameter is required")
		return
	}
	minGoals, ok := intQuery(w, r, "min_goals", analytics.DefaultMinGoals)
	if !ok {
		return
	}
	limit, ok := intQuery(w, r, "limit", 0)
	if !ok {
		return
	}
	matches, err := h.engine.HighScoringMatches(r.Context(), team, minGoals, limit)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"team":          team,
		"min_goals":     minGoals,
		"total_matches": len(matches),
		"matches":       matches,
	})
}

// GetHeadToHead returns the aggregate record between two named teams.
func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	team1 := r.URL.Query().Get("team1")
	team2 := r.URL.Query().Get("team2")
	if team1 == "" || team2 == "" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "team1 and team2 query parameters are required")
		return
	}
	record, err := h.engine.HeadToHead(r.Context(), team1, team2)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, record)
}

// --------------------------------------------------------------------------
// Player queries
// --------------------------------------------------------------------------

// GetPlayerOverview returns a player's bio and latest attribute snapshot.
func (h *Handler) GetPlayerOverview(w http.ResponseWriter, r *http.Request) {
	player := chi.URLParam(r, "playerName")
	overview, err := h.engine.PlayerOverview(r.Context(), player)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, overview)
}

// GetPlayerAttributeHistory returns a player's snapshots, date ascending.
func (h *Handler) GetPlayerAttributeHistory(w http.ResponseWriter, r *http.Request) {
	player := chi.URLParam(r, "playerName")
	history, err := h.engine.PlayerAttributeHistory(r.Context(), player)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"player_name": player,
		"entries":     len(history),
		"history":     history,
	})
}

// GetTopPlayers ranks players by mean overall rating.
func (h *Handler) GetTopPlayers(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")
	limit, ok := intQuery(w, r, "limit", defaultLimit)
	if !ok {
		return
	}

	cacheKey := fmt.Sprintf("players_top:%s:%d", league, limit)
	if h.serveCached(w, r, cacheKey) {
		return
	}
	players, err := h.engine.TopPlayersByRating(r.Context(), league, limit)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	h.writeCached(w, cacheKey, cache.TTLDerived, map[string]interface{}{
		"league":  leagueLabel(league),
		"limit":   limit,
		"players": players,
	})
}

// --------------------------------------------------------------------------
// League queries
// --------------------------------------------------------------------------

// GetLeagueGoalStats returns per-league goal volume and averages.
func (h *Handler) GetLeagueGoalStats(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "league_stats"
	if h.serveCached(w, r, cacheKey) {
		return
	}
	stats, err := h.engine.LeagueGoalStats(r.Context())
	if err != nil {
		writeQueryError(w, err)
		return
	}
	h.writeCached(w, cacheKey, cache.TTLDerived, map[string]interface{}{
		"total_leagues": len(stats),
		"leagues":       stats,
	})
}

// GetLeagueStandings returns the full ranked table for a league and season.
func (h *Handler) GetLeagueStandings(w http.ResponseWriter, r *http.Request) {
	league := chi.URLParam(r, "leagueName")
	season := r.URL.Query().Get("season")
	if season == "" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "season query parameter is required")
		return
	}
	season = normalizeSeason(season)

	cacheKey := fmt.Sprintf("standings:%s:%s", league, season)
	if h.serveCached(w, r, cacheKey) {
		return
	}
	standings, err := h.engine.LeagueStandings(r.Context(), league, season)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	h.writeCached(w, cacheKey, cache.TTLDerived, map[string]interface{}{
		"league_name": league,
		"season":      season,
		"standings":   standings,
	})
}

// GetLeagueTopTeams returns the first five standings rows.
func (h *Handler) GetLeagueTopTeams(w http.ResponseWriter, r *http.Request) {
	league := chi.URLParam(r, "leagueName")
	season := r.URL.Query().Get("season")
	if season == "" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "season query parameter is required")
		return
	}
	season = normalizeSeason(season)

	cacheKey := fmt.Sprintf("top_teams:%s:%s", league, season)
	if h.serveCached(w, r, cacheKey) {
		return
	}
	standings, err := h.engine.LeagueStandings(r.Context(), league, season)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	if len(standings) > 5 {
		standings = standings[:5]
	}
	h.writeCached(w, cacheKey, cache.TTLDerived, map[string]interface{}{
		"league_name": league,
		"season":      season,
		"top_teams":   standings,
	})
}

// GetCommonScorelines returns the most frequent final scores.
func (h *Handler) GetCommonScorelines(w http.ResponseWriter, r *http.Request) {
	limit, ok := intQuery(w, r, "limit", defaultLimit)
	if !ok {
		return
	}

	cacheKey := fmt.Sprintf("scorelines:%d", limit)
	if h.serveCached(w, r, cacheKey) {
		return
	}
	scorelines, err := h.engine.CommonScorelines(r.Context(), limit)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	h.writeCached(w, cacheKey, cache.TTLDerived, map[string]interface{}{
		"limit":      limit,
		"scorelines": scorelines,
	})
}

// --------------------------------------------------------------------------
// Cache plumbing
// --------------------------------------------------------------------------

// serveCached replays a cached response when present, honoring If-None-Match.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string) bool {
	data, etag, ok := h.cache.Get(key)
	if !ok {
		return false
	}
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return true
	}
	respond.WriteJSON(w, data, etag, cache.TTLDerived, true)
	return true
}

// writeCached serializes, stores, and writes a fresh response.
func (h *Handler) writeCached(w http.ResponseWriter, key string, ttl time.Duration, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "encode response")
		return
	}
	etag := h.cache.Set(key, data, ttl)
	respond.WriteJSON(w, data, etag, ttl, false)
}

func leagueLabel(league string) string {
	if league == "" {
		return "All leagues"
	}
	return league
}
