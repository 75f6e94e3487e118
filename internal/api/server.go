// Package api assembles the chi router: middleware stack, docs, and routes.
package api

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/kickstats/kickstats-data/internal/analytics"
	"github.com/kickstats/kickstats-data/internal/api/handler"
	"github.com/kickstats/kickstats-data/internal/cache"
	"github.com/kickstats/kickstats-data/internal/config"
	"github.com/kickstats/kickstats-data/internal/db"
	"github.com/kickstats/kickstats-data/internal/store"
)

//go:embed openapi.json
var openapiDoc []byte

// NewRouter creates and configures the chi router with all middleware and routes.
func NewRouter(engine *analytics.Engine, reader store.Reader, pool *db.Pool, appCache *cache.Cache, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(engine, reader, pool, appCache, cfg)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI over the embedded OpenAPI document.
	r.Get("/docs/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(openapiDoc)
	})
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Listings
		r.Get("/teams", h.ListTeams)
		r.Get("/leagues", h.ListLeagues)

		// Teams
		r.Get("/teams/{teamName}", h.GetTeamOverview)
		r.Get("/teams/{teamName}/seasons/{season}", h.GetTeamSeasonRecord)
		r.Get("/teams/{teamName}/rating-trend", h.GetTeamRatingTrend)

		// Matches
		r.Get("/matches/high-scoring", h.GetHighScoringMatches)
		r.Get("/head-to-head", h.GetHeadToHead)

		// Players
		r.Get("/players/top", h.GetTopPlayers)
		r.Get("/players/{playerName}", h.GetPlayerOverview)
		r.Get("/players/{playerName}/attributes", h.GetPlayerAttributeHistory)

		// Leagues
		r.Get("/leagues/stats", h.GetLeagueGoalStats)
		r.Get("/leagues/{leagueName}/standings", h.GetLeagueStandings)
		r.Get("/leagues/{leagueName}/top-teams", h.GetLeagueTopTeams)

		// Scorelines
		r.Get("/scorelines/common", h.GetCommonScorelines)
	})

	return r
}
