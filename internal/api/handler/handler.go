// Package handler provides HTTP handlers for all API endpoints. Handlers
// validate and decode request parameters, call the analytics engine, and
// encode its plain result structures; no aggregation logic lives here.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/kickstats/kickstats-data/internal/analytics"
	"github.com/kickstats/kickstats-data/internal/api/respond"
	"github.com/kickstats/kickstats-data/internal/cache"
	"github.com/kickstats/kickstats-data/internal/config"
	"github.com/kickstats/kickstats-data/internal/db"
	"github.com/kickstats/kickstats-data/internal/store"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	engine *analytics.Engine
	reader store.Reader
	pool   *db.Pool
	cache  *cache.Cache
	cfg    *config.Config
}

// New creates a Handler with shared dependencies. pool may be nil when the
// reader is not Postgres-backed (tests); /health/db then reports unknown.
func New(engine *analytics.Engine, reader store.Reader, pool *db.Pool, c *cache.Cache, cfg *config.Config) *Handler {
	return &Handler{
		engine: engine,
		reader: reader,
		pool:   pool,
		cache:  c,
		cfg:    cfg,
	}
}

// Root serves API info at /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Kickstats Data API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if h.pool == nil {
		respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
			"status":   "healthy",
			"database": "not configured",
		})
		return
	}
	if err := h.pool.HealthCheck(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// --------------------------------------------------------------------------
// Shared helpers
// --------------------------------------------------------------------------

// writeQueryError maps the engine's error taxonomy onto HTTP statuses.
func writeQueryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analytics.ErrInvalidArgument):
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
	case errors.Is(err, analytics.ErrNotFound):
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, analytics.ErrStoreUnavailable):
		respond.WriteError(w, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "datastore unreachable")
	default:
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

// intQuery reads an integer query parameter, falling back when absent.
// Malformed values report ok=false after writing a 400.
func intQuery(w http.ResponseWriter, r *http.Request, name string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ARGUMENT", name+" must be an integer")
		return 0, false
	}
	return n, true
}
