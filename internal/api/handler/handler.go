// Package handler provides HTTP handlers for all API endpoints.
// Handlers compute straight from the loaded dataset; rendered bodies are
// kept in the response cache keyed by route and query.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/albapepper/h2h-league/internal/api/respond"
	"github.com/albapepper/h2h-league/internal/cache"
	"github.com/albapepper/h2h-league/internal/config"
	"github.com/albapepper/h2h-league/internal/dataset"
	"github.com/albapepper/h2h-league/internal/metrics"
)

// Pinger is the optional database health dependency.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	data    *dataset.Dataset
	cache   *cache.Cache
	cfg     *config.Config
	metrics metrics.Metrics
	db      Pinger
}

// New creates a Handler with shared dependencies. db may be nil when the
// game log is not read from Postgres.
func New(ds *dataset.Dataset, c *cache.Cache, cfg *config.Config, m metrics.Metrics, db Pinger) *Handler {
	return &Handler{
		data:    ds,
		cache:   c,
		cfg:     cfg,
		metrics: m,
		db:      db,
	}
}

// serveCached writes the cached body for key, or renders build() into the
// cache first. Matching If-None-Match requests get a 304.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, route, key string, ttl time.Duration, build func() any) {
	if data, etag, ok := h.cache.Get(key); ok {
		h.metrics.IncCacheHit(route)
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}
	h.metrics.IncCacheMiss(route)

	data, err := json.Marshal(build())
	if err != nil {
		respond.WriteErrorDetail(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to encode response", err.Error())
		return
	}
	etag := h.cache.Set(key, data, ttl)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, ttl, false)
}

// cacheKey is the route plus the sorted query string.
func cacheKey(route string, r *http.Request) string {
	q := r.URL.Query().Encode()
	if q == "" {
		return route
	}
	return route + "?" + q
}

// intParam parses an optional integer query parameter.
func intParam(r *http.Request, name string) (int, bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status and dataset counts.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "H2H League API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"dataset": map[string]interface{}{
			"games":     len(h.data.Games),
			"seasons":   h.data.Seasons(),
			"loaded_at": h.data.LoadedAt.UTC().Format(time.RFC3339),
			"report":    h.data.Report,
		},
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns ok, a unix-millisecond timestamp and the loaded game count.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"ts":    time.Now().UnixMilli(),
		"games": len(h.data.Games),
	})
}

// HealthCheckDB verifies database connectivity when Postgres is configured.
// @Summary Database health check
// @Description Verifies Postgres connectivity; reports not_configured when the game log is file-backed.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
			"status":    "healthy",
			"database":  "not_configured",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	if err := h.db.HealthCheck(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
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
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys, hits, misses).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
