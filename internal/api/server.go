package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/h2h-league/internal/api/handler"
	"github.com/albapepper/h2h-league/internal/cache"
	"github.com/albapepper/h2h-league/internal/config"
	"github.com/albapepper/h2h-league/internal/dataset"
	"github.com/albapepper/h2h-league/internal/metrics"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Data           *dataset.Dataset
	Cache          *cache.Cache
	Config         *config.Config
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	DB             handler.Pinger
}

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(d Deps) *chi.Mux {
	cfg := d.Config
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware(d.Metrics))
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
	h := handler.New(d.Data, d.Cache, cfg, d.Metrics, d.DB)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	if d.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", d.MetricsHandler)
	}

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// Stateless edge endpoint kept at its original path.
	r.Get("/api/blowouts", h.GetBlowouts)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/blowouts", h.GetBlowouts)

		// Aggregates
		r.Get("/standings/{season}", h.GetStandings)
		r.Get("/h2h", h.GetHeadToHead)
		r.Get("/streaks/{team}", h.GetStreaks)
		r.Get("/records", h.GetRecords)
		r.Get("/luck", h.GetLuck)
		r.Get("/awards", h.GetAwards)

		// Rivalries
		r.Get("/rivalries/{team}", h.GetRivalries)
		r.Get("/rivalry-groups", h.GetRivalryGroups)

		// Bootstrap
		r.Get("/owners", h.GetOwners)
		r.Get("/facets", h.GetFacets)

		// Facet-filtered games
		r.Get("/games", h.GetGames)
	})

	return r
}
