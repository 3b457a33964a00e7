// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/ingest.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Table names for the Postgres game log
// --------------------------------------------------------------------------

const (
	GamesTable = "games"
)

// DefaultSleeperBaseURL is the public Sleeper v1 API.
const DefaultSleeperBaseURL = "https://api.sleeper.app/v1"

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Data sources: file path or http(s) URL
	GamesSource       string
	SummarySource     string
	RivalrySource     string
	AnnotationsSource string
	FetchTimeout      time.Duration

	// Database (optional; replaces GamesSource when set)
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Sleeper importer
	SleeperBaseURL           string
	SleeperRequestsPerMinute int

	// Cache
	CacheEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
// It fails only when no game source is left: GAMES_SOURCE set to blank and
// no DATABASE_URL.
func Load() (*Config, error) {
	cfg := &Config{
		GamesSource:       envOr("GAMES_SOURCE", "assets/H2H.json"),
		SummarySource:     envOr("SUMMARY_SOURCE", "assets/seasons.json"),
		RivalrySource:     os.Getenv("RIVALRY_SOURCE"),
		AnnotationsSource: os.Getenv("ANNOTATIONS_SOURCE"),
		FetchTimeout:      envDuration("FETCH_TIMEOUT_SECONDS", 15, time.Second),

		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 1),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 4),
		DBPoolMaxLife:  envDuration("DB_POOL_MAX_LIFE_MINUTES", 30, time.Minute),

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:4321",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   envDuration("RATE_LIMIT_WINDOW", 60, time.Second),

		SleeperBaseURL:           strings.TrimRight(envOr("SLEEPER_BASE_URL", DefaultSleeperBaseURL), "/"),
		SleeperRequestsPerMinute: envInt("SLEEPER_REQUESTS_PER_MINUTE", 600),

		CacheEnabled: envBool("CACHE_ENABLED", true),
	}

	if v, present := os.LookupEnv("GAMES_SOURCE"); present && strings.TrimSpace(v) == "" {
		cfg.GamesSource = ""
	}
	if cfg.GamesSource == "" && !cfg.UseDatabase() {
		return nil, fmt.Errorf("no game source: set GAMES_SOURCE or DATABASE_URL")
	}
	return cfg, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UseDatabase reports whether the game log is read from Postgres.
func (c *Config) UseDatabase() bool {
	return c.DatabaseURL != ""
}

// --------------------------------------------------------------------------
// Env helpers. Blank or unparseable values fall back to the default.
// --------------------------------------------------------------------------

func envParse[T any](key string, fallback T, parse func(string) (T, error)) T {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	out, err := parse(v)
	if err != nil {
		return fallback
	}
	return out
}

func envOr(key, fallback string) string {
	return envParse(key, fallback, func(v string) (string, error) { return v, nil })
}

func envInt(key string, fallback int) int {
	return envParse(key, fallback, strconv.Atoi)
}

func envBool(key string, fallback bool) bool {
	return envParse(key, fallback, strconv.ParseBool)
}

// envDuration reads an integer count of unit.
func envDuration(key string, fallback int, unit time.Duration) time.Duration {
	return time.Duration(envInt(key, fallback)) * unit
}

func envList(key string, fallback []string) []string {
	return envParse(key, fallback, func(v string) ([]string, error) {
		var out []string
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("empty list")
		}
		return out, nil
	})
}
