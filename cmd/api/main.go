// Command api is the H2H League API server.
//
// Usage:
//
//	h2h-api
//	GAMES_SOURCE=https://example.com/H2H.json API_PORT=8080 h2h-api

// @title H2H League API
// @version 1.0.0
// @description Read-only league history API: standings, head-to-head records, streaks, blowouts, luck, weekly awards, rivalries and owner careers computed from the league game log.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name H2H League
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/h2h-league/internal/api"
	"github.com/albapepper/h2h-league/internal/api/handler"
	"github.com/albapepper/h2h-league/internal/cache"
	"github.com/albapepper/h2h-league/internal/config"
	"github.com/albapepper/h2h-league/internal/dataset"
	"github.com/albapepper/h2h-league/internal/db"
	"github.com/albapepper/h2h-league/internal/metrics"

	_ "github.com/albapepper/h2h-league/docs" // swagger docs
)

func main() {
	started := time.Now()

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	var logHandler slog.Handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	if cfg.IsProduction() {
		// Structured lines for the log collector.
		logHandler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	logger := slog.New(logHandler)
	slog.SetDefault(logger)

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	m := metrics.NewService()

	opts := dataset.Options{
		GamesSource:       cfg.GamesSource,
		SummarySource:     cfg.SummarySource,
		RivalrySource:     cfg.RivalrySource,
		AnnotationsSource: cfg.AnnotationsSource,
		HTTPClient:        &http.Client{Timeout: cfg.FetchTimeout},
		Logger:            logger,
	}

	// Connect to database when configured; it replaces GamesSource.
	var pinger handler.Pinger
	if cfg.UseDatabase() {
		logger.Info("Connecting to database...")
		pool, err := db.New(ctx, cfg)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		logger.Info("Database connected",
			"min_conns", cfg.DBPoolMinConns,
			"max_conns", cfg.DBPoolMaxConns)
		opts.Store = pool
		pinger = pool
	}

	// Load the dataset once; it is read-only for the life of the process.
	loadCtx, loadCancel := context.WithTimeout(ctx, 2*cfg.FetchTimeout)
	data, err := dataset.Load(loadCtx, opts)
	loadCancel()
	if err != nil {
		logger.Error("Failed to load dataset", "error", err)
		os.Exit(1)
	}

	m.SetDatasetGames(len(data.Games))
	m.AddMalformedRows("games", data.Report.MalformedGames+data.Report.Invalid)
	m.AddMalformedRows("summary", data.Report.MalformedSummary)

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	defer appCache.Close()
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Create router
	router := api.NewRouter(api.Deps{
		Data:           data,
		Cache:          appCache,
		Config:         cfg,
		Metrics:        m,
		MetricsHandler: metrics.NewMetricsHandler(),
		DB:             pinger,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	m.SetStartupTime(time.Since(started).Seconds())

	// Start server in background
	go func() {
		logger.Info("Starting H2H League API",
			"addr", addr,
			"environment", cfg.Environment,
			"games", len(data.Games),
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
