// Package dataset loads the game log, season summary and optional extras
// into one read-only application state.
//
// Games and the season summary are required: failing to load either is
// fatal. Rivalry groups and annotations are optional and degrade to empty
// with a logged warning.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/h2h-league/internal/facet"
	"github.com/albapepper/h2h-league/internal/game"
	"github.com/albapepper/h2h-league/internal/stats"
)

var (
	ErrGamesUnavailable   = errors.New("game log unavailable")
	ErrSummaryUnavailable = errors.New("season summary unavailable")
)

// GameStore supplies raw games from somewhere other than a JSON source,
// e.g. Postgres.
type GameStore interface {
	LoadGames(ctx context.Context) ([]game.Game, error)
}

// Options names the sources to load. When Store is set it replaces
// GamesSource.
type Options struct {
	GamesSource       string
	SummarySource     string
	RivalrySource     string
	AnnotationsSource string
	Store             GameStore
	HTTPClient        *http.Client
	Logger            *slog.Logger
}

// Report counts what loading kept and dropped.
type Report struct {
	game.NormalizeReport
	MalformedGames   int `json:"malformed_games"`
	SummaryRows      int `json:"summary_rows"`
	MalformedSummary int `json:"malformed_summary"`
	RivalryGroups    int `json:"rivalry_groups"`
	Annotations      int `json:"annotations"`
}

// Summary returns a one-line description for logs.
func (r Report) Summary() string {
	return fmt.Sprintf("%s malformed=%d summary_rows=%d summary_malformed=%d groups=%d annotations=%d",
		r.NormalizeReport.Summary(), r.MalformedGames,
		r.SummaryRows, r.MalformedSummary, r.RivalryGroups, r.Annotations)
}

// Dataset is the loaded league history. It is built once and never mutated
// afterwards, so it is safe for concurrent readers.
type Dataset struct {
	Games       []game.Game
	Weeks       *game.WeekIndex
	Universe    facet.Universe
	Summary     []game.SeasonSummaryRow
	Groups      []stats.RivalryGroup
	Annotations stats.Annotations
	Report      Report
	LoadedAt    time.Time
}

// Build normalizes raw games, annotates derived weeks and assembles a
// Dataset. summary, groups and notes may be nil.
func Build(raw []game.Game, summary []game.SeasonSummaryRow, groups []stats.RivalryGroup, notes stats.Annotations) *Dataset {
	games, nr := game.NormalizeWithReport(raw)
	weeks := game.BuildWeekIndex(games)
	weeks.Annotate(games)

	if summary == nil {
		summary = []game.SeasonSummaryRow{}
	}
	if groups == nil {
		groups = []stats.RivalryGroup{}
	}
	return &Dataset{
		Games:       games,
		Weeks:       weeks,
		Universe:    facet.UniverseOf(games),
		Summary:     summary,
		Groups:      groups,
		Annotations: notes,
		Report: Report{
			NormalizeReport: nr,
			SummaryRows:     len(summary),
			RivalryGroups:   len(groups),
			Annotations:     len(notes),
		},
		LoadedAt: time.Now(),
	}
}

// Load reads every configured source and builds the Dataset.
func Load(ctx context.Context, opts Options) (*Dataset, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	raw, malformedGames, err := loadGames(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGamesUnavailable, err)
	}
	if malformedGames > 0 {
		logger.Warn("Skipped malformed game rows", "count", malformedGames)
	}

	data, err := ReadSource(ctx, opts.HTTPClient, opts.SummarySource)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSummaryUnavailable, err)
	}
	summary, malformedSummary, err := game.DecodeSeasonSummary(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSummaryUnavailable, err)
	}
	if malformedSummary > 0 {
		logger.Warn("Skipped malformed season summary rows", "count", malformedSummary)
	}

	var groups []stats.RivalryGroup
	if opts.RivalrySource != "" {
		groups, err = loadRivalries(ctx, opts)
		if err != nil {
			logger.Warn("Rivalry groups unavailable", "source", opts.RivalrySource, "error", err)
			groups = nil
		}
	}

	var notes stats.Annotations
	if opts.AnnotationsSource != "" {
		notes, err = loadAnnotations(ctx, opts)
		if err != nil {
			logger.Warn("Annotations unavailable", "source", opts.AnnotationsSource, "error", err)
			notes = nil
		}
	}

	ds := Build(raw, summary, groups, notes)
	ds.Report.MalformedGames = malformedGames
	ds.Report.MalformedSummary = malformedSummary

	logger.Info("Dataset loaded", "summary", ds.Report.Summary())
	return ds, nil
}

func loadGames(ctx context.Context, opts Options) ([]game.Game, int, error) {
	if opts.Store != nil {
		games, err := opts.Store.LoadGames(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("load games from store: %w", err)
		}
		return games, 0, nil
	}
	data, err := ReadSource(ctx, opts.HTTPClient, opts.GamesSource)
	if err != nil {
		return nil, 0, err
	}
	return game.DecodeGames(data)
}

func loadRivalries(ctx context.Context, opts Options) ([]stats.RivalryGroup, error) {
	data, err := ReadSource(ctx, opts.HTTPClient, opts.RivalrySource)
	if err != nil {
		return nil, err
	}
	return DecodeRivalryGroups(data)
}

func loadAnnotations(ctx context.Context, opts Options) (stats.Annotations, error) {
	data, err := ReadSource(ctx, opts.HTTPClient, opts.AnnotationsSource)
	if err != nil {
		return nil, err
	}
	return DecodeAnnotations(data)
}

// Seasons lists seasons present in the game log, ascending.
func (d *Dataset) Seasons() []int {
	return d.Universe.Seasons
}

// HasSeason reports whether any game belongs to season.
func (d *Dataset) HasSeason(season int) bool {
	for _, s := range d.Universe.Seasons {
		if s == season {
			return true
		}
	}
	return false
}
