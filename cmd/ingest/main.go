// Command ingest is the H2H League data maintenance CLI.
//
// Usage:
//
//	h2h-ingest sleeper teams --league 1180000000000000000
//	h2h-ingest sleeper import --league 1180000000000000000 --season 2025 \
//	    --h2h assets/H2H.json --map assets/sleeper_map.json --weeks 1-14 --only-played
//	h2h-ingest validate --games assets/H2H.json --summary assets/seasons.json
//	h2h-ingest publish --games assets/H2H.json
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/h2h-league/internal/config"
	"github.com/albapepper/h2h-league/internal/dataset"
	"github.com/albapepper/h2h-league/internal/db"
	"github.com/albapepper/h2h-league/internal/game"
	"github.com/albapepper/h2h-league/internal/seed"
	"github.com/albapepper/h2h-league/internal/sleeper"
	"github.com/albapepper/h2h-league/internal/stats"
)

var (
	verbose bool
	logger  = newLogger(false)
)

func newLogger(debug bool) *slog.Logger {
	level := charmlog.InfoLevel
	if debug {
		level = charmlog.DebugLevel
	}
	return slog.New(charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	}))
}

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "h2h-ingest",
		Short: "H2H League data maintenance CLI",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(verbose)
			slog.SetDefault(logger)
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	root.AddCommand(sleeperCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(publishCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// sleeper command
// --------------------------------------------------------------------------

func sleeperCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sleeper",
		Short: "Pull weekly results from a Sleeper league",
	}
	cmd.AddCommand(sleeperTeamsCmd())
	cmd.AddCommand(sleeperImportCmd())
	return cmd
}

func newImporter(cfg *config.Config) *sleeper.Importer {
	client := sleeper.NewClient(cfg.SleeperBaseURL, cfg.SleeperRequestsPerMinute, logger)
	return sleeper.NewImporter(client, logger)
}

func sleeperTeamsCmd() *cobra.Command {
	var leagueID string
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List league rosters and print a roster mapping template",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) error {
				teams, err := newImporter(cfg).Teams(ctx, leagueID)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%-8s %-22s %-20s %-20s %s\n", "ROSTER", "OWNER_USER_ID", "DISPLAY_NAME", "USERNAME", "TEAM_NAME")
				for _, t := range teams {
					fmt.Fprintf(out, "%-8d %-22s %-20s %-20s %s\n", t.RosterID, t.OwnerUserID, t.DisplayName, t.Username, t.TeamName)
				}

				tmpl, err := json.MarshalIndent(sleeper.MappingTemplate(teams), "", "  ")
				if err != nil {
					return fmt.Errorf("encode mapping template: %w", err)
				}
				fmt.Fprintf(out, "\nMapping template (roster_id -> game log team name):\n%s\n", tmpl)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&leagueID, "league", "", "Sleeper league ID")
	_ = cmd.MarkFlagRequired("league")
	return cmd
}

func sleeperImportCmd() *cobra.Command {
	var (
		leagueID   string
		season     int
		inPath     string
		outPath    string
		mapPath    string
		weekSpec   string
		onlyPlayed bool
		cutoffDate string
		sortMode   string
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Append a season's Sleeper matchups to the game log",
		RunE: func(cmd *cobra.Command, args []string) error {
			weeks, err := sleeper.ParseWeeks(weekSpec)
			if err != nil {
				return err
			}
			mode, err := sleeper.ParseSortMode(sortMode)
			if err != nil {
				return err
			}
			var cutoff time.Time
			if cutoffDate != "" {
				cutoff, err = time.Parse(sleeper.DateLayout, cutoffDate)
				if err != nil {
					return fmt.Errorf("--cutoff-date must be YYYY-MM-DD: %w", err)
				}
			}
			mapping, err := readMapping(mapPath)
			if err != nil {
				return err
			}
			raw, err := os.ReadFile(inPath)
			if err != nil {
				return fmt.Errorf("read game log: %w", err)
			}
			gameLog, err := sleeper.ParseGameLog(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", inPath, err)
			}

			return run(func(ctx context.Context, cfg *config.Config) error {
				start := time.Now()
				result, err := newImporter(cfg).Run(ctx, gameLog, sleeper.ImportOptions{
					LeagueID:   leagueID,
					Season:     season,
					Weeks:      weeks,
					Mapping:    mapping,
					OnlyPlayed: onlyPlayed,
					Cutoff:     cutoff,
				})
				if err != nil {
					return err
				}
				for _, e := range result.Errors {
					logger.Error("import error", "error", e)
				}

				gameLog.Sort(mode, season)
				encoded, err := gameLog.Encode()
				if err != nil {
					return err
				}
				if outPath == "" {
					outPath = inPath
				}
				if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
					return fmt.Errorf("write game log: %w", err)
				}
				logger.Info("Sleeper import finished",
					"out", outPath, "rows", gameLog.Len(),
					"duration", time.Since(start).Round(time.Millisecond),
					"summary", result.Summary())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&leagueID, "league", "", "Sleeper league ID")
	cmd.Flags().IntVar(&season, "season", time.Now().Year(), "Season year written to new rows")
	cmd.Flags().StringVar(&inPath, "h2h", "assets/H2H.json", "Existing game log")
	cmd.Flags().StringVar(&outPath, "out", "", "Output path (defaults to --h2h)")
	cmd.Flags().StringVar(&mapPath, "map", "", "JSON object mapping roster_id to team name")
	cmd.Flags().StringVar(&weekSpec, "weeks", "1-14", "Weeks, e.g. 1-14 or 1,3,5-7")
	cmd.Flags().BoolVar(&onlyPlayed, "only-played", false, "Skip future weeks and 0-0 matchups")
	cmd.Flags().StringVar(&cutoffDate, "cutoff-date", "", "Last playable date for --only-played (default today, UTC)")
	cmd.Flags().StringVar(&sortMode, "sort-mode", string(sleeper.SortNone), "none, season or global")
	_ = cmd.MarkFlagRequired("league")
	_ = cmd.MarkFlagRequired("map")
	return cmd
}

func readMapping(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping: %w", err)
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("mapping %s must be a JSON object of roster_id to name: %w", path, err)
	}
	return m, nil
}

// --------------------------------------------------------------------------
// validate command
// --------------------------------------------------------------------------

func validateCmd() *cobra.Command {
	var gamesPath, summaryPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load and normalize a game log and report what was kept",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			raw, malformed, err := readGames(ctx, gamesPath)
			if err != nil {
				return err
			}
			var summary []game.SeasonSummaryRow
			var badSummary int
			if summaryPath != "" {
				data, err := dataset.ReadSource(ctx, nil, summaryPath)
				if err != nil {
					return fmt.Errorf("%w: %v", dataset.ErrSummaryUnavailable, err)
				}
				summary, badSummary, err = game.DecodeSeasonSummary(data)
				if err != nil {
					return fmt.Errorf("%w: %v", dataset.ErrSummaryUnavailable, err)
				}
			}

			d := dataset.Build(raw, summary, nil, nil)
			d.Report.MalformedGames = malformed
			d.Report.MalformedSummary = badSummary

			logger.Info("Validation complete",
				"summary", d.Report.Summary(),
				"seasons", d.Seasons(),
				"teams", len(d.Universe.Teams),
				"max_week", d.Weeks.Max())

			out := cmd.OutOrStdout()
			for _, s := range d.Seasons() {
				fmt.Fprintf(out, "%d: %d games\n", s, len(stats.InSeason(d.Games, s)))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&gamesPath, "games", "assets/H2H.json", "Game log file or URL")
	cmd.Flags().StringVar(&summaryPath, "summary", "", "Season summary file or URL")
	return cmd
}

func readGames(ctx context.Context, src string) ([]game.Game, int, error) {
	data, err := dataset.ReadSource(ctx, nil, src)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", dataset.ErrGamesUnavailable, err)
	}
	games, malformed, err := game.DecodeGames(data)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", dataset.ErrGamesUnavailable, err)
	}
	return games, malformed, nil
}

// --------------------------------------------------------------------------
// publish command
// --------------------------------------------------------------------------

func publishCmd() *cobra.Command {
	var gamesPath string
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Normalize a game log and upsert it into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) error {
				if cfg.DatabaseURL == "" {
					return fmt.Errorf("DATABASE_URL is required")
				}
				raw, malformed, err := readGames(ctx, gamesPath)
				if err != nil {
					return err
				}
				if malformed > 0 {
					logger.Warn("Skipped malformed rows", "count", malformed)
				}

				pool, err := db.New(ctx, cfg)
				if err != nil {
					return err
				}
				defer pool.Close()

				start := time.Now()
				result := seed.SeedGames(ctx, pool, raw, logger)
				logger.Info("Publish finished",
					"duration", time.Since(start).Round(time.Millisecond),
					"summary", result.Summary())
				for _, e := range result.Errors {
					logger.Error("publish error", "error", e)
				}
				if len(result.Errors) > 0 {
					return fmt.Errorf("%d rows failed", len(result.Errors))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&gamesPath, "games", "assets/H2H.json", "Game log file or URL")
	return cmd
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

// run loads config and invokes fn under a signal-aware context.
func run(fn func(ctx context.Context, cfg *config.Config) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return fn(ctx, cfg)
}
