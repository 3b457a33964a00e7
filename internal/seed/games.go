package seed

import (
	"context"
	"log/slog"

	"github.com/albapepper/h2h-league/internal/game"
)

// GameWriter upserts one game and reports whether it was new.
type GameWriter interface {
	UpsertGame(ctx context.Context, g game.Game) (bool, error)
}

// SeedGames normalizes games and upserts every survivor. Invalid and
// duplicate records are counted as skipped. A failed row is recorded and the
// run continues; a cancelled context stops it. A nil logger uses
// slog.Default().
func SeedGames(ctx context.Context, w GameWriter, games []game.Game, logger *slog.Logger) SeedResult {
	if logger == nil {
		logger = slog.Default()
	}
	var result SeedResult

	kept, report := game.NormalizeWithReport(games)
	result.Skipped = report.Duplicates + report.Invalid
	logger.Info("Publishing games", "input", report.Input, "kept", report.Kept)

	for i, g := range kept {
		if err := ctx.Err(); err != nil {
			result.AddErrorf("cancelled after %d games: %v", i, err)
			break
		}
		inserted, err := w.UpsertGame(ctx, g)
		switch {
		case err != nil:
			result.AddErrorf("%v", err)
		case inserted:
			result.Inserted++
		default:
			result.Updated++
		}
		if (i+1)%250 == 0 {
			logger.Info("Publish progress", "processed", i+1)
		}
	}

	logger.Info("Publish done", "summary", result.Summary())
	return result
}
