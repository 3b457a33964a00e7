package db

import (
	"context"
	"fmt"

	"github.com/albapepper/h2h-league/internal/game"
)

// LoadGames reads the whole game log in insertion order. Normalization
// happens in the dataset layer, not here.
func (p *Pool) LoadGames(ctx context.Context) ([]game.Game, error) {
	rows, err := p.Query(ctx, "load_games")
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	var games []game.Game
	for rows.Next() {
		var g game.Game
		if err := rows.Scan(
			&g.Season, &g.Date, &g.TeamA, &g.TeamB,
			&g.ScoreA, &g.ScoreB, &g.Week, &g.Round, &g.Type,
		); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate games: %w", err)
	}
	return games, nil
}

// UpsertGame writes one game keyed by its canonical key. It reports whether
// the row was newly inserted.
func (p *Pool) UpsertGame(ctx context.Context, g game.Game) (bool, error) {
	var week *int
	if g.Week > 0 {
		week = &g.Week
	}
	var inserted bool
	err := p.QueryRow(ctx, "upsert_game",
		game.CanonicalKey(g), g.Season, g.Date, g.TeamA, g.TeamB,
		g.ScoreA, g.ScoreB, week, g.Round, g.Type,
	).Scan(&inserted)
	if err != nil {
		return false, fmt.Errorf("upsert game %d %s %s-%s: %w", g.Season, g.Date, g.TeamA, g.TeamB, err)
	}
	return inserted, nil
}
