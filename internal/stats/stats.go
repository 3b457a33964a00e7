// Package stats computes league aggregates over normalized games: standings,
// head-to-head records, streaks, blowouts and scoring records, expected-win
// luck, weekly awards, rivalry tables and owner careers.
//
// Every function is pure and deterministic for a given input order. Inputs
// are never mutated; unknown teams yield zero-shaped results.
package stats

import (
	"math"

	"github.com/albapepper/h2h-league/internal/game"
)

// Scope selects which games an aggregate considers. The zero value restricts
// to Regular games.
type Scope int

const (
	ScopeRegular Scope = iota
	ScopeAll
)

// ParseScope maps "all" to ScopeAll and anything else to ScopeRegular.
func ParseScope(s string) Scope {
	if s == "all" {
		return ScopeAll
	}
	return ScopeRegular
}

func (s Scope) String() string {
	if s == ScopeAll {
		return "all"
	}
	return "regular"
}

func (s Scope) includes(g game.Game) bool {
	return s == ScopeAll || game.IsRegular(g)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// InSeason returns the games of one season, in input order.
func InSeason(games []game.Game, season int) []game.Game {
	out := make([]game.Game, 0, len(games))
	for _, g := range games {
		if g.Season == season {
			out = append(out, g)
		}
	}
	return out
}
