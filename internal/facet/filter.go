// Package facet narrows a game log by independent selection sets: team,
// season, week, opponent, type and round.
//
// Each facet follows the same convention: an empty selection, or one that
// covers the facet's whole universe, is inactive and filters nothing.
package facet

import (
	"github.com/albapepper/h2h-league/internal/game"
)

// TeamFilter is either every team or one named team. The zero value is
// AllTeams.
type TeamFilter struct {
	name     string
	specific bool
}

// AllTeams applies no team restriction.
func AllTeams() TeamFilter { return TeamFilter{} }

// SpecificTeam restricts to games involving name.
func SpecificTeam(name string) TeamFilter {
	return TeamFilter{name: name, specific: true}
}

// Team returns the selected team, or false for AllTeams.
func (f TeamFilter) Team() (string, bool) { return f.name, f.specific }

// IsAll reports whether f is AllTeams.
func (f TeamFilter) IsAll() bool { return !f.specific }

func (f TeamFilter) String() string {
	if !f.specific {
		return "all teams"
	}
	return f.name
}

// Selection holds the chosen values per facet. Nil or empty slices leave the
// facet inactive.
type Selection struct {
	Team      TeamFilter
	Seasons   []int
	Weeks     []int
	Opponents []string
	Types     []string
	Rounds    []string
}

type set[T comparable] map[T]struct{}

// activeSet returns nil when sel is empty or covers every value in universe.
func activeSet[T comparable](sel, universe []T) set[T] {
	if len(sel) == 0 {
		return nil
	}
	s := make(set[T], len(sel))
	for _, v := range sel {
		s[v] = struct{}{}
	}
	for _, v := range universe {
		if _, ok := s[v]; !ok {
			return s
		}
	}
	return nil
}

func (s set[T]) has(v T) bool {
	_, ok := s[v]
	return ok
}

// Apply returns the games matching every active facet, in input order. The
// universe used to detect "everything selected" is derived from games.
func Apply(games []game.Game, sel Selection) []game.Game {
	return ApplyWithin(games, sel, UniverseOf(games))
}

// ApplyWithin is Apply against a precomputed universe.
//
// With a specific team, the week facet uses that team's week and the
// opponent facet the other participant. With AllTeams, both match when
// either participant qualifies.
func ApplyWithin(games []game.Game, sel Selection, u Universe) []game.Game {
	seasons := activeSet(sel.Seasons, u.Seasons)
	weeks := activeSet(sel.Weeks, u.Weeks)
	opponents := activeSet(sel.Opponents, u.Teams)
	types := activeSet(sel.Types, u.Types)
	rounds := activeSet(sel.Rounds, u.Rounds)
	team, specific := sel.Team.Team()

	out := make([]game.Game, 0, len(games))
	for _, g := range games {
		if specific && !g.Involves(team) {
			continue
		}
		if seasons != nil && !seasons.has(g.Season) {
			continue
		}
		if types != nil && !types.has(game.NormalizedType(g)) {
			continue
		}
		if rounds != nil && !rounds.has(game.NormalizedRound(g)) {
			continue
		}
		if weeks != nil && !matchWeek(g, weeks, team, specific) {
			continue
		}
		if opponents != nil && !matchOpponent(g, opponents, team, specific) {
			continue
		}
		out = append(out, g)
	}
	return out
}

func matchWeek(g game.Game, weeks set[int], team string, specific bool) bool {
	if specific {
		w, ok := g.WeekFor(team)
		return ok && weeks.has(w)
	}
	return (g.WeekA > 0 && weeks.has(g.WeekA)) || (g.WeekB > 0 && weeks.has(g.WeekB))
}

func matchOpponent(g game.Game, opponents set[string], team string, specific bool) bool {
	if specific {
		s, ok := game.SidesFor(g, team)
		return ok && opponents.has(s.Opponent)
	}
	return opponents.has(g.TeamA) || opponents.has(g.TeamB)
}
