package facet

import (
	"slices"

	"github.com/albapepper/h2h-league/internal/game"
)

// Universe lists every selectable value per facet. Teams double as the
// opponent universe.
type Universe struct {
	Teams   []string `json:"teams"`
	Seasons []int    `json:"seasons"`
	Weeks   []int    `json:"weeks"`
	Types   []string `json:"types"`
	Rounds  []string `json:"rounds"`
}

// UniverseOf collects the facet values present in games. Teams and types are
// sorted alphabetically, seasons ascending, weeks run 1..max derived week and
// rounds follow CompareRounds.
func UniverseOf(games []game.Game) Universe {
	teams := make(map[string]struct{})
	seasons := make(map[int]struct{})
	types := make(map[string]struct{})
	rounds := make(map[string]struct{})
	maxWeek := 0

	for _, g := range games {
		teams[g.TeamA] = struct{}{}
		teams[g.TeamB] = struct{}{}
		seasons[g.Season] = struct{}{}
		types[game.NormalizedType(g)] = struct{}{}
		rounds[game.NormalizedRound(g)] = struct{}{}
		maxWeek = max(maxWeek, g.WeekA, g.WeekB)
	}

	u := Universe{
		Teams:   sortedKeys(teams),
		Seasons: sortedKeys(seasons),
		Weeks:   make([]int, 0, maxWeek),
		Types:   sortedKeys(types),
		Rounds:  make([]string, 0, len(rounds)),
	}
	for w := 1; w <= maxWeek; w++ {
		u.Weeks = append(u.Weeks, w)
	}
	for r := range rounds {
		u.Rounds = append(u.Rounds, r)
	}
	SortRounds(u.Rounds)
	return u
}

func sortedKeys[T int | string](m map[T]struct{}) []T {
	out := make([]T, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
