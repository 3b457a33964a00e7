package stats

import (
	"slices"

	"github.com/albapepper/h2h-league/internal/game"
)

// Streak is the longest run of one result. Start and End are nil when the
// run is empty.
type Streak struct {
	Team   string    `json:"team"`
	Length int       `json:"length"`
	Start  *game.Ref `json:"start"`
	End    *game.Ref `json:"end"`
}

// LongestWinStreak finds the longest run of consecutive wins for team in
// season/date order. A loss or a tie resets the run.
func LongestWinStreak(games []game.Game, team string, scope Scope) Streak {
	return longestRun(games, team, scope, game.Win)
}

// LongestLosingStreak finds the longest run of consecutive losses for team.
// A win or a tie resets the run.
func LongestLosingStreak(games []game.Game, team string, scope Scope) Streak {
	return longestRun(games, team, scope, game.Loss)
}

func longestRun(games []game.Game, team string, scope Scope, want game.Result) Streak {
	played := make([]game.Game, 0)
	for _, g := range games {
		if scope.includes(g) && g.Involves(team) {
			played = append(played, g)
		}
	}
	slices.SortStableFunc(played, game.BySeasonDate)

	best := Streak{Team: team}
	run := 0
	var start game.Ref
	for _, g := range played {
		s, _ := game.SidesFor(g, team)
		if s.Result != want {
			run = 0
			continue
		}
		run++
		if run == 1 {
			start = game.RefOf(g)
		}
		if run > best.Length {
			st, end := start, game.RefOf(g)
			best.Length = run
			best.Start = &st
			best.End = &end
		}
	}
	return best
}
