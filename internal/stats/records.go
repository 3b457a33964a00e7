package stats

import (
	"math"
	"sort"

	"github.com/albapepper/h2h-league/internal/game"
)

// Blowout is one Regular game seen from the winner's side.
type Blowout struct {
	Season int     `json:"season"`
	Date   string  `json:"date"`
	Winner string  `json:"winner"`
	Loser  string  `json:"loser"`
	ScoreW float64 `json:"scoreW"`
	ScoreL float64 `json:"scoreL"`
	Margin float64 `json:"margin"`
}

// TopRegularBlowouts returns the limit largest-margin Regular games. Slot A
// is treated as the winner on equal scores, so ties carry a zero margin and
// rank last.
func TopRegularBlowouts(games []game.Game, limit int) []Blowout {
	if limit <= 0 {
		return []Blowout{}
	}
	rows := make([]Blowout, 0, len(games))
	for _, g := range games {
		if !game.IsRegular(g) {
			continue
		}
		b := Blowout{
			Season: g.Season,
			Date:   g.Date,
			Winner: g.TeamA,
			Loser:  g.TeamB,
			ScoreW: g.ScoreA,
			ScoreL: g.ScoreB,
		}
		if g.ScoreB > g.ScoreA {
			b.Winner, b.Loser = g.TeamB, g.TeamA
			b.ScoreW, b.ScoreL = g.ScoreB, g.ScoreA
		}
		b.Margin = round(b.ScoreW-b.ScoreL, 2)
		rows = append(rows, b)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Margin > rows[j].Margin })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// CombinedScore is the game with the highest total.
type CombinedScore struct {
	Season int     `json:"season"`
	Date   string  `json:"date"`
	TeamA  string  `json:"teamA"`
	TeamB  string  `json:"teamB"`
	ScoreA float64 `json:"scoreA"`
	ScoreB float64 `json:"scoreB"`
	Total  float64 `json:"total"`
}

// HighestCombinedScore returns the game with the largest scoreA+scoreB, or
// nil when no game is in scope. The earliest game wins a tie.
func HighestCombinedScore(games []game.Game, scope Scope) *CombinedScore {
	var best *CombinedScore
	for _, g := range games {
		if !scope.includes(g) {
			continue
		}
		total := round(g.ScoreA+g.ScoreB, 2)
		if best != nil && total <= best.Total {
			continue
		}
		best = &CombinedScore{
			Season: g.Season, Date: g.Date,
			TeamA: g.TeamA, TeamB: g.TeamB,
			ScoreA: g.ScoreA, ScoreB: g.ScoreB,
			Total: total,
		}
	}
	return best
}

// SingleScore is the best individual team score.
type SingleScore struct {
	Season   int     `json:"season"`
	Date     string  `json:"date"`
	Team     string  `json:"team"`
	Opponent string  `json:"opponent"`
	Score    float64 `json:"score"`
}

// HighestSingleScore returns the largest individual score, or nil when no
// game is in scope.
func HighestSingleScore(games []game.Game, scope Scope) *SingleScore {
	var best *SingleScore
	for _, g := range games {
		if !scope.includes(g) {
			continue
		}
		team, opp := g.TeamA, g.TeamB
		if g.ScoreB > g.ScoreA {
			team, opp = g.TeamB, g.TeamA
		}
		score := math.Max(g.ScoreA, g.ScoreB)
		if best != nil && score <= best.Score {
			continue
		}
		best = &SingleScore{Season: g.Season, Date: g.Date, Team: team, Opponent: opp, Score: score}
	}
	return best
}
