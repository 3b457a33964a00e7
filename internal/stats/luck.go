package stats

import (
	"sort"

	"github.com/albapepper/h2h-league/internal/game"
)

type slateKey struct {
	season int
	date   string
}

type slateEntry struct {
	team  string
	score float64
}

// Slates indexes every Regular team score by season and date.
type Slates struct {
	byDate map[slateKey][]slateEntry
}

// NewSlates builds the slate index over all Regular games.
func NewSlates(all []game.Game) *Slates {
	s := &Slates{byDate: make(map[slateKey][]slateEntry)}
	for _, g := range all {
		if !game.IsRegular(g) {
			continue
		}
		k := slateKey{g.Season, g.Date}
		s.byDate[k] = append(s.byDate[k],
			slateEntry{team: g.TeamA, score: g.ScoreA},
			slateEntry{team: g.TeamB, score: g.ScoreB},
		)
	}
	return s
}

// ExpectedWin is the share of that date's opposing teams whose score team
// beat in g, ties counting half.
//
// The plain definition divides the count of lower opposing slate scores by
// the number of distinct opponents. That overshoots 1 when an opponent plays
// twice on one date, so here a double-header opponent contributes the
// average of its comparisons instead and the result stays within [0, 1].
// With one score per opponent the two agree.
//
// Returns false for non-Regular games, when team did not play g, or when
// nobody else scored that date.
func (s *Slates) ExpectedWin(team string, g game.Game) (float64, bool) {
	if !game.IsRegular(g) {
		return 0, false
	}
	sides, ok := game.SidesFor(g, team)
	if !ok {
		return 0, false
	}

	type tally struct {
		credit float64
		n      int
	}
	opponents := make(map[string]*tally)
	for _, e := range s.byDate[slateKey{g.Season, g.Date}] {
		if e.team == team {
			continue
		}
		t, ok := opponents[e.team]
		if !ok {
			t = &tally{}
			opponents[e.team] = t
		}
		t.n++
		switch {
		case e.score < sides.PointsFor:
			t.credit++
		case e.score == sides.PointsFor:
			t.credit += 0.5
		}
	}
	if len(opponents) == 0 {
		return 0, false
	}

	var sum float64
	for _, t := range opponents {
		sum += t.credit / float64(t.n)
	}
	return sum / float64(len(opponents)), true
}

// ExpectedWinForGame is a one-off ExpectedWin with the slate built from all.
func ExpectedWinForGame(team string, g game.Game, all []game.Game) (float64, bool) {
	return NewSlates(all).ExpectedWin(team, g)
}

// LuckRow compares actual win credit with expected wins for one team.
type LuckRow struct {
	Team     string  `json:"team"`
	Games    int     `json:"games"`
	Actual   float64 `json:"actual"`
	Expected float64 `json:"expected"`
	Luck     float64 `json:"luck"`
}

// Luck sums actual minus expected wins for team over the Regular games in
// games. Slates come from the same game set.
func Luck(games []game.Game, team string) LuckRow {
	return luckWith(NewSlates(games), games, team)
}

func luckWith(slates *Slates, games []game.Game, team string) LuckRow {
	row := LuckRow{Team: team}
	for _, g := range games {
		if !game.IsRegular(g) {
			continue
		}
		sides, ok := game.SidesFor(g, team)
		if !ok {
			continue
		}
		exp, ok := slates.ExpectedWin(team, g)
		if !ok {
			continue
		}
		row.Games++
		row.Actual += sides.Result.Credit()
		row.Expected += exp
	}
	row.Expected = round(row.Expected, 3)
	row.Luck = round(row.Actual-row.Expected, 3)
	return row
}

// LuckTable returns a LuckRow for every team with a Regular game, luckiest
// first.
func LuckTable(games []game.Game) []LuckRow {
	slates := NewSlates(games)
	seen := make(map[string]bool)
	teams := make([]string, 0)
	for _, g := range games {
		if !game.IsRegular(g) {
			continue
		}
		for _, t := range []string{g.TeamA, g.TeamB} {
			if !seen[t] {
				seen[t] = true
				teams = append(teams, t)
			}
		}
	}

	rows := make([]LuckRow, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, luckWith(slates, games, t))
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Luck > rows[j].Luck })
	return rows
}
