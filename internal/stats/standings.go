package stats

import (
	"sort"

	"github.com/albapepper/h2h-league/internal/game"
)

// StandingsRow is one team's regular-season line.
type StandingsRow struct {
	Team   string  `json:"team"`
	W      int     `json:"w"`
	L      int     `json:"l"`
	T      int     `json:"t"`
	PF     float64 `json:"pf"`
	PA     float64 `json:"pa"`
	N      int     `json:"n"`
	Diff   float64 `json:"diff"`
	WinPct float64 `json:"winPct"`
}

// SeasonStandings builds the Regular-season table for season.
//
// Order: win differential (w-l) desc, points for desc, win percentage desc.
// Remaining ties keep first-appearance order.
func SeasonStandings(games []game.Game, season int) []StandingsRow {
	rows := make(map[string]*StandingsRow)
	order := make([]string, 0)

	get := func(team string) *StandingsRow {
		r, ok := rows[team]
		if !ok {
			r = &StandingsRow{Team: team}
			rows[team] = r
			order = append(order, team)
		}
		return r
	}

	for _, g := range games {
		if g.Season != season || !game.IsRegular(g) {
			continue
		}
		a, b := get(g.TeamA), get(g.TeamB)
		a.PF += g.ScoreA
		a.PA += g.ScoreB
		a.N++
		b.PF += g.ScoreB
		b.PA += g.ScoreA
		b.N++

		switch game.Winner(g) {
		case game.SideA:
			a.W++
			b.L++
		case game.SideB:
			b.W++
			a.L++
		default:
			a.T++
			b.T++
		}
	}

	out := make([]StandingsRow, 0, len(order))
	for _, team := range order {
		r := rows[team]
		if r.N == 0 {
			continue
		}
		r.Diff = round(r.PF-r.PA, 2)
		r.WinPct = round((float64(r.W)+0.5*float64(r.T))/float64(r.N), 3)
		out = append(out, *r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].W-out[i].L, out[j].W-out[j].L
		if di != dj {
			return di > dj
		}
		if out[i].PF != out[j].PF {
			return out[i].PF > out[j].PF
		}
		return out[i].WinPct > out[j].WinPct
	})
	return out
}
