package stats

import (
	"sort"

	"github.com/albapepper/h2h-league/internal/game"
)

// RivalryRow is one team's all-time line against a single opponent.
type RivalryRow struct {
	Opponent string  `json:"opponent"`
	W        int     `json:"w"`
	L        int     `json:"l"`
	T        int     `json:"t"`
	G        int     `json:"g"`
	PF       float64 `json:"pf"`
	PA       float64 `json:"pa"`
	WinPct   float64 `json:"winPct"`
}

// RivalryTable aggregates team's games by opponent, best win rate first.
func RivalryTable(games []game.Game, team string, scope Scope) []RivalryRow {
	rows := make(map[string]*RivalryRow)
	order := make([]string, 0)
	for _, g := range games {
		if !scope.includes(g) {
			continue
		}
		s, ok := game.SidesFor(g, team)
		if !ok {
			continue
		}
		r, ok := rows[s.Opponent]
		if !ok {
			r = &RivalryRow{Opponent: s.Opponent}
			rows[s.Opponent] = r
			order = append(order, s.Opponent)
		}
		r.G++
		r.PF += s.PointsFor
		r.PA += s.PointsAgainst
		switch s.Result {
		case game.Win:
			r.W++
		case game.Loss:
			r.L++
		default:
			r.T++
		}
	}

	out := make([]RivalryRow, 0, len(order))
	for _, opp := range order {
		r := rows[opp]
		r.PF = round(r.PF, 2)
		r.PA = round(r.PA, 2)
		r.WinPct = round(float64(r.W)/float64(r.G), 3)
		out = append(out, *r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].WinPct > out[j].WinPct })
	return out
}

// RivalryGroup is a named set of teams whose meetings get called out.
type RivalryGroup struct {
	Name  string   `json:"name"`
	Teams []string `json:"teams"`
}

// GroupRivalry is the head-to-head of every pair inside one group.
type GroupRivalry struct {
	Name     string             `json:"name"`
	Matchups []HeadToHeadRecord `json:"matchups"`
}

// GroupRivalries computes the pairwise head-to-head records of each group.
// Pairs that never met are omitted.
func GroupRivalries(games []game.Game, groups []RivalryGroup, scope Scope) []GroupRivalry {
	out := make([]GroupRivalry, 0, len(groups))
	for _, grp := range groups {
		gr := GroupRivalry{Name: grp.Name, Matchups: make([]HeadToHeadRecord, 0)}
		for i := 0; i < len(grp.Teams); i++ {
			for j := i + 1; j < len(grp.Teams); j++ {
				rec := HeadToHead(games, grp.Teams[i], grp.Teams[j], scope)
				if rec.N > 0 {
					gr.Matchups = append(gr.Matchups, rec)
				}
			}
		}
		out = append(out, gr)
	}
	return out
}
