package stats

import (
	"slices"
	"sort"

	"github.com/albapepper/h2h-league/internal/game"
)

// TeamScore is one team's score on one date.
type TeamScore struct {
	Team  string  `json:"team"`
	Score float64 `json:"score"`
}

// WeeklyAward names the top and bottom scorer of one Regular-season date.
type WeeklyAward struct {
	Season int       `json:"season"`
	Date   string    `json:"date"`
	High   TeamScore `json:"high"`
	Low    TeamScore `json:"low"`
}

// WeeklyAwards picks the highest and lowest team score of each Regular
// date, ordered by season and date. Entries are sorted by score descending
// with a stable sort over input order; the first entry takes High and the
// last takes Low, so on an exact tie only one team is credited.
func WeeklyAwards(games []game.Game) []WeeklyAward {
	entries := make(map[slateKey][]TeamScore)
	keys := make([]slateKey, 0)
	for _, g := range games {
		if !game.IsRegular(g) {
			continue
		}
		k := slateKey{g.Season, g.Date}
		if _, ok := entries[k]; !ok {
			keys = append(keys, k)
		}
		entries[k] = append(entries[k],
			TeamScore{Team: g.TeamA, Score: g.ScoreA},
			TeamScore{Team: g.TeamB, Score: g.ScoreB},
		)
	}

	slices.SortStableFunc(keys, func(a, b slateKey) int {
		return game.BySeasonDate(game.Game{Season: a.season, Date: a.date}, game.Game{Season: b.season, Date: b.date})
	})

	out := make([]WeeklyAward, 0, len(keys))
	for _, k := range keys {
		list := entries[k]
		sort.SliceStable(list, func(i, j int) bool { return list[i].Score > list[j].Score })
		out = append(out, WeeklyAward{
			Season: k.season,
			Date:   k.date,
			High:   list[0],
			Low:    list[len(list)-1],
		})
	}
	return out
}

// AwardCount tallies weekly highs and lows for a team.
type AwardCount struct {
	Team  string `json:"team"`
	Highs int    `json:"highs"`
	Lows  int    `json:"lows"`
}

// AwardTally counts awards per team, most highs first, then fewest lows.
func AwardTally(awards []WeeklyAward) []AwardCount {
	counts := make(map[string]*AwardCount)
	order := make([]string, 0)
	get := func(team string) *AwardCount {
		c, ok := counts[team]
		if !ok {
			c = &AwardCount{Team: team}
			counts[team] = c
			order = append(order, team)
		}
		return c
	}
	for _, a := range awards {
		get(a.High.Team).Highs++
		get(a.Low.Team).Lows++
	}

	out := make([]AwardCount, 0, len(order))
	for _, t := range order {
		out = append(out, *counts[t])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Highs != out[j].Highs {
			return out[i].Highs > out[j].Highs
		}
		return out[i].Lows < out[j].Lows
	})
	return out
}
