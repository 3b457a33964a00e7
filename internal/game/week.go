package game

import "sort"

// WeekKey is one participant's view of one game.
type WeekKey struct {
	GameID int
	Team   string
}

// WeekIndex maps (game, team) to that team's week number within the season.
// Weeks are the chronological rank of the team's distinct game dates, so two
// games on the same date share a week.
type WeekIndex struct {
	weeks map[WeekKey]int
	max   int
}

// BuildWeekIndex assigns week numbers for every team-season in games. Games
// must carry the IDs given by Normalize.
func BuildWeekIndex(games []Game) *WeekIndex {
	idx := &WeekIndex{weeks: make(map[WeekKey]int, len(games)*2)}

	type teamSeason struct {
		season int
		team   string
	}
	byTeam := make(map[teamSeason][]Game)
	for _, g := range games {
		a := teamSeason{g.Season, g.TeamA}
		b := teamSeason{g.Season, g.TeamB}
		byTeam[a] = append(byTeam[a], g)
		byTeam[b] = append(byTeam[b], g)
	}

	for ts, list := range byTeam {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Date < list[j].Date })

		byDate := make(map[string]int)
		week := 0
		for _, g := range list {
			w, ok := byDate[g.Date]
			if !ok {
				week++
				w = week
				byDate[g.Date] = w
			}
			idx.weeks[WeekKey{GameID: g.ID, Team: ts.team}] = w
		}
		if week > idx.max {
			idx.max = week
		}
	}
	return idx
}

// Week returns the week number of team in the game with the given ID.
func (w *WeekIndex) Week(gameID int, team string) (int, bool) {
	n, ok := w.weeks[WeekKey{GameID: gameID, Team: team}]
	return n, ok
}

// Max is the largest week number of any team-season.
func (w *WeekIndex) Max() int {
	return w.max
}

// Universe lists every week number from 1 to Max.
func (w *WeekIndex) Universe() []int {
	out := make([]int, w.max)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Annotate copies the per-team week numbers onto the games.
func (w *WeekIndex) Annotate(games []Game) {
	for i := range games {
		g := &games[i]
		g.WeekA = w.weeks[WeekKey{GameID: g.ID, Team: g.TeamA}]
		g.WeekB = w.weeks[WeekKey{GameID: g.ID, Team: g.TeamB}]
	}
}
