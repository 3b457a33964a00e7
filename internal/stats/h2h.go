package stats

import "github.com/albapepper/h2h-league/internal/game"

// HeadToHeadRecord tallies games between two teams. WA+WB+Ties == N always.
type HeadToHeadRecord struct {
	TeamA string `json:"teamA"`
	TeamB string `json:"teamB"`
	WA    int    `json:"wA"`
	WB    int    `json:"wB"`
	Ties  int    `json:"ties"`
	N     int    `json:"n"`
}

// HeadToHead counts results of games played between teamA and teamB in
// either slot order.
func HeadToHead(games []game.Game, teamA, teamB string, scope Scope) HeadToHeadRecord {
	rec := HeadToHeadRecord{TeamA: teamA, TeamB: teamB}
	if teamA == teamB {
		return rec
	}
	for _, g := range games {
		if !scope.includes(g) {
			continue
		}
		s, ok := game.SidesFor(g, teamA)
		if !ok || s.Opponent != teamB {
			continue
		}
		rec.N++
		switch s.Result {
		case game.Win:
			rec.WA++
		case game.Loss:
			rec.WB++
		default:
			rec.Ties++
		}
	}
	return rec
}
