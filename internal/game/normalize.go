package game

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeReport counts what Normalize kept and dropped.
type NormalizeReport struct {
	Input      int `json:"input"`
	Kept       int `json:"kept"`
	Duplicates int `json:"duplicates"`
	Invalid    int `json:"invalid"`
}

// Summary returns a one-line description for logs.
func (r NormalizeReport) Summary() string {
	return fmt.Sprintf("input=%d kept=%d duplicates=%d invalid=%d",
		r.Input, r.Kept, r.Duplicates, r.Invalid)
}

// CanonicalKey identifies a game regardless of slot order. Teams are ordered
// lexicographically, scores follow their team and are fixed to 3 decimals.
func CanonicalKey(g Game) string {
	lo, hi := g.TeamA, g.TeamB
	loScore, hiScore := g.ScoreA, g.ScoreB
	if hi < lo {
		lo, hi = hi, lo
		loScore, hiScore = hiScore, loScore
	}
	return strings.Join([]string{
		lo,
		hi,
		strconv.Itoa(g.Season),
		g.Date,
		NormalizedType(g),
		NormalizedRound(g),
		strconv.FormatFloat(loScore, 'f', 3, 64),
		strconv.FormatFloat(hiScore, 'f', 3, 64),
	}, "\x1f")
}

// Normalize drops invalid and duplicate records, keeping the first
// occurrence in input order. Kept games get sequential IDs.
func Normalize(games []Game) []Game {
	out, _ := NormalizeWithReport(games)
	return out
}

// NormalizeWithReport is Normalize plus the counts of what was dropped.
// A record is invalid when a team name is blank or both slots name the
// same team.
func NormalizeWithReport(games []Game) ([]Game, NormalizeReport) {
	report := NormalizeReport{Input: len(games)}
	seen := make(map[string]struct{}, len(games))
	out := make([]Game, 0, len(games))

	for _, g := range games {
		if strings.TrimSpace(g.TeamA) == "" || strings.TrimSpace(g.TeamB) == "" || g.TeamA == g.TeamB {
			report.Invalid++
			continue
		}
		key := CanonicalKey(g)
		if _, dup := seen[key]; dup {
			report.Duplicates++
			continue
		}
		seen[key] = struct{}{}
		g.ID = len(out)
		out = append(out, g)
	}
	report.Kept = len(out)
	return out, report
}
