package facet

import (
	"slices"
	"strings"
)

const unrankedRound = 99

// roundClass groups round labels: the empty label first, then playoff
// rounds, then the Saunders bracket.
func roundClass(round string) int {
	r := strings.ToLower(strings.TrimSpace(round))
	switch {
	case r == "":
		return 0
	case strings.Contains(r, "saunders"):
		return 2
	}
	return 1
}

// RoundRank scores a round label within its class. Playoff rounds go
// Wild Card, Quarterfinal, Semifinal, Championship; Saunders rounds go
// Round 1, Final. Anything else ranks after the known names.
func RoundRank(round string) int {
	r := strings.ToLower(strings.TrimSpace(round))
	if roundClass(r) == 2 {
		switch {
		case strings.Contains(r, "round 1"):
			return 0
		case strings.Contains(r, "final"):
			return 1
		}
		return unrankedRound
	}
	switch {
	case r == "":
		return 0
	case strings.Contains(r, "wild"):
		return 0
	case strings.Contains(r, "quarter"):
		return 1
	case strings.Contains(r, "semi"):
		return 2
	case strings.Contains(r, "champ"):
		return 3
	}
	return unrankedRound
}

// CompareRounds orders two round labels: class, then rank, then
// case-insensitive name.
func CompareRounds(a, b string) int {
	if ca, cb := roundClass(a), roundClass(b); ca != cb {
		return ca - cb
	}
	if ra, rb := RoundRank(a), RoundRank(b); ra != rb {
		return ra - rb
	}
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// SortRounds sorts labels in place by CompareRounds.
func SortRounds(rounds []string) {
	slices.SortFunc(rounds, CompareRounds)
}
