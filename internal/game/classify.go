package game

import (
	"math"
	"strings"
)

// TypeRegular is the normalized type of a regular-season game.
const TypeRegular = "Regular"

// Category partitions games into exactly one of three buckets.
type Category int

const (
	CategoryRegular Category = iota
	CategoryPlayoff
	CategorySaunders
)

func (c Category) String() string {
	switch c {
	case CategoryRegular:
		return "regular"
	case CategorySaunders:
		return "saunders"
	default:
		return "playoff"
	}
}

// NormalizedType returns the trimmed type, or "Regular" when it is blank.
func NormalizedType(g Game) string {
	if t := strings.TrimSpace(g.Type); t != "" {
		return t
	}
	return TypeRegular
}

// NormalizedRound returns the round label, "" when absent.
func NormalizedRound(g Game) string {
	return g.Round
}

// CategoryOf classifies g. Regular takes precedence so a game whose round
// mentions Saunders but whose type is Regular stays Regular.
func CategoryOf(g Game) Category {
	t := NormalizedType(g)
	if t == TypeRegular {
		return CategoryRegular
	}
	if strings.EqualFold(t, "saunders") || strings.Contains(strings.ToLower(NormalizedRound(g)), "saunders") {
		return CategorySaunders
	}
	return CategoryPlayoff
}

// IsRegular reports whether g is a regular-season game.
func IsRegular(g Game) bool { return CategoryOf(g) == CategoryRegular }

// IsSaunders reports whether g is a consolation-bracket game.
func IsSaunders(g Game) bool { return CategoryOf(g) == CategorySaunders }

// IsPlayoff reports whether g is neither Regular nor Saunders.
func IsPlayoff(g Game) bool { return CategoryOf(g) == CategoryPlayoff }

// --------------------------------------------------------------------------
// Perspective helpers
// --------------------------------------------------------------------------

// Result is a game outcome from one team's perspective.
type Result string

const (
	Win  Result = "W"
	Loss Result = "L"
	Tie  Result = "T"
)

// Credit is the win credit for a result: 1, 0.5 or 0.
func (r Result) Credit() float64 {
	switch r {
	case Win:
		return 1
	case Tie:
		return 0.5
	}
	return 0
}

// Sides is a game seen from one participant.
type Sides struct {
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
	Opponent      string  `json:"opponent"`
	Result        Result  `json:"result"`
}

// SidesFor returns g from team's perspective, or false when team did not play.
func SidesFor(g Game, team string) (Sides, bool) {
	var s Sides
	switch team {
	case g.TeamA:
		s = Sides{PointsFor: g.ScoreA, PointsAgainst: g.ScoreB, Opponent: g.TeamB}
	case g.TeamB:
		s = Sides{PointsFor: g.ScoreB, PointsAgainst: g.ScoreA, Opponent: g.TeamA}
	default:
		return Sides{}, false
	}
	s.Result = resultOf(s.PointsFor, s.PointsAgainst)
	return s, true
}

func resultOf(pf, pa float64) Result {
	switch {
	case pf > pa:
		return Win
	case pf < pa:
		return Loss
	}
	return Tie
}

// Side names a slot in a game record.
type Side int

const (
	NoWinner Side = iota
	SideA
	SideB
)

// Winner returns the winning slot, NoWinner on a tie.
func Winner(g Game) Side {
	switch {
	case g.ScoreA > g.ScoreB:
		return SideA
	case g.ScoreB > g.ScoreA:
		return SideB
	}
	return NoWinner
}

// Margin is the absolute score difference.
func Margin(g Game) float64 {
	return math.Abs(g.ScoreA - g.ScoreB)
}

// BySeasonDate orders by season, then by date string.
func BySeasonDate(a, b Game) int {
	if a.Season != b.Season {
		if a.Season < b.Season {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Date, b.Date)
}
