// Package game holds the game-log record, its classification helpers, the
// de-duplicating normalizer and the per-team week index.
//
// Everything here is pure: functions take slices and return new values. The
// only mutation is WeekIndex.Annotate, which fills the derived week fields
// once after load.
package game

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Game is one recorded matchup from the game log.
type Game struct {
	ID     int     `json:"-"`
	Season int     `json:"season"`
	Date   string  `json:"date"`
	TeamA  string  `json:"teamA"`
	TeamB  string  `json:"teamB"`
	ScoreA float64 `json:"scoreA"`
	ScoreB float64 `json:"scoreB"`
	Week   int     `json:"week,omitempty"`
	Round  string  `json:"round"`
	Type   string  `json:"type"`

	// Derived by WeekIndex.Annotate; zero until then.
	WeekA int `json:"-"`
	WeekB int `json:"-"`
}

// Ref points at a game by season and date.
type Ref struct {
	Season int    `json:"season"`
	Date   string `json:"date"`
}

// RefOf returns the season/date reference for g.
func RefOf(g Game) Ref {
	return Ref{Season: g.Season, Date: g.Date}
}

// Involves reports whether team plays in g.
func (g Game) Involves(team string) bool {
	return g.TeamA == team || g.TeamB == team
}

// WeekFor returns the derived week number for team, or false when team is
// not a participant or the game has not been annotated.
func (g Game) WeekFor(team string) (int, bool) {
	switch team {
	case g.TeamA:
		return g.WeekA, g.WeekA > 0
	case g.TeamB:
		return g.WeekB, g.WeekB > 0
	}
	return 0, false
}

// SeasonSummaryRow is one owner's outcome for one season.
type SeasonSummaryRow struct {
	Owner          string `json:"owner"`
	Season         int    `json:"season"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	Ties           int    `json:"ties"`
	Champion       bool   `json:"champion"`
	Bye            bool   `json:"bye"`
	Saunders       bool   `json:"saunders"`
	PlayoffWins    int    `json:"playoff_wins,omitempty"`
	PlayoffLosses  int    `json:"playoff_losses,omitempty"`
	PlayoffTies    int    `json:"playoff_ties,omitempty"`
	SaundersWins   int    `json:"saunders_wins,omitempty"`
	SaundersLosses int    `json:"saunders_losses,omitempty"`
	SaundersTies   int    `json:"saunders_ties,omitempty"`
}

// --------------------------------------------------------------------------
// Decoding
// --------------------------------------------------------------------------

// flexNumber accepts a JSON number or a numeric string. A null, empty,
// unparseable or non-finite value leaves it unset.
type flexNumber struct {
	value float64
	set   bool
}

func (f *flexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			f.assign(v)
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	f.assign(v)
	return nil
}

// assign records v unless it is NaN or infinite; ParseFloat accepts both
// spellings and neither survives JSON encoding.
func (f *flexNumber) assign(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	f.value, f.set = v, true
}

type rawGame struct {
	Season flexNumber `json:"season"`
	Date   any        `json:"date"`
	TeamA  *string    `json:"teamA"`
	TeamB  *string    `json:"teamB"`
	ScoreA flexNumber `json:"scoreA"`
	ScoreB flexNumber `json:"scoreB"`
	Week   flexNumber `json:"week"`
	Round  *string    `json:"round"`
	Type   *string    `json:"type"`
}

func (r rawGame) toGame() (Game, bool) {
	if r.TeamA == nil || r.TeamB == nil || !r.ScoreA.set || !r.ScoreB.set {
		return Game{}, false
	}
	teamA, teamB := strings.TrimSpace(*r.TeamA), strings.TrimSpace(*r.TeamB)
	if teamA == "" || teamB == "" {
		return Game{}, false
	}
	g := Game{
		Season: int(r.Season.value),
		TeamA:  teamA,
		TeamB:  teamB,
		ScoreA: r.ScoreA.value,
		ScoreB: r.ScoreB.value,
		Week:   int(r.Week.value),
	}
	switch d := r.Date.(type) {
	case string:
		g.Date = d
	case float64:
		g.Date = strconv.FormatFloat(d, 'f', -1, 64)
	}
	if r.Round != nil {
		g.Round = *r.Round
	}
	if r.Type != nil {
		g.Type = *r.Type
	}
	return g, true
}

// DecodeGames parses a JSON array of game records. Entries missing a team
// identifier or a score are skipped and counted in malformed; only a
// document that is not a JSON array is an error.
func DecodeGames(data []byte) (games []Game, malformed int, err error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, 0, fmt.Errorf("decode game log: %w", err)
	}
	games = make([]Game, 0, len(items))
	for _, item := range items {
		var r rawGame
		if err := json.Unmarshal(item, &r); err != nil {
			malformed++
			continue
		}
		g, ok := r.toGame()
		if !ok {
			malformed++
			continue
		}
		games = append(games, g)
	}
	return games, malformed, nil
}

type rawSummaryRow struct {
	Owner          *string    `json:"owner"`
	Season         flexNumber `json:"season"`
	Wins           flexNumber `json:"wins"`
	Losses         flexNumber `json:"losses"`
	Ties           flexNumber `json:"ties"`
	Champion       bool       `json:"champion"`
	Bye            bool       `json:"bye"`
	Saunders       bool       `json:"saunders"`
	PlayoffWins    flexNumber `json:"playoff_wins"`
	PlayoffLosses  flexNumber `json:"playoff_losses"`
	PlayoffTies    flexNumber `json:"playoff_ties"`
	SaundersWins   flexNumber `json:"saunders_wins"`
	SaundersLosses flexNumber `json:"saunders_losses"`
	SaundersTies   flexNumber `json:"saunders_ties"`
}

// DecodeSeasonSummary parses a JSON array of season summary rows. Rows
// without an owner or season are skipped and counted in malformed; absent
// counters decode as zero.
func DecodeSeasonSummary(data []byte) (rows []SeasonSummaryRow, malformed int, err error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, 0, fmt.Errorf("decode season summary: %w", err)
	}
	rows = make([]SeasonSummaryRow, 0, len(items))
	for _, item := range items {
		var r rawSummaryRow
		if err := json.Unmarshal(item, &r); err != nil {
			malformed++
			continue
		}
		if r.Owner == nil || strings.TrimSpace(*r.Owner) == "" || !r.Season.set {
			malformed++
			continue
		}
		rows = append(rows, SeasonSummaryRow{
			Owner:          strings.TrimSpace(*r.Owner),
			Season:         int(r.Season.value),
			Wins:           int(r.Wins.value),
			Losses:         int(r.Losses.value),
			Ties:           int(r.Ties.value),
			Champion:       r.Champion,
			Bye:            r.Bye,
			Saunders:       r.Saunders,
			PlayoffWins:    int(r.PlayoffWins.value),
			PlayoffLosses:  int(r.PlayoffLosses.value),
			PlayoffTies:    int(r.PlayoffTies.value),
			SaundersWins:   int(r.SaundersWins.value),
			SaundersLosses: int(r.SaundersLosses.value),
			SaundersTies:   int(r.SaundersTies.value),
		})
	}
	return rows, malformed, nil
}
