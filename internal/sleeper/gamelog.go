package sleeper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/albapepper/h2h-league/internal/game"
)

// SortMode controls how a merged game log is ordered on write.
type SortMode string

const (
	SortNone   SortMode = "none"
	SortSeason SortMode = "season"
	SortGlobal SortMode = "global"
)

// ParseSortMode validates a --sort-mode value.
func ParseSortMode(s string) (SortMode, error) {
	switch m := SortMode(s); m {
	case SortNone, SortSeason, SortGlobal:
		return m, nil
	}
	return "", fmt.Errorf("sort mode must be none|season|global, got %q", s)
}

type rowKey struct {
	season int
	week   int
	lo, hi string
}

func keyOf(season, week int, a, b string) rowKey {
	if b < a {
		a, b = b, a
	}
	return rowKey{season: season, week: week, lo: a, hi: b}
}

// logRow keeps an existing record byte-for-byte alongside the fields used
// for de-duplication and sorting.
type logRow struct {
	raw    json.RawMessage
	season int
	week   int
	date   string
	teamA  string
	teamB  string
}

type looseRow struct {
	Season any    `json:"season"`
	Week   any    `json:"week"`
	Date   string `json:"date"`
	TeamA  string `json:"teamA"`
	TeamB  string `json:"teamB"`
}

// GameLog is a game-log file being extended. Existing rows are written back
// unchanged; only appended rows are generated.
type GameLog struct {
	rows []logRow
	keys map[rowKey]struct{}
}

// ParseGameLog reads a JSON array of game records. Rows that cannot be
// keyed are kept as-is but never match an appended game.
func ParseGameLog(data []byte) (*GameLog, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("game log must be a JSON array of game objects: %w", err)
	}
	l := &GameLog{rows: make([]logRow, 0, len(items)), keys: make(map[rowKey]struct{}, len(items))}
	for _, item := range items {
		var lr looseRow
		_ = json.Unmarshal(item, &lr)
		row := logRow{
			raw:    item,
			season: intOf(lr.Season),
			week:   intOf(lr.Week),
			date:   lr.Date,
			teamA:  lr.TeamA,
			teamB:  lr.TeamB,
		}
		l.rows = append(l.rows, row)
		if row.season != 0 {
			l.keys[keyOf(row.season, row.week, row.teamA, row.teamB)] = struct{}{}
		}
	}
	return l, nil
}

func intOf(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(n))
		return i
	}
	return 0
}

// Len is the number of rows.
func (l *GameLog) Len() int { return len(l.rows) }

// Has reports whether a game for (season, week, pair) is already present,
// regardless of slot order.
func (l *GameLog) Has(season, week int, a, b string) bool {
	_, ok := l.keys[keyOf(season, week, a, b)]
	return ok
}

// Append adds g unless its (season, week, pair) key already exists.
func (l *GameLog) Append(g game.Game) (bool, error) {
	k := keyOf(g.Season, g.Week, g.TeamA, g.TeamB)
	if _, ok := l.keys[k]; ok {
		return false, nil
	}
	raw, err := json.Marshal(g)
	if err != nil {
		return false, fmt.Errorf("encode game: %w", err)
	}
	l.rows = append(l.rows, logRow{
		raw:    raw,
		season: g.Season,
		week:   g.Week,
		date:   g.Date,
		teamA:  g.TeamA,
		teamB:  g.TeamB,
	})
	l.keys[k] = struct{}{}
	return true, nil
}

func compareRows(a, b logRow) int {
	if c := strings.Compare(a.date, b.date); c != 0 {
		return c
	}
	if a.week != b.week {
		return a.week - b.week
	}
	if c := strings.Compare(a.teamA, b.teamA); c != 0 {
		return c
	}
	return strings.Compare(a.teamB, b.teamB)
}

// Sort orders the rows. SortSeason moves season's rows to the end sorted by
// (date, week, teamA, teamB) and leaves the rest in place; SortGlobal sorts
// everything by season first.
func (l *GameLog) Sort(mode SortMode, season int) {
	switch mode {
	case SortSeason:
		other := make([]logRow, 0, len(l.rows))
		target := make([]logRow, 0)
		for _, r := range l.rows {
			if r.season == season {
				target = append(target, r)
			} else {
				other = append(other, r)
			}
		}
		slices.SortStableFunc(target, compareRows)
		l.rows = append(other, target...)
	case SortGlobal:
		slices.SortStableFunc(l.rows, func(a, b logRow) int {
			if a.season != b.season {
				return a.season - b.season
			}
			return compareRows(a, b)
		})
	}
}

// Encode writes the rows as an indented JSON array.
func (l *GameLog) Encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, r := range l.rows {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")
		var item bytes.Buffer
		if err := json.Indent(&item, r.raw, "  ", "  "); err != nil {
			return nil, fmt.Errorf("encode row %d: %w", i, err)
		}
		buf.Write(item.Bytes())
	}
	if len(l.rows) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]\n")
	return buf.Bytes(), nil
}
