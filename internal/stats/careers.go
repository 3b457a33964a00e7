package stats

import (
	"sort"

	"github.com/albapepper/h2h-league/internal/game"
)

// AnnotationKey addresses a footnote for one owner-season.
type AnnotationKey struct {
	Owner  string
	Season int
}

// Annotations holds optional footnotes, e.g. a title awarded under special
// circumstances. A nil map is valid.
type Annotations map[AnnotationKey]string

// Title is one championship season.
type Title struct {
	Season int    `json:"season"`
	Note   string `json:"note,omitempty"`
}

// Record is a win/loss/tie line.
type Record struct {
	W int `json:"w"`
	L int `json:"l"`
	T int `json:"t"`
}

// Career summarizes an owner across every season summary row.
type Career struct {
	Owner               string  `json:"owner"`
	Seasons             int     `json:"seasons"`
	Regular             Record  `json:"regular"`
	Playoff             Record  `json:"playoff"`
	Saunders            Record  `json:"saunders"`
	WinPct              float64 `json:"winPct"`
	Titles              []Title `json:"titles"`
	Byes                int     `json:"byes"`
	SaundersAppearances int     `json:"saundersAppearances"`
	Notes               []Title `json:"notes,omitempty"`
}

// OwnerCareers folds season summary rows into one Career per owner, most
// titles first, then best regular-season win percentage. Duplicate
// (owner, season) rows after the first are ignored.
func OwnerCareers(rows []game.SeasonSummaryRow, notes Annotations) []Career {
	careers := make(map[string]*Career)
	seen := make(map[AnnotationKey]bool)
	order := make([]string, 0)

	for _, r := range rows {
		key := AnnotationKey{Owner: r.Owner, Season: r.Season}
		if seen[key] {
			continue
		}
		seen[key] = true

		c, ok := careers[r.Owner]
		if !ok {
			c = &Career{Owner: r.Owner, Titles: make([]Title, 0)}
			careers[r.Owner] = c
			order = append(order, r.Owner)
		}
		c.Seasons++
		c.Regular.W += r.Wins
		c.Regular.L += r.Losses
		c.Regular.T += r.Ties
		c.Playoff.W += r.PlayoffWins
		c.Playoff.L += r.PlayoffLosses
		c.Playoff.T += r.PlayoffTies
		c.Saunders.W += r.SaundersWins
		c.Saunders.L += r.SaundersLosses
		c.Saunders.T += r.SaundersTies
		if r.Bye {
			c.Byes++
		}
		if r.Saunders {
			c.SaundersAppearances++
		}

		note := notes[key]
		if r.Champion {
			c.Titles = append(c.Titles, Title{Season: r.Season, Note: note})
		} else if note != "" {
			c.Notes = append(c.Notes, Title{Season: r.Season, Note: note})
		}
	}

	out := make([]Career, 0, len(order))
	for _, owner := range order {
		c := careers[owner]
		if n := c.Regular.W + c.Regular.L + c.Regular.T; n > 0 {
			c.WinPct = round((float64(c.Regular.W)+0.5*float64(c.Regular.T))/float64(n), 3)
		}
		sort.Slice(c.Titles, func(i, j int) bool { return c.Titles[i].Season < c.Titles[j].Season })
		out = append(out, *c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].Titles) != len(out[j].Titles) {
			return len(out[i].Titles) > len(out[j].Titles)
		}
		return out[i].WinPct > out[j].WinPct
	})
	return out
}
