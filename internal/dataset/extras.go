package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/albapepper/h2h-league/internal/stats"
)

// DecodeRivalryGroups accepts either a list of {"name","teams"} objects or
// an object mapping group name to team list. Groups with fewer than two
// named teams are dropped.
func DecodeRivalryGroups(data []byte) ([]stats.RivalryGroup, error) {
	data = bytes.TrimSpace(data)
	var groups []stats.RivalryGroup

	switch {
	case bytes.HasPrefix(data, []byte("[")):
		if err := json.Unmarshal(data, &groups); err != nil {
			return nil, fmt.Errorf("decode rivalry groups: %w", err)
		}
	case bytes.HasPrefix(data, []byte("{")):
		var byName map[string][]string
		if err := json.Unmarshal(data, &byName); err != nil {
			return nil, fmt.Errorf("decode rivalry groups: %w", err)
		}
		names := make([]string, 0, len(byName))
		for name := range byName {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			groups = append(groups, stats.RivalryGroup{Name: name, Teams: byName[name]})
		}
	default:
		return nil, fmt.Errorf("decode rivalry groups: expected array or object")
	}

	out := make([]stats.RivalryGroup, 0, len(groups))
	for _, g := range groups {
		teams := make([]string, 0, len(g.Teams))
		for _, t := range g.Teams {
			if t = strings.TrimSpace(t); t != "" {
				teams = append(teams, t)
			}
		}
		if len(teams) < 2 {
			continue
		}
		out = append(out, stats.RivalryGroup{Name: g.Name, Teams: teams})
	}
	return out, nil
}

type annotationRow struct {
	Owner  string `json:"owner"`
	Season int    `json:"season"`
	Note   string `json:"note"`
}

// DecodeAnnotations reads a list of {"owner","season","note"} footnotes.
// Rows without an owner, season or note are ignored.
func DecodeAnnotations(data []byte) (stats.Annotations, error) {
	var rows []annotationRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode annotations: %w", err)
	}
	notes := make(stats.Annotations, len(rows))
	for _, r := range rows {
		if r.Owner == "" || r.Season == 0 || r.Note == "" {
			continue
		}
		notes[stats.AnnotationKey{Owner: r.Owner, Season: r.Season}] = r.Note
	}
	return notes, nil
}
