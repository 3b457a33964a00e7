package sleeper

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the game-log date format.
const DateLayout = "2006-01-02"

// SundayForWeek returns the Sunday of an NFL regular-season week. Week 1
// Sunday follows Labor Day (the first Monday of September); later weeks add
// seven days each.
func SundayForWeek(season, week int) time.Time {
	d := time.Date(season, time.September, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d.AddDate(0, 0, 6+7*(week-1))
}

// ParseWeeks reads a spec like "1-8" or "1,2,3,6,9" or "1-4,10" into sorted,
// distinct week numbers.
func ParseWeeks(spec string) ([]int, error) {
	seen := make(map[int]bool)
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(token, "-"); ok {
			a, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("invalid week range %q", token)
			}
			b, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("invalid week range %q", token)
			}
			if a < 1 || b < a {
				return nil, fmt.Errorf("invalid week range %q", token)
			}
			for w := a; w <= b; w++ {
				seen[w] = true
			}
			continue
		}
		w, err := strconv.Atoi(token)
		if err != nil || w < 1 {
			return nil, fmt.Errorf("invalid week %q", token)
		}
		seen[w] = true
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("no weeks in %q", spec)
	}

	weeks := make([]int, 0, len(seen))
	for w := range seen {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)
	return weeks, nil
}
