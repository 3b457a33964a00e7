package sleeper

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/albapepper/h2h-league/internal/game"
)

// ImportResult tracks counts and errors from an import run.
type ImportResult struct {
	WeeksFetched    int
	Appended        int
	SkippedExisting int
	SkippedUnplayed int
	SkippedUnmapped int
	Errors          []string
}

// AddErrorf records a formatted error message.
func (r *ImportResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the import.
func (r *ImportResult) Summary() string {
	return fmt.Sprintf(
		"weeks=%d appended=%d existing=%d unplayed=%d unmapped=%d errors=%d",
		r.WeeksFetched, r.Appended, r.SkippedExisting,
		r.SkippedUnplayed, r.SkippedUnmapped, len(r.Errors),
	)
}

// MissingMappingError lists rosters with no canonical team name.
type MissingMappingError struct {
	Teams []TeamInfo
}

func (e *MissingMappingError) Error() string {
	parts := make([]string, 0, len(e.Teams))
	for _, t := range e.Teams {
		parts = append(parts, fmt.Sprintf("roster_id=%d display_name=%s username=%s sleeper_team_name=%s",
			t.RosterID, t.DisplayName, t.Username, t.TeamName))
	}
	return "mapping is missing a canonical name for: " + strings.Join(parts, "; ")
}

// ResolveMapping checks that every roster has a non-blank canonical name and
// returns roster id to name.
func ResolveMapping(teams []TeamInfo, mapping map[string]string) (map[int]string, error) {
	names := make(map[int]string, len(teams))
	var missing []TeamInfo
	for _, t := range teams {
		name := strings.TrimSpace(mapping[t.Key()])
		if name == "" {
			missing = append(missing, t)
			continue
		}
		names[t.RosterID] = name
	}
	if len(missing) > 0 {
		return nil, &MissingMappingError{Teams: missing}
	}
	return names, nil
}

// ImportOptions configures one import run.
type ImportOptions struct {
	LeagueID string
	Season   int
	Weeks    []int
	Mapping  map[string]string
	// OnlyPlayed skips weeks whose Sunday is after Cutoff and 0-0 pairings.
	OnlyPlayed bool
	Cutoff     time.Time
}

// Importer fetches matchups and appends them to a GameLog.
type Importer struct {
	client *Client
	logger *slog.Logger
}

// NewImporter returns an Importer backed by client.
func NewImporter(client *Client, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{client: client, logger: logger}
}

// Teams lists the league's rosters joined with their owners.
func (im *Importer) Teams(ctx context.Context, leagueID string) ([]TeamInfo, error) {
	users, err := im.client.Users(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	rosters, err := im.client.Rosters(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("fetch rosters: %w", err)
	}
	return JoinTeams(users, rosters), nil
}

// Run appends every new matchup in opts.Weeks to log. A mapping that misses
// any roster aborts before matchups are fetched; a failed week fetch aborts
// the run.
func (im *Importer) Run(ctx context.Context, log *GameLog, opts ImportOptions) (*ImportResult, error) {
	teams, err := im.Teams(ctx, opts.LeagueID)
	if err != nil {
		return nil, err
	}
	names, err := ResolveMapping(teams, opts.Mapping)
	if err != nil {
		return nil, err
	}

	cutoff := opts.Cutoff
	if cutoff.IsZero() {
		now := time.Now().UTC()
		cutoff = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	result := &ImportResult{}
	for _, week := range opts.Weeks {
		entries, err := im.client.Matchups(ctx, opts.LeagueID, week)
		if err != nil {
			return result, fmt.Errorf("fetch week %d: %w", week, err)
		}
		result.WeeksFetched++

		pairs := PairMatchups(entries)
		if len(pairs) == 0 {
			continue
		}
		sunday := SundayForWeek(opts.Season, week)
		if opts.OnlyPlayed && sunday.After(cutoff) {
			result.SkippedUnplayed += len(pairs)
			continue
		}

		for _, p := range pairs {
			a, b := p[0], p[1]
			teamA, okA := names[a.RosterID]
			teamB, okB := names[b.RosterID]
			if !okA || !okB {
				im.logger.Warn("Skipping matchup with unmapped roster",
					"week", week, "roster_a", a.RosterID, "roster_b", b.RosterID)
				result.SkippedUnmapped++
				continue
			}

			g := game.Game{
				Season: opts.Season,
				Date:   sunday.Format(DateLayout),
				TeamA:  teamA,
				TeamB:  teamB,
				ScoreA: round2(a.Points),
				ScoreB: round2(b.Points),
				Week:   week,
				Round:  "",
				Type:   game.TypeRegular,
			}
			if opts.OnlyPlayed && g.ScoreA == 0 && g.ScoreB == 0 {
				result.SkippedUnplayed++
				continue
			}

			added, err := log.Append(g)
			if err != nil {
				result.AddErrorf("week %d %s vs %s: %v", week, teamA, teamB, err)
				continue
			}
			if !added {
				result.SkippedExisting++
				continue
			}
			result.Appended++
		}
	}
	return result, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
