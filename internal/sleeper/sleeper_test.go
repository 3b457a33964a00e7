package sleeper

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/h2h-league/internal/game"
)

func mid(n int) *int { return &n }

func fakeLeague(t *testing.T) *httptest.Server {
	t.Helper()
	users := []User{
		{UserID: "u1", DisplayName: "joe_d", Username: "joe"},
		{UserID: "u2", Username: "zooky"},
		{UserID: "u3", DisplayName: "ann", Metadata: &teamMetadata{TeamName: "Ann's Army"}},
	}
	rosters := []Roster{
		{RosterID: 3, OwnerID: "u3"},
		{RosterID: 1, OwnerID: "u1", Metadata: &teamMetadata{TeamName: "Joe Team"}},
		{RosterID: 2, OwnerID: "u2"},
		{RosterID: 4, OwnerID: "ghost"},
	}
	weeks := map[string][]Matchup{
		"1": {
			{RosterID: 1, MatchupID: mid(1), Points: 120.456},
			{RosterID: 2, MatchupID: mid(1), Points: 99.999},
			{RosterID: 3, MatchupID: mid(2)},
			{RosterID: 4, MatchupID: mid(2)},
		},
		"2": {
			{RosterID: 1, MatchupID: mid(1), Points: 100},
			{RosterID: 3, MatchupID: mid(1), Points: 90},
			{RosterID: 2},
			{RosterID: 4, MatchupID: mid(3), Points: 80},
		},
		"3": {
			{RosterID: 1, MatchupID: mid(1), Points: 10},
			{RosterID: 2, MatchupID: mid(1), Points: 20},
		},
	}

	mux := http.NewServeMux()
	write := func(w http.ResponseWriter, r *http.Request, v any) {
		if r.Header.Get("User-Agent") != UserAgent {
			http.Error(w, "bad agent", http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
	mux.HandleFunc("/league/L1/users", func(w http.ResponseWriter, r *http.Request) { write(w, r, users) })
	mux.HandleFunc("/league/L1/rosters", func(w http.ResponseWriter, r *http.Request) { write(w, r, rosters) })
	mux.HandleFunc("/league/L1/matchups/{week}", func(w http.ResponseWriter, r *http.Request) {
		m, ok := weeks[r.PathValue("week")]
		if !ok {
			m = []Matchup{}
		}
		write(w, r, m)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestImporter(srv *httptest.Server) *Importer {
	c := NewClient(srv.URL+"/", 6000, nil).WithHTTPClient(srv.Client())
	return NewImporter(c, nil)
}

func TestTeams(t *testing.T) {
	srv := fakeLeague(t)
	teams, err := newTestImporter(srv).Teams(context.Background(), "L1")
	require.NoError(t, err)
	require.Len(t, teams, 4)

	assert.Equal(t, TeamInfo{RosterID: 1, OwnerUserID: "u1", DisplayName: "joe_d", Username: "joe", TeamName: "Joe Team"}, teams[0])
	assert.Equal(t, "zooky", teams[1].DisplayName, "display name falls back to username")
	assert.Equal(t, "Ann's Army", teams[2].TeamName, "user metadata team name")
	assert.Equal(t, "", teams[3].DisplayName)

	assert.Equal(t, map[string]string{"1": "", "2": "", "3": "", "4": ""}, MappingTemplate(teams))
}

func TestClientErrorStatus(t *testing.T) {
	srv := fakeLeague(t)
	c := NewClient(srv.URL, 6000, nil).WithHTTPClient(srv.Client())
	_, err := c.Users(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestResolveMapping(t *testing.T) {
	teams := []TeamInfo{{RosterID: 1, Username: "joe"}, {RosterID: 2, Username: "zooky"}}

	names, err := ResolveMapping(teams, map[string]string{"1": " Joe ", "2": "Zook"})
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "Joe", 2: "Zook"}, names)

	_, err = ResolveMapping(teams, map[string]string{"1": "Joe", "2": "  "})
	var missing *MissingMappingError
	require.True(t, errors.As(err, &missing))
	require.Len(t, missing.Teams, 1)
	assert.Equal(t, 2, missing.Teams[0].RosterID)
	assert.Contains(t, err.Error(), "username=zooky")
}

func TestImportRun(t *testing.T) {
	srv := fakeLeague(t)
	log, err := ParseGameLog([]byte(`[
		{"season":2025,"date":"2025-09-07","teamA":"Zook","teamB":"Joe","scoreA":100,"scoreB":120.46,"week":1,"round":"","type":"Regular","note":"kept"},
		{"season":2024,"date":"2024-09-08","teamA":"Ann","teamB":"Bo","scoreA":1,"scoreB":2}
	]`))
	require.NoError(t, err)

	cutoff, err := time.Parse(DateLayout, "2025-09-14")
	require.NoError(t, err)

	res, err := newTestImporter(srv).Run(context.Background(), log, ImportOptions{
		LeagueID:   "L1",
		Season:     2025,
		Weeks:      []int{1, 2, 3},
		Mapping:    map[string]string{"1": "Joe", "2": "Zook", "3": "Ann", "4": "Bo"},
		OnlyPlayed: true,
		Cutoff:     cutoff,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.WeeksFetched)
	assert.Equal(t, 1, res.Appended)
	assert.Equal(t, 1, res.SkippedExisting)
	assert.Equal(t, 2, res.SkippedUnplayed)
	assert.Empty(t, res.Errors)
	assert.Contains(t, res.Summary(), "appended=1")

	assert.Equal(t, 3, log.Len())
	assert.True(t, log.Has(2025, 2, "Ann", "Joe"))

	log.Sort(SortSeason, 2025)
	out, err := log.Encode()
	require.NoError(t, err)

	games, malformed, err := game.DecodeGames(out)
	require.NoError(t, err)
	assert.Zero(t, malformed)
	require.Len(t, games, 3)
	assert.Equal(t, 2024, games[0].Season)
	assert.Equal(t, game.Game{
		Season: 2025, Date: "2025-09-14",
		TeamA: "Joe", TeamB: "Ann",
		ScoreA: 100, ScoreB: 90,
		Week: 2, Type: "Regular",
	}, games[2])
	assert.Contains(t, string(out), `"note": "kept"`, "existing rows are written back unchanged")
}

func TestImportWithoutOnlyPlayed(t *testing.T) {
	srv := fakeLeague(t)
	log, err := ParseGameLog([]byte(`[]`))
	require.NoError(t, err)

	res, err := newTestImporter(srv).Run(context.Background(), log, ImportOptions{
		LeagueID: "L1",
		Season:   2025,
		Weeks:    []int{1},
		Mapping:  map[string]string{"1": "Joe", "2": "Zook", "3": "Ann", "4": "Bo"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Appended)

	out, err := log.Encode()
	require.NoError(t, err)
	games, _, err := game.DecodeGames(out)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, 120.46, games[0].ScoreA)
	assert.Equal(t, 100.0, games[0].ScoreB)
}

func TestImportRejectsIncompleteMapping(t *testing.T) {
	srv := fakeLeague(t)
	log, err := ParseGameLog([]byte(`[]`))
	require.NoError(t, err)

	_, err = newTestImporter(srv).Run(context.Background(), log, ImportOptions{
		LeagueID: "L1",
		Season:   2025,
		Weeks:    []int{1},
		Mapping:  map[string]string{"1": "Joe"},
	})
	var missing *MissingMappingError
	require.ErrorAs(t, err, &missing)
	assert.Len(t, missing.Teams, 3)
	assert.Zero(t, log.Len())
}

func TestSundayForWeek(t *testing.T) {
	tests := []struct {
		season, week int
		want         string
	}{
		{2025, 1, "2025-09-07"},
		{2025, 6, "2025-10-12"},
		{2024, 1, "2024-09-08"},
		{2022, 1, "2022-09-11"},
		{2020, 14, "2020-12-13"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SundayForWeek(tt.season, tt.week).Format(DateLayout), "%d week %d", tt.season, tt.week)
		assert.Equal(t, time.Sunday, SundayForWeek(tt.season, tt.week).Weekday())
	}
}

func TestParseWeeks(t *testing.T) {
	weeks, err := ParseWeeks("1-4, 3,9,, 2")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 9}, weeks)

	weeks, err = ParseWeeks("1-14")
	require.NoError(t, err)
	assert.Len(t, weeks, 14)

	for _, bad := range []string{"", "a", "5-3", "0", "1-x"} {
		_, err := ParseWeeks(bad)
		assert.Error(t, err, bad)
	}
}

func TestPairMatchups(t *testing.T) {
	pairs := PairMatchups([]Matchup{
		{RosterID: 5, MatchupID: mid(2)},
		{RosterID: 1, MatchupID: mid(1)},
		{RosterID: 6, MatchupID: mid(2)},
		{RosterID: 9},
		{RosterID: 2, MatchupID: mid(1)},
		{RosterID: 3, MatchupID: mid(4)},
		{RosterID: 7, MatchupID: mid(5)},
		{RosterID: 8, MatchupID: mid(5)},
		{RosterID: 10, MatchupID: mid(5)},
	})
	require.Len(t, pairs, 2)
	assert.Equal(t, [2]int{5, 6}, [2]int{pairs[0][0].RosterID, pairs[0][1].RosterID})
	assert.Equal(t, [2]int{1, 2}, [2]int{pairs[1][0].RosterID, pairs[1][1].RosterID})
}

func TestGameLogSortGlobal(t *testing.T) {
	log, err := ParseGameLog([]byte(`[
		{"season":2023,"date":"2023-09-10","teamA":"B","teamB":"C","week":1},
		{"season":2022,"date":"2022-09-18","teamA":"A","teamB":"B","week":2},
		{"season":"2022","date":"2022-09-11","teamA":"C","teamB":"A","week":1}
	]`))
	require.NoError(t, err)
	assert.True(t, log.Has(2022, 1, "A", "C"), "season given as string still keys")

	log.Sort(SortGlobal, 0)
	dates := make([]string, 0, log.Len())
	for _, r := range log.rows {
		dates = append(dates, r.date)
	}
	assert.Equal(t, []string{"2022-09-11", "2022-09-18", "2023-09-10"}, dates)

	_, err = ParseGameLog([]byte(`{"not":"a list"}`))
	assert.Error(t, err)
}

func TestParseSortMode(t *testing.T) {
	m, err := ParseSortMode("season")
	require.NoError(t, err)
	assert.Equal(t, SortSeason, m)
	_, err = ParseSortMode("random")
	assert.Error(t, err)
}
