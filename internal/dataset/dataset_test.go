package dataset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/h2h-league/internal/game"
	"github.com/albapepper/h2h-league/internal/stats"
)

const gamesJSON = `[
  {"season":2022,"date":"2022-09-11","teamA":"Joe","teamB":"Zook","scoreA":150.5,"scoreB":90.2,"type":"Regular"},
  {"season":2022,"date":"2022-09-11","teamA":"Zook","teamB":"Joe","scoreA":90.2,"scoreB":150.5,"type":"Regular"},
  {"season":"2022","date":"2022-09-18","teamA":"Joe","teamB":"Ann","scoreA":"88","scoreB":120},
  {"season":2022,"date":"2022-09-25","teamA":"Joe","scoreA":1,"scoreB":2},
  {"season":2022,"date":"2022-09-25","teamA":"Ann","teamB":"Ann","scoreA":1,"scoreB":2}
]`

const summaryJSON = `[
  {"owner":"Joe","season":2022,"wins":9,"losses":4,"champion":true},
  {"owner":"Ann","season":2022,"wins":7,"losses":6},
  {"season":2022,"wins":1}
]`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		GamesSource:       writeFile(t, dir, "H2H.json", gamesJSON),
		SummarySource:     writeFile(t, dir, "seasons.json", summaryJSON),
		RivalrySource:     writeFile(t, dir, "rivals.json", `{"Originals":["Joe","Zook"],"Solo":["Ann"]}`),
		AnnotationsSource: writeFile(t, dir, "notes.json", `[{"owner":"Joe","season":2022,"note":"won on a tiebreak"}]`),
	}

	ds, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Len(t, ds.Games, 2)
	assert.Equal(t, 1, ds.Report.MalformedGames)
	assert.Equal(t, 1, ds.Report.Duplicates)
	assert.Equal(t, 1, ds.Report.Invalid)
	assert.Equal(t, 1, ds.Report.MalformedSummary)
	assert.Equal(t, 2, ds.Report.SummaryRows)

	require.Len(t, ds.Groups, 1)
	assert.Equal(t, "Originals", ds.Groups[0].Name)
	assert.Equal(t, "won on a tiebreak", ds.Annotations[stats.AnnotationKey{Owner: "Joe", Season: 2022}])

	assert.Equal(t, []int{2022}, ds.Seasons())
	assert.Contains(t, ds.Universe.Teams, "Ann")
	assert.NotContains(t, ds.Universe.Teams, "Nobody")
	assert.True(t, ds.HasSeason(2022))

	w, ok := ds.Games[1].WeekFor("Joe")
	assert.True(t, ok)
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, ds.Weeks.Max())
	assert.Equal(t, []int{1, 2}, ds.Universe.Weeks)
}

func TestLoadMissingSourcesAreFatal(t *testing.T) {
	dir := t.TempDir()
	games := writeFile(t, dir, "H2H.json", gamesJSON)
	summary := writeFile(t, dir, "seasons.json", summaryJSON)

	_, err := Load(context.Background(), Options{GamesSource: filepath.Join(dir, "missing.json"), SummarySource: summary})
	assert.ErrorIs(t, err, ErrGamesUnavailable)

	_, err = Load(context.Background(), Options{GamesSource: writeFile(t, dir, "bad.json", `{"not":"an array"}`), SummarySource: summary})
	assert.ErrorIs(t, err, ErrGamesUnavailable)

	_, err = Load(context.Background(), Options{GamesSource: games, SummarySource: filepath.Join(dir, "missing.json")})
	assert.ErrorIs(t, err, ErrSummaryUnavailable)
}

func TestLoadRivalryFailureDegrades(t *testing.T) {
	dir := t.TempDir()
	ds, err := Load(context.Background(), Options{
		GamesSource:       writeFile(t, dir, "H2H.json", gamesJSON),
		SummarySource:     writeFile(t, dir, "seasons.json", summaryJSON),
		RivalrySource:     filepath.Join(dir, "missing.json"),
		AnnotationsSource: writeFile(t, dir, "notes.json", `not json`),
	})
	require.NoError(t, err)
	assert.Empty(t, ds.Groups)
	assert.NotNil(t, ds.Groups)
	assert.Empty(t, ds.Annotations)
}

func TestLoadOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/H2H.json":
			_, _ = w.Write([]byte(gamesJSON))
		case "/seasons.json":
			_, _ = w.Write([]byte(summaryJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ds, err := Load(context.Background(), Options{
		GamesSource:   srv.URL + "/H2H.json",
		SummarySource: srv.URL + "/seasons.json",
		RivalrySource: srv.URL + "/rivals.json",
		HTTPClient:    srv.Client(),
	})
	require.NoError(t, err)
	assert.Len(t, ds.Games, 2)
	assert.Empty(t, ds.Groups)

	_, err = Load(context.Background(), Options{
		GamesSource:   srv.URL + "/nope.json",
		SummarySource: srv.URL + "/seasons.json",
		HTTPClient:    srv.Client(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGamesUnavailable)
	assert.Contains(t, err.Error(), "404")
}

type fakeStore struct {
	games []game.Game
	err   error
}

func (f fakeStore) LoadGames(context.Context) ([]game.Game, error) { return f.games, f.err }

func TestLoadFromStore(t *testing.T) {
	dir := t.TempDir()
	summary := writeFile(t, dir, "seasons.json", summaryJSON)
	store := fakeStore{games: []game.Game{
		{Season: 2021, Date: "2021-09-12", TeamA: "Joe", TeamB: "Ann", ScoreA: 1, ScoreB: 2},
	}}

	ds, err := Load(context.Background(), Options{Store: store, SummarySource: summary, GamesSource: "ignored.json"})
	require.NoError(t, err)
	assert.Len(t, ds.Games, 1)

	_, err = Load(context.Background(), Options{Store: fakeStore{err: errors.New("down")}, SummarySource: summary})
	assert.ErrorIs(t, err, ErrGamesUnavailable)
}

func TestDecodeRivalryGroups(t *testing.T) {
	groups, err := DecodeRivalryGroups([]byte(`[{"name":"B","teams":["x"," y ",""]},{"name":"A","teams":["p","q","r"]}]`))
	require.NoError(t, err)
	assert.Equal(t, []stats.RivalryGroup{
		{Name: "B", Teams: []string{"x", "y"}},
		{Name: "A", Teams: []string{"p", "q", "r"}},
	}, groups)

	_, err = DecodeRivalryGroups([]byte(`"nope"`))
	assert.Error(t, err)
}

func TestBuildWithNilExtras(t *testing.T) {
	ds := Build(nil, nil, nil, nil)
	assert.Empty(t, ds.Games)
	assert.NotNil(t, ds.Summary)
	assert.NotNil(t, ds.Groups)
	assert.Equal(t, 0, ds.Weeks.Max())
}
