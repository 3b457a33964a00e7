package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/h2h-league/internal/cache"
	"github.com/albapepper/h2h-league/internal/config"
	"github.com/albapepper/h2h-league/internal/dataset"
	"github.com/albapepper/h2h-league/internal/game"
	"github.com/albapepper/h2h-league/internal/metrics"
	"github.com/albapepper/h2h-league/internal/stats"
)

func testData() *dataset.Dataset {
	games := []game.Game{
		{Season: 2022, Date: "2022-09-11", TeamA: "Joe", TeamB: "Zook", ScoreA: 150.5, ScoreB: 90.2, Type: "Regular"},
		{Season: 2022, Date: "2022-09-11", TeamA: "Ann", TeamB: "Bo", ScoreA: 101, ScoreB: 99},
		{Season: 2022, Date: "2022-09-18", TeamA: "Joe", TeamB: "Ann", ScoreA: 88, ScoreB: 120},
		{Season: 2022, Date: "2022-09-18", TeamA: "Zook", TeamB: "Bo", ScoreA: 77, ScoreB: 77},
		{Season: 2022, Date: "2022-12-18", TeamA: "Joe", TeamB: "Ann", ScoreA: 140, ScoreB: 80, Type: "Playoff", Round: "Championship"},
		{Season: 2023, Date: "2023-09-10", TeamA: "Zook", TeamB: "Joe", ScoreA: 120, ScoreB: 100},
	}
	summary := []game.SeasonSummaryRow{
		{Owner: "Joe", Season: 2022, Wins: 1, Losses: 1, Champion: true},
		{Owner: "Ann", Season: 2022, Wins: 2},
	}
	groups := []stats.RivalryGroup{{Name: "Originals", Teams: []string{"Joe", "Zook"}}}
	return dataset.Build(games, summary, groups, nil)
}

type testServer struct {
	router  http.Handler
	metrics *metrics.Mock
	reg     *prometheus.Registry
}

func newTestServer(t *testing.T, mutate func(*config.Config)) testServer {
	t.Helper()
	cfg := &config.Config{
		CORSAllowOrigins:  []string{"*"},
		RateLimitEnabled:  false,
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		CacheEnabled:      true,
	}
	if mutate != nil {
		mutate(cfg)
	}
	c := cache.New(cfg.CacheEnabled)
	t.Cleanup(c.Close)

	reg := prometheus.NewRegistry()
	metrics.NewService(reg).SetDatasetGames(6)
	mock := metrics.NewMock()

	return testServer{
		router: NewRouter(Deps{
			Data:           testData(),
			Cache:          c,
			Config:         cfg,
			Metrics:        mock,
			MetricsHandler: metrics.NewMetricsHandler(reg),
		}),
		metrics: mock,
		reg:     reg,
	}
}

func (s testServer) get(t *testing.T, path string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode(t, rec)
	e, ok := body["error"].(map[string]any)
	require.True(t, ok, rec.Body.String())
	return e["code"].(string)
}

func TestBlowoutsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.get(t, "/api/blowouts?limit=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age=3600")
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	assert.NotEmpty(t, rec.Header().Get("X-Process-Time"))

	var body struct {
		Rows []stats.Blowout `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Rows, 1)
	assert.Equal(t, stats.Blowout{
		Season: 2022, Date: "2022-09-11", Winner: "Joe", Loser: "Zook",
		ScoreW: 150.5, ScoreL: 90.2, Margin: 60.3,
	}, body.Rows[0])

	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	again := s.get(t, "/api/blowouts?limit=1")
	assert.Equal(t, "HIT", again.Header().Get("X-Cache"))
	assert.Equal(t, rec.Body.String(), again.Body.String())

	notModified := s.get(t, "/api/blowouts?limit=1", "If-None-Match", etag)
	assert.Equal(t, http.StatusNotModified, notModified.Code)

	assert.Equal(t, 3, s.metrics.Requests("/api/blowouts"))
	assert.Equal(t, 2, s.metrics.CacheHits())
}

func TestBlowoutsLimit(t *testing.T) {
	s := newTestServer(t, nil)

	rows := func(path string) []any {
		rec := s.get(t, path)
		require.Equal(t, http.StatusOK, rec.Code)
		r, ok := decode(t, rec)["rows"].([]any)
		require.True(t, ok, "rows must be an array")
		return r
	}
	assert.Len(t, rows("/api/blowouts"), 5, "default 10 covers all regular games")
	assert.Empty(t, rows("/api/blowouts?limit=0"))
	assert.Empty(t, rows("/api/blowouts?limit=-2"))
	assert.Len(t, rows("/api/blowouts?limit=100000"), 5)
	assert.Len(t, rows("/api/v1/blowouts?limit=2"), 2)

	rec := s.get(t, "/api/blowouts?limit=ten")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_LIMIT", errorCode(t, rec))
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil)

	body := decode(t, s.get(t, "/health"))
	assert.Equal(t, true, body["ok"])
	assert.IsType(t, float64(0), body["ts"])
	assert.Equal(t, float64(6), body["games"])

	db := decode(t, s.get(t, "/health/db"))
	assert.Equal(t, "not_configured", db["database"])

	c := decode(t, s.get(t, "/health/cache"))
	assert.Contains(t, c, "cache")

	root := decode(t, s.get(t, "/"))
	assert.Equal(t, "H2H League API", root["name"])
}

func TestStandingsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.get(t, "/api/v1/standings/2022")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Season int                  `json:"season"`
		Rows   []stats.StandingsRow `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2022, body.Season)
	require.Len(t, body.Rows, 4)
	assert.Equal(t, "Ann", body.Rows[0].Team)

	assert.Equal(t, "INVALID_SEASON", errorCode(t, s.get(t, "/api/v1/standings/twenty")))
	rec = s.get(t, "/api/v1/standings/1990")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
}

func TestHeadToHeadEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	var rec stats.HeadToHeadRecord
	require.NoError(t, json.Unmarshal(s.get(t, "/api/v1/h2h?a=Joe&b=Ann").Body.Bytes(), &rec))
	assert.Equal(t, stats.HeadToHeadRecord{TeamA: "Joe", TeamB: "Ann", WB: 1, N: 1}, rec)

	require.NoError(t, json.Unmarshal(s.get(t, "/api/v1/h2h?a=Joe&b=Ann&scope=all").Body.Bytes(), &rec))
	assert.Equal(t, 2, rec.N)

	require.NoError(t, json.Unmarshal(s.get(t, "/api/v1/h2h?a=Joe&b=Nobody").Body.Bytes(), &rec))
	assert.Equal(t, 0, rec.N)

	missing := s.get(t, "/api/v1/h2h?a=Joe")
	assert.Equal(t, http.StatusBadRequest, missing.Code)
	assert.Equal(t, "MISSING_TEAM", errorCode(t, missing))
}

func TestStreaksAndRecords(t *testing.T) {
	s := newTestServer(t, nil)

	body := decode(t, s.get(t, "/api/v1/streaks/Joe?scope=all"))
	assert.Equal(t, "all", body["scope"])
	win := body["win"].(map[string]any)
	assert.Equal(t, float64(1), win["length"])

	unknown := decode(t, s.get(t, "/api/v1/streaks/Nobody"))
	assert.Equal(t, float64(0), unknown["win"].(map[string]any)["length"])
	assert.Nil(t, unknown["win"].(map[string]any)["start"])

	records := decode(t, s.get(t, "/api/v1/records"))
	combined := records["highestCombined"].(map[string]any)
	assert.Equal(t, 240.7, combined["total"])
	assert.Len(t, records["blowouts"], 5)
}

func TestLuckAwardsRivalries(t *testing.T) {
	s := newTestServer(t, nil)

	luck := decode(t, s.get(t, "/api/v1/luck?season=2022"))
	assert.Len(t, luck["rows"], 4)
	assert.Equal(t, "INVALID_SEASON", errorCode(t, s.get(t, "/api/v1/luck?season=abc")))

	awards := decode(t, s.get(t, "/api/v1/awards"))
	assert.Len(t, awards["awards"], 3)
	assert.NotEmpty(t, awards["tally"])

	riv := decode(t, s.get(t, "/api/v1/rivalries/Joe"))
	assert.Len(t, riv["rows"], 2)

	groups := decode(t, s.get(t, "/api/v1/rivalry-groups"))
	g := groups["groups"].([]any)
	require.Len(t, g, 1)
	assert.Len(t, g[0].(map[string]any)["matchups"], 1)

	owners := decode(t, s.get(t, "/api/v1/owners"))
	o := owners["owners"].([]any)
	require.Len(t, o, 2)
	assert.Equal(t, "Joe", o[0].(map[string]any)["owner"])
}

func TestGamesAndFacets(t *testing.T) {
	s := newTestServer(t, nil)

	facets := decode(t, s.get(t, "/api/v1/facets"))
	assert.Equal(t, []any{"Ann", "Bo", "Joe", "Zook"}, facets["teams"])
	assert.Equal(t, []any{"", "Championship"}, facets["rounds"])

	body := decode(t, s.get(t, "/api/v1/games?team=Joe&season=2022"))
	assert.Equal(t, float64(3), body["count"])

	body = decode(t, s.get(t, "/api/v1/games?team=Joe&opponent=Ann&type=Playoff"))
	require.Equal(t, float64(1), body["count"])
	first := body["games"].([]any)[0].(map[string]any)
	assert.Equal(t, "playoff", first["category"])
	assert.Equal(t, float64(3), first["weekA"])

	all := decode(t, s.get(t, "/api/v1/games"))
	everySeason := decode(t, s.get(t, "/api/v1/games?season=2022&season=2023"))
	assert.Equal(t, all["count"], everySeason["count"])

	assert.Equal(t, "INVALID_WEEK", errorCode(t, s.get(t, "/api/v1/games?week=first")))
	assert.Equal(t, "INVALID_SEASON", errorCode(t, s.get(t, "/api/v1/games?season=x")))
}

func TestMetricsRoute(t *testing.T) {
	s := newTestServer(t, nil)
	rec := s.get(t, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "h2h_dataset_games 6")
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) {
		c.RateLimitEnabled = true
		c.RateLimitRequests = 2
	})

	assert.Equal(t, http.StatusOK, s.get(t, "/health").Code)
	rec := s.get(t, "/health")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMITED", errorCode(t, rec))
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}
