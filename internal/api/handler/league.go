package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/h2h-league/internal/api/respond"
	"github.com/albapepper/h2h-league/internal/cache"
	"github.com/albapepper/h2h-league/internal/game"
	"github.com/albapepper/h2h-league/internal/stats"
)

const (
	defaultBlowoutLimit = 10
	maxBlowoutLimit     = 100
)

// BlowoutsResponse is the body of GET /api/blowouts.
type BlowoutsResponse struct {
	Rows []stats.Blowout `json:"rows"`
}

// GetBlowouts returns the largest regular-season margins.
// @Summary Top regular-season blowouts
// @Description Regular games ranked by winning margin. limit defaults to 10, is capped at 100, and a non-positive limit yields no rows.
// @Tags records
// @Produce json
// @Param limit query int false "Number of rows" default(10)
// @Success 200 {object} BlowoutsResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /blowouts [get]
func (h *Handler) GetBlowouts(w http.ResponseWriter, r *http.Request) {
	limit := defaultBlowoutLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be an integer", v)
			return
		}
		limit = max(min(n, maxBlowoutLimit), 0)
	}

	key := "blowouts:" + strconv.Itoa(limit)
	h.serveCached(w, r, "/api/blowouts", key, cache.TTLAggregate, func() any {
		return BlowoutsResponse{Rows: stats.TopRegularBlowouts(h.data.Games, limit)}
	})
}

// GetStandings returns one season's regular-season table.
// @Summary Season standings
// @Description Regular-season standings ordered by win differential, points for, then win percentage.
// @Tags standings
// @Produce json
// @Param season path int true "Season year"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /standings/{season} [get]
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "season")
	season, err := strconv.Atoi(raw)
	if err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_SEASON", "season must be a year", raw)
		return
	}
	if !h.data.HasSeason(season) {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "No games for season "+raw)
		return
	}

	h.serveCached(w, r, "/api/v1/standings/{season}", "standings:"+raw, cache.TTLAggregate, func() any {
		return map[string]interface{}{
			"season": season,
			"rows":   stats.SeasonStandings(h.data.Games, season),
		}
	})
}

// GetHeadToHead returns the record between two teams.
// @Summary Head-to-head record
// @Description Wins for each side and ties between two teams. Unknown teams yield zero counts.
// @Tags h2h
// @Produce json
// @Param a query string true "First team"
// @Param b query string true "Second team"
// @Param scope query string false "regular (default) or all" Enums(regular, all)
// @Success 200 {object} stats.HeadToHeadRecord
// @Failure 400 {object} respond.ErrorResponse
// @Router /h2h [get]
func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	a, b := q.Get("a"), q.Get("b")
	if a == "" || b == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_TEAM", "a and b query parameters are required")
		return
	}
	scope := stats.ParseScope(q.Get("scope"))

	h.serveCached(w, r, "/api/v1/h2h", cacheKey("h2h", r), cache.TTLQuery, func() any {
		return stats.HeadToHead(h.data.Games, a, b, scope)
	})
}

// StreaksResponse carries both streak directions for a team.
type StreaksResponse struct {
	Team  string       `json:"team"`
	Scope string       `json:"scope"`
	Win   stats.Streak `json:"win"`
	Loss  stats.Streak `json:"loss"`
}

// GetStreaks returns a team's longest winning and losing runs.
// @Summary Longest streaks
// @Description Longest consecutive win and loss runs in season/date order. A tie breaks either run.
// @Tags streaks
// @Produce json
// @Param team path string true "Team"
// @Param scope query string false "regular (default) or all" Enums(regular, all)
// @Success 200 {object} StreaksResponse
// @Router /streaks/{team} [get]
func (h *Handler) GetStreaks(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")
	scope := stats.ParseScope(r.URL.Query().Get("scope"))

	key := "streaks:" + team + ":" + scope.String()
	h.serveCached(w, r, "/api/v1/streaks/{team}", key, cache.TTLAggregate, func() any {
		return StreaksResponse{
			Team:  team,
			Scope: scope.String(),
			Win:   stats.LongestWinStreak(h.data.Games, team, scope),
			Loss:  stats.LongestLosingStreak(h.data.Games, team, scope),
		}
	})
}

// RecordsResponse collects the single-game records.
type RecordsResponse struct {
	Scope           string               `json:"scope"`
	HighestCombined *stats.CombinedScore `json:"highestCombined"`
	HighestSingle   *stats.SingleScore   `json:"highestSingle"`
	Blowouts        []stats.Blowout      `json:"blowouts"`
}

// GetRecords returns league scoring records.
// @Summary Scoring records
// @Description Highest combined score, highest single score and the top regular-season blowouts.
// @Tags records
// @Produce json
// @Param scope query string false "regular (default) or all" Enums(regular, all)
// @Success 200 {object} RecordsResponse
// @Router /records [get]
func (h *Handler) GetRecords(w http.ResponseWriter, r *http.Request) {
	scope := stats.ParseScope(r.URL.Query().Get("scope"))

	h.serveCached(w, r, "/api/v1/records", "records:"+scope.String(), cache.TTLAggregate, func() any {
		return RecordsResponse{
			Scope:           scope.String(),
			HighestCombined: stats.HighestCombinedScore(h.data.Games, scope),
			HighestSingle:   stats.HighestSingleScore(h.data.Games, scope),
			Blowouts:        stats.TopRegularBlowouts(h.data.Games, defaultBlowoutLimit),
		}
	})
}

// seasonFilter applies the optional season query parameter.
func (h *Handler) seasonFilter(w http.ResponseWriter, r *http.Request) ([]game.Game, bool) {
	season, ok, err := intParam(r, "season")
	if err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_SEASON", "season must be a year", r.URL.Query().Get("season"))
		return nil, false
	}
	if !ok {
		return h.data.Games, true
	}
	return stats.InSeason(h.data.Games, season), true
}

// GetLuck returns actual minus expected wins for every team.
// @Summary Luck table
// @Description Expected wins compare each regular-season score against every other score that date. Sorted luckiest first.
// @Tags luck
// @Produce json
// @Param season query int false "Restrict to one season"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /luck [get]
func (h *Handler) GetLuck(w http.ResponseWriter, r *http.Request) {
	games, ok := h.seasonFilter(w, r)
	if !ok {
		return
	}
	h.serveCached(w, r, "/api/v1/luck", cacheKey("luck", r), cache.TTLAggregate, func() any {
		return map[string]interface{}{"rows": stats.LuckTable(games)}
	})
}

// GetAwards returns the weekly high and low scorers plus a per-team tally.
// @Summary Weekly awards
// @Description Top and bottom regular-season score of each date. On an exact tie the first entry in sort order takes the award.
// @Tags awards
// @Produce json
// @Param season query int false "Restrict to one season"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /awards [get]
func (h *Handler) GetAwards(w http.ResponseWriter, r *http.Request) {
	games, ok := h.seasonFilter(w, r)
	if !ok {
		return
	}
	h.serveCached(w, r, "/api/v1/awards", cacheKey("awards", r), cache.TTLAggregate, func() any {
		awards := stats.WeeklyAwards(games)
		return map[string]interface{}{
			"awards": awards,
			"tally":  stats.AwardTally(awards),
		}
	})
}

// GetRivalries returns one team's record against every opponent.
// @Summary Rivalry table
// @Description Per-opponent record, points and win percentage for one team.
// @Tags rivalries
// @Produce json
// @Param team path string true "Team"
// @Param scope query string false "regular (default) or all" Enums(regular, all)
// @Success 200 {object} map[string]interface{}
// @Router /rivalries/{team} [get]
func (h *Handler) GetRivalries(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")
	scope := stats.ParseScope(r.URL.Query().Get("scope"))

	key := "rivalries:" + team + ":" + scope.String()
	h.serveCached(w, r, "/api/v1/rivalries/{team}", key, cache.TTLAggregate, func() any {
		return map[string]interface{}{
			"team":  team,
			"scope": scope.String(),
			"rows":  stats.RivalryTable(h.data.Games, team, scope),
		}
	})
}

// GetRivalryGroups returns head-to-head callouts for the configured groups.
// @Summary Rivalry group callouts
// @Description Pairwise head-to-head records inside each named rivalry group. Empty when no rivalry source is configured.
// @Tags rivalries
// @Produce json
// @Param scope query string false "regular (default) or all" Enums(regular, all)
// @Success 200 {object} map[string]interface{}
// @Router /rivalry-groups [get]
func (h *Handler) GetRivalryGroups(w http.ResponseWriter, r *http.Request) {
	scope := stats.ParseScope(r.URL.Query().Get("scope"))

	h.serveCached(w, r, "/api/v1/rivalry-groups", "rivalry-groups:"+scope.String(), cache.TTLAggregate, func() any {
		return map[string]interface{}{
			"groups": stats.GroupRivalries(h.data.Games, h.data.Groups, scope),
		}
	})
}
