package handler

import (
	"net/http"
	"strconv"

	"github.com/albapepper/h2h-league/internal/api/respond"
	"github.com/albapepper/h2h-league/internal/cache"
	"github.com/albapepper/h2h-league/internal/facet"
	"github.com/albapepper/h2h-league/internal/game"
)

// GameView is a game with its derived fields exposed.
type GameView struct {
	game.Game
	WeekA    int    `json:"weekA"`
	WeekB    int    `json:"weekB"`
	Category string `json:"category"`
}

// GamesResponse is the body of GET /api/v1/games.
type GamesResponse struct {
	Count int        `json:"count"`
	Games []GameView `json:"games"`
}

func intValues(values []string) ([]int, string, bool) {
	out := make([]int, 0, len(values))
	for _, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, v, false
		}
		out = append(out, n)
	}
	return out, "", true
}

// GetGames returns the games matching every active facet.
// @Summary Filter games
// @Description Each parameter may repeat. A facet with no values, or with every possible value, does not filter.
// @Tags games
// @Produce json
// @Param team query string false "Team whose games to return"
// @Param season query []int false "Seasons" collectionFormat(multi)
// @Param week query []int false "Derived week numbers" collectionFormat(multi)
// @Param opponent query []string false "Opponents" collectionFormat(multi)
// @Param type query []string false "Normalized types" collectionFormat(multi)
// @Param round query []string false "Normalized rounds" collectionFormat(multi)
// @Success 200 {object} GamesResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /games [get]
func (h *Handler) GetGames(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	seasons, bad, ok := intValues(q["season"])
	if !ok {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_SEASON", "season must be a year", bad)
		return
	}
	weeks, bad, ok := intValues(q["week"])
	if !ok {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_WEEK", "week must be an integer", bad)
		return
	}

	sel := facet.Selection{
		Team:      facet.AllTeams(),
		Seasons:   seasons,
		Weeks:     weeks,
		Opponents: q["opponent"],
		Types:     q["type"],
		Rounds:    q["round"],
	}
	if team := q.Get("team"); team != "" {
		sel.Team = facet.SpecificTeam(team)
	}

	h.serveCached(w, r, "/api/v1/games", cacheKey("games", r), cache.TTLQuery, func() any {
		matched := facet.ApplyWithin(h.data.Games, sel, h.data.Universe)
		views := make([]GameView, 0, len(matched))
		for _, g := range matched {
			views = append(views, GameView{
				Game:     g,
				WeekA:    g.WeekA,
				WeekB:    g.WeekB,
				Category: game.CategoryOf(g).String(),
			})
		}
		return GamesResponse{Count: len(views), Games: views}
	})
}
