package handler

import (
	"net/http"

	"github.com/albapepper/h2h-league/internal/cache"
	"github.com/albapepper/h2h-league/internal/stats"
)

// GetFacets returns every selectable facet value, used by clients to build
// their filter controls.
// @Summary Facet universe
// @Description Teams, seasons, derived weeks, normalized types and ordered rounds present in the game log.
// @Tags bootstrap
// @Produce json
// @Success 200 {object} facet.Universe
// @Router /facets [get]
func (h *Handler) GetFacets(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "/api/v1/facets", "facets", cache.TTLReference, func() any {
		return h.data.Universe
	})
}

// GetOwners returns career summaries from the season summary table.
// @Summary Owner careers
// @Description Per-owner totals across seasons, titles with optional footnotes, byes and Saunders appearances. Most titles first.
// @Tags bootstrap
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /owners [get]
func (h *Handler) GetOwners(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "/api/v1/owners", "owners", cache.TTLReference, func() any {
		return map[string]interface{}{
			"owners": stats.OwnerCareers(h.data.Summary, h.data.Annotations),
		}
	})
}
