package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// ListCategories godoc
// @Summary      Lists voting categories
// @Description  Returns the categories in voting order.
// @Tags         catalog
// @Produce      json
// @Success      200
// @Router       /categories [get]
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// ListRegions godoc
// @Summary      Lists candidate regions
// @Tags         catalog
// @Produce      json
// @Success      200
// @Router       /regions [get]
func (h *CatalogHandler) ListRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.service.Regions(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, regions)
}

// ListCategoryCandidates godoc
// @Summary      Lists the candidates of a category
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200
// @Failure      404
// @Router       /categories/{id}/candidates [get]
func (h *CatalogHandler) ListCategoryCandidates(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing category id", http.StatusBadRequest)
		return
	}

	candidates, err := h.service.CandidatesForCategory(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, candidates)
}
