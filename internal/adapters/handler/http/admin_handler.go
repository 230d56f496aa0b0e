package http

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{
		service: service,
	}
}

// GetDashboard godoc
// @Summary      Shows the admin dashboard
// @Description  Figures come from mock aggregates, not from live ballots.
// @Tags         admin
// @Produce      json
// @Success      200
// @Router       /admin/dashboard [get]
func (h *AdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (h *AdminHandler) ToggleVotingLock(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.ToggleVotingLock(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	slog.InfoContext(r.Context(), "voting lock toggled", "voting_locked", settings.VotingLocked)
	writeJSON(w, http.StatusOK, settings)
}

func (h *AdminHandler) ToggleResultsPublic(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.ToggleResultsPublic(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	slog.InfoContext(r.Context(), "results visibility toggled", "results_public", settings.ResultsPublic)
	writeJSON(w, http.StatusOK, settings)
}

// ExportResults godoc
// @Summary      Exports vote tallies
// @Tags         admin
// @Produce      text/csv
// @Success      200
// @Router       /admin/export [get]
func (h *AdminHandler) ExportResults(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Export(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="results.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"category_id", "category", "candidate_id", "candidate", "votes"})
	for _, row := range rows {
		cw.Write([]string{
			row.CategoryID,
			row.CategoryName,
			row.CandidateID,
			row.CandidateName,
			strconv.FormatInt(row.Votes, 10),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.ErrorContext(r.Context(), "failed to write export", "error", err)
	}
}
