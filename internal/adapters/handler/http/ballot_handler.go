package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type BallotHandler struct {
	service ports.VotingService
}

func NewBallotHandler(service ports.VotingService) *BallotHandler {
	return &BallotHandler{
		service: service,
	}
}

type cursorRequest struct {
	Index *int `json:"index"`
}

type filterRequest struct {
	Search string `json:"search"`
	Region string `json:"region"`
}

type voteRequest struct {
	CandidateID string `json:"candidate_id"`
}

// GetBallot godoc
// @Summary      Shows the session's voting progress
// @Tags         ballot
// @Produce      json
// @Success      200
// @Failure      401
// @Router       /ballot [get]
func (h *BallotHandler) GetBallot(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(id uuid.UUID) (domain.Progress, error) {
		return h.service.Progress(r.Context(), id)
	})
}

// SelectCategory godoc
// @Summary      Jumps to a category
// @Description  Out-of-range indices leave the ballot unchanged.
// @Tags         ballot
// @Accept       json
// @Produce      json
// @Success      200
// @Failure      400
// @Router       /ballot/cursor [put]
func (h *BallotHandler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	var req cursorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Index == nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.withSession(w, r, func(id uuid.UUID) (domain.Progress, error) {
		return h.service.SelectCategory(r.Context(), id, *req.Index)
	})
}

func (h *BallotHandler) Advance(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(id uuid.UUID) (domain.Progress, error) {
		return h.service.Advance(r.Context(), id)
	})
}

func (h *BallotHandler) Retreat(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(id uuid.UUID) (domain.Progress, error) {
		return h.service.Retreat(r.Context(), id)
	})
}

// SetFilter godoc
// @Summary      Sets the candidate search and region filter
// @Tags         ballot
// @Accept       json
// @Produce      json
// @Success      200
// @Failure      400
// @Router       /ballot/filter [put]
func (h *BallotHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.withSession(w, r, func(id uuid.UUID) (domain.Progress, error) {
		return h.service.SetFilter(r.Context(), ports.FilterInput{
			SessionID: id,
			Search:    req.Search,
			Region:    req.Region,
		})
	})
}

// ListCandidates godoc
// @Summary      Lists the active category's candidates after filtering
// @Tags         ballot
// @Produce      json
// @Success      200
// @Failure      401
// @Router       /ballot/candidates [get]
func (h *BallotHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	id, err := sessionIDFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	candidates, err := h.service.FilteredCandidates(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, candidates)
}

// Vote godoc
// @Summary      Votes in the active category
// @Description  Replaces any earlier vote in the same category. Requires a logged-in session.
// @Tags         ballot
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Failure      401
// @Router       /ballot/votes [post]
func (h *BallotHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := sessionIDFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	progress, err := h.service.Vote(r.Context(), ports.VoteInput{
		SessionID:   id,
		CandidateID: req.CandidateID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, progress)
}

func (h *BallotHandler) withSession(w http.ResponseWriter, r *http.Request, fn func(uuid.UUID) (domain.Progress, error)) {
	id, err := sessionIDFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	progress, err := fn(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}
