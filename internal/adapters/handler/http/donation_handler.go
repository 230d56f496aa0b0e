package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type DonationHandler struct {
	service ports.DonationService
}

func NewDonationHandler(service ports.DonationService) *DonationHandler {
	return &DonationHandler{
		service: service,
	}
}

// Amount may arrive as a JSON number or as the raw text typed by the donor.
type donationRequest struct {
	Amount  json.RawMessage `json:"amount"`
	Message string          `json:"message"`
}

// Donate godoc
// @Summary      Donates to the prize pool
// @Description  No payment is collected; the donation is processed after a short simulated delay.
// @Tags         donations
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Router       /donations [post]
func (h *DonationHandler) Donate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}

	donation, err := h.service.Donate(r.Context(), ports.DonationInput{
		Amount:  amount,
		Message: req.Message,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, donation)
}

// GetPool godoc
// @Summary      Shows the prize pool
// @Tags         donations
// @Produce      json
// @Success      200
// @Router       /donations/pool [get]
func (h *DonationHandler) GetPool(w http.ResponseWriter, r *http.Request) {
	pool, err := h.service.Pool(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pool)
}

func parseAmount(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, domain.ErrInvalidAmount
	}
	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, domain.ErrInvalidAmount
		}
		return domain.ParseAmount(text)
	}
	return domain.ParseAmount(string(raw))
}
