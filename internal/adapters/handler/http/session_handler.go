package http

import (
	"net/http"
	"time"

	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type SessionHandler struct {
	service      ports.SessionService
	cookieSecure bool
}

func NewSessionHandler(service ports.SessionService, cookieSecure bool) *SessionHandler {
	return &SessionHandler{
		service:      service,
		cookieSecure: cookieSecure,
	}
}

type startSessionResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Progress  domain.Progress `json:"progress"`
}

// StartSession godoc
// @Summary      Starts a voting session
// @Description  Creates an anonymous session and sets the `session_token` cookie used by `/ballot` calls.
// @Tags         sessions
// @Produce      json
// @Success      201
// @Router       /sessions [post]
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	started, err := h.service.Start(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    started.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  started.ExpiresAt,
	})

	writeJSON(w, http.StatusCreated, startSessionResponse{
		Token:     started.Token,
		ExpiresAt: started.ExpiresAt,
		Progress:  started.Progress,
	})
}

// Login godoc
// @Summary      Logs the session in
// @Description  Marks the session as authenticated so it may vote.
// @Tags         sessions
// @Produce      json
// @Success      200
// @Failure      401
// @Router       /sessions/login [post]
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	id, err := sessionIDFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	progress, err := h.service.Login(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

// Logout godoc
// @Summary      Logs the session out
// @Tags         sessions
// @Produce      json
// @Success      200
// @Failure      401
// @Router       /sessions/logout [post]
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	id, err := sessionIDFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	progress, err := h.service.Logout(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

// EndSession godoc
// @Summary      Ends the session
// @Description  Discards the ballot and clears the `session_token` cookie.
// @Tags         sessions
// @Success      204
// @Failure      401
// @Router       /sessions [delete]
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionIDFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.service.End(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	w.WriteHeader(http.StatusNoContent)
}
