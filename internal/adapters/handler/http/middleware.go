package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type contextKey string

const (
	SessionIDKey      contextKey = "session_id"
	sessionCookieName            = "session_token"
)

// RequireSession resolves the caller's session and stores its id in the
// request context. A Bearer Authorization header is tried before the session
// cookie; the first token that resolves wins.
func RequireSession(sessions ports.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokens := sessionTokens(r)
			if len(tokens) == 0 {
				http.Error(w, "session required", http.StatusUnauthorized)
				return
			}

			var err error
			for _, token := range tokens {
				var id uuid.UUID
				id, err = sessions.Resolve(r.Context(), token)
				if err == nil {
					next.ServeHTTP(w, r.WithContext(withSessionID(r, id)))
					return
				}
			}
			writeError(w, r, err)
		})
	}
}

func sessionTokens(r *http.Request) []string {
	var tokens []string
	if value, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		if value = strings.TrimSpace(value); value != "" {
			tokens = append(tokens, value)
		}
	}
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		tokens = append(tokens, cookie.Value)
	}
	return tokens
}

func sessionIDFrom(r *http.Request) (uuid.UUID, error) {
	id, ok := r.Context().Value(SessionIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, domain.ErrSessionNotFound
	}
	return id, nil
}

func withSessionID(r *http.Request, id uuid.UUID) context.Context {
	return context.WithValue(r.Context(), SessionIDKey, id)
}
