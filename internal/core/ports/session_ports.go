package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/awards/internal/core/domain"
)

type SessionStore interface {
	Create(ctx context.Context, session *domain.Session) error
	// Update runs fn with exclusive access to the session.
	Update(ctx context.Context, id uuid.UUID, fn func(*domain.Session) error) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteIdle(ctx context.Context, idleSince time.Time) (int, error)
}

type SessionTokens interface {
	Issue(sessionID uuid.UUID) (token string, expiresAt time.Time, err error)
	Verify(token string) (uuid.UUID, error)
}

type StartedSession struct {
	ID        uuid.UUID
	Token     string
	ExpiresAt time.Time
	Progress  domain.Progress
}

type SessionService interface {
	Start(ctx context.Context) (*StartedSession, error)
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
	Login(ctx context.Context, id uuid.UUID) (domain.Progress, error)
	Logout(ctx context.Context, id uuid.UUID) (domain.Progress, error)
	// End discards the session and its ballot.
	End(ctx context.Context, id uuid.UUID) error
	Sweep(ctx context.Context) (int, error)
}
