package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type sessionService struct {
	catalog ports.CatalogService
	store   ports.SessionStore
	tokens  ports.SessionTokens
	metrics ports.MetricsRecorder
	idleTTL time.Duration
	now     func() time.Time
}

func NewSessionService(catalog ports.CatalogService, store ports.SessionStore, tokens ports.SessionTokens, metrics ports.MetricsRecorder, idleTTL time.Duration) ports.SessionService {
	return &sessionService{
		catalog: catalog,
		store:   store,
		tokens:  tokens,
		metrics: metrics,
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

func (s *sessionService) Start(ctx context.Context) (*ports.StartedSession, error) {
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := s.catalog.Candidates(ctx)
	if err != nil {
		return nil, err
	}

	flow, err := domain.NewVotingFlow(categories, candidates)
	if err != nil {
		return nil, err
	}

	now := s.now()
	session := &domain.Session{
		ID:         uuid.New(),
		Flow:       flow,
		CreatedAt:  now,
		LastSeenAt: now,
	}
	if err := s.store.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	token, expiresAt, err := s.tokens.Issue(session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.metrics.SessionStarted()

	return &ports.StartedSession{
		ID:        session.ID,
		Token:     token,
		ExpiresAt: expiresAt,
		Progress:  session.Progress(),
	}, nil
}

func (s *sessionService) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	id, err := s.tokens.Verify(token)
	if err != nil {
		return uuid.Nil, err
	}

	err = s.store.Update(ctx, id, func(session *domain.Session) error {
		session.LastSeenAt = s.now()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *sessionService) Login(ctx context.Context, id uuid.UUID) (domain.Progress, error) {
	return s.setAuthenticated(ctx, id, true)
}

func (s *sessionService) Logout(ctx context.Context, id uuid.UUID) (domain.Progress, error) {
	return s.setAuthenticated(ctx, id, false)
}

func (s *sessionService) setAuthenticated(ctx context.Context, id uuid.UUID, authenticated bool) (domain.Progress, error) {
	var progress domain.Progress
	err := s.store.Update(ctx, id, func(session *domain.Session) error {
		session.Authenticated = authenticated
		progress = session.Progress()
		return nil
	})
	return progress, err
}

func (s *sessionService) End(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

func (s *sessionService) Sweep(ctx context.Context) (int, error) {
	n, err := s.store.DeleteIdle(ctx, s.now().Add(-s.idleTTL))
	if err != nil {
		return 0, fmt.Errorf("failed to sweep sessions: %w", err)
	}
	return n, nil
}

// RunSessionSweeper evicts idle sessions every interval until ctx is done.
func RunSessionSweeper(ctx context.Context, sessions ports.SessionService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := sessions.Sweep(ctx)
			if err != nil {
				slog.ErrorContext(ctx, "session sweep failed", "error", err)
				continue
			}
			if n > 0 {
				slog.InfoContext(ctx, "evicted idle sessions", "count", n)
			}
		}
	}
}
