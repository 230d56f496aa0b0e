package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type votingService struct {
	store   ports.SessionStore
	metrics ports.MetricsRecorder
}

func NewVotingService(store ports.SessionStore, metrics ports.MetricsRecorder) ports.VotingService {
	return &votingService{
		store:   store,
		metrics: metrics,
	}
}

func (s *votingService) Progress(ctx context.Context, sessionID uuid.UUID) (domain.Progress, error) {
	return s.apply(ctx, sessionID, func(*domain.Session) error { return nil })
}

func (s *votingService) SelectCategory(ctx context.Context, sessionID uuid.UUID, index int) (domain.Progress, error) {
	return s.apply(ctx, sessionID, func(session *domain.Session) error {
		session.Flow.SelectCategory(index)
		return nil
	})
}

func (s *votingService) Advance(ctx context.Context, sessionID uuid.UUID) (domain.Progress, error) {
	return s.apply(ctx, sessionID, func(session *domain.Session) error {
		session.Flow.Advance()
		return nil
	})
}

func (s *votingService) Retreat(ctx context.Context, sessionID uuid.UUID) (domain.Progress, error) {
	return s.apply(ctx, sessionID, func(session *domain.Session) error {
		session.Flow.Retreat()
		return nil
	})
}

func (s *votingService) SetFilter(ctx context.Context, input ports.FilterInput) (domain.Progress, error) {
	return s.apply(ctx, input.SessionID, func(session *domain.Session) error {
		session.Flow.SetFilter(input.Search, input.Region)
		return nil
	})
}

func (s *votingService) FilteredCandidates(ctx context.Context, sessionID uuid.UUID) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	err := s.store.Update(ctx, sessionID, func(session *domain.Session) error {
		candidates = session.Flow.FilteredCandidates()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

func (s *votingService) Vote(ctx context.Context, input ports.VoteInput) (domain.Progress, error) {
	return s.apply(ctx, input.SessionID, func(session *domain.Session) error {
		category := session.Flow.Current()
		if err := session.Flow.CastVote(session.Authenticated, input.CandidateID); err != nil {
			s.metrics.VoteRejected(rejectReason(err))
			return err
		}
		s.metrics.VoteCast(category.ID)
		return nil
	})
}

func (s *votingService) apply(ctx context.Context, sessionID uuid.UUID, fn func(*domain.Session) error) (domain.Progress, error) {
	var progress domain.Progress
	err := s.store.Update(ctx, sessionID, func(session *domain.Session) error {
		if err := fn(session); err != nil {
			return err
		}
		progress = session.Progress()
		return nil
	})
	return progress, err
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrAuthenticationRequired):
		return "unauthenticated"
	case errors.Is(err, domain.ErrInvalidCandidate):
		return "invalid_candidate"
	default:
		return "other"
	}
}
