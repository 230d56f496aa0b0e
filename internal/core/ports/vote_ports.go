package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/awards/internal/core/domain"
)

type VoteInput struct {
	SessionID   uuid.UUID
	CandidateID string
}

type FilterInput struct {
	SessionID uuid.UUID
	Search    string
	Region    string
}

type VotingService interface {
	Progress(ctx context.Context, sessionID uuid.UUID) (domain.Progress, error)
	SelectCategory(ctx context.Context, sessionID uuid.UUID, index int) (domain.Progress, error)
	Advance(ctx context.Context, sessionID uuid.UUID) (domain.Progress, error)
	Retreat(ctx context.Context, sessionID uuid.UUID) (domain.Progress, error)
	SetFilter(ctx context.Context, input FilterInput) (domain.Progress, error)
	FilteredCandidates(ctx context.Context, sessionID uuid.UUID) ([]domain.Candidate, error)
	Vote(ctx context.Context, input VoteInput) (domain.Progress, error)
}
