package memory

import (
	"context"

	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

var mockCounts = []domain.VoteCount{
	{CategoryID: "best-organizer-2025", CandidateID: "esl", Votes: 245},
	{CategoryID: "best-organizer-2025", CandidateID: "blast", Votes: 189},
	{CategoryID: "best-organizer-2025", CandidateID: "pgl", Votes: 156},
	{CategoryID: "best-organizer-2025", CandidateID: "riot", Votes: 312},
	{CategoryID: "best-emea", CandidateID: "esl", Votes: 145},
	{CategoryID: "best-emea", CandidateID: "blast", Votes: 167},
	{CategoryID: "best-emea", CandidateID: "pgl", Votes: 123},
}

const (
	mockUniqueVoters = 847
	mockPrizePool    = 45
)

type dashboardRepository struct{}

func NewDashboardRepository() ports.DashboardRepository {
	return &dashboardRepository{}
}

func (r *dashboardRepository) Aggregates(ctx context.Context) (*domain.Aggregates, error) {
	counts := make([]domain.VoteCount, len(mockCounts))
	copy(counts, mockCounts)
	return &domain.Aggregates{
		Counts:       counts,
		UniqueVoters: mockUniqueVoters,
		PrizePool:    mockPrizePool,
	}, nil
}
