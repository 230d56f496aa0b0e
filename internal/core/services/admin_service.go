package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type adminService struct {
	catalog ports.CatalogService
	repo    ports.DashboardRepository

	mu       sync.Mutex
	settings domain.AdminSettings
}

func NewAdminService(catalog ports.CatalogService, repo ports.DashboardRepository) ports.AdminService {
	return &adminService{
		catalog: catalog,
		repo:    repo,
	}
}

func (s *adminService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	aggregates, err := s.repo.Aggregates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch aggregates: %w", err)
	}
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := s.catalog.Candidates(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := &domain.Dashboard{
		TotalVotes:   domain.TotalVotes(aggregates.Counts),
		UniqueVoters: aggregates.UniqueVoters,
		PrizePool:    aggregates.PrizePool,
		Categories:   len(categories),
		Candidates:   len(candidates),
		Settings:     s.currentSettings(),
		Distribution: []domain.DistributionEntry{},
	}

	if main, ok := domain.MainCategory(categories); ok {
		dashboard.CategoryID = main.ID
		dashboard.Distribution = domain.Distribution(aggregates.Counts, main.ID, candidates)
	}

	return dashboard, nil
}

func (s *adminService) ToggleVotingLock(ctx context.Context) (domain.AdminSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.VotingLocked = !s.settings.VotingLocked
	return s.settings, nil
}

func (s *adminService) ToggleResultsPublic(ctx context.Context) (domain.AdminSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.ResultsPublic = !s.settings.ResultsPublic
	return s.settings, nil
}

// Export lists every tally ordered by category sequence, then by votes
// descending.
func (s *adminService) Export(ctx context.Context) ([]domain.ResultRow, error) {
	aggregates, err := s.repo.Aggregates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch aggregates: %w", err)
	}
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := s.catalog.Candidates(ctx)
	if err != nil {
		return nil, err
	}

	candidateNames := make(map[string]string, len(candidates))
	for _, c := range candidates {
		candidateNames[c.ID] = c.Name
	}

	rows := make([]domain.ResultRow, 0, len(aggregates.Counts))
	for _, count := range aggregates.Counts {
		row := domain.ResultRow{
			CategoryID:    count.CategoryID,
			CategoryName:  count.CategoryID,
			CandidateID:   count.CandidateID,
			CandidateName: count.CandidateID,
			Votes:         count.Votes,
		}
		if idx := domain.CategoryIndex(categories, count.CategoryID); idx >= 0 {
			row.CategoryName = categories[idx].Name
		}
		if name, ok := candidateNames[count.CandidateID]; ok {
			row.CandidateName = name
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		ci := domain.CategoryIndex(categories, rows[i].CategoryID)
		cj := domain.CategoryIndex(categories, rows[j].CategoryID)
		if ci != cj {
			return ci < cj
		}
		return rows[i].Votes > rows[j].Votes
	})

	return rows, nil
}

func (s *adminService) currentSettings() domain.AdminSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}
