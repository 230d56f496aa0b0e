package services

import (
	"context"
	"fmt"

	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type catalogService struct {
	repo ports.CatalogRepository
}

func NewCatalogService(repo ports.CatalogRepository) ports.CatalogService {
	return &catalogService{
		repo: repo,
	}
}

func (s *catalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (s *catalogService) Candidates(ctx context.Context) ([]domain.Candidate, error) {
	candidates, err := s.repo.Candidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates: %w", err)
	}
	return candidates, nil
}

func (s *catalogService) Regions(ctx context.Context) ([]string, error) {
	candidates, err := s.Candidates(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Regions(candidates), nil
}

func (s *catalogService) CandidatesForCategory(ctx context.Context, categoryID string) ([]domain.Candidate, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}

	idx := domain.CategoryIndex(categories, categoryID)
	if idx < 0 {
		return nil, domain.ErrCategoryNotFound
	}

	candidates, err := s.Candidates(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ScopedCandidates(categories[idx], candidates), nil
}
