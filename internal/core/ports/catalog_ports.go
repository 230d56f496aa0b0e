package ports

import (
	"context"

	"github.com/vncsmyrnk/awards/internal/core/domain"
)

type CatalogRepository interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Candidates(ctx context.Context) ([]domain.Candidate, error)
}

type CatalogService interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Candidates(ctx context.Context) ([]domain.Candidate, error)
	Regions(ctx context.Context) ([]string, error)
	CandidatesForCategory(ctx context.Context, categoryID string) ([]domain.Candidate, error)
}
