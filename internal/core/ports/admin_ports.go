package ports

import (
	"context"

	"github.com/vncsmyrnk/awards/internal/core/domain"
)

type DashboardRepository interface {
	Aggregates(ctx context.Context) (*domain.Aggregates, error)
}

type AdminService interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	ToggleVotingLock(ctx context.Context) (domain.AdminSettings, error)
	ToggleResultsPublic(ctx context.Context) (domain.AdminSettings, error)
	Export(ctx context.Context) ([]domain.ResultRow, error)
}
