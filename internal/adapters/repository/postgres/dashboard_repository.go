package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type dashboardRepository struct {
	db *sql.DB
}

func NewDashboardRepository(db *sql.DB) ports.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

func (r *dashboardRepository) Aggregates(ctx context.Context) (*domain.Aggregates, error) {
	query := `
		SELECT vc.category_id, vc.candidate_id, vc.votes
		FROM vote_counts vc
		JOIN categories cat ON cat.id = vc.category_id
		JOIN candidates cand ON cand.id = vc.candidate_id
		ORDER BY cat.position, cand.position
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vote counts: %w", err)
	}
	defer rows.Close()

	aggregates := &domain.Aggregates{}
	for rows.Next() {
		var c domain.VoteCount
		if err := rows.Scan(&c.CategoryID, &c.CandidateID, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		aggregates.Counts = append(aggregates.Counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vote counts: %w", err)
	}

	querySummary := `SELECT unique_voters, prize_pool FROM dashboard_summary WHERE id = 1`
	err = r.db.QueryRowContext(ctx, querySummary).Scan(&aggregates.UniqueVoters, &aggregates.PrizePool)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to fetch dashboard summary: %w", err)
	}

	return aggregates, nil
}
