package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository reads the seeded catalog tables. It never writes.
func NewCatalogRepository(db *sql.DB) ports.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

func (r *catalogRepository) Categories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, short_name, description, region, is_main
		FROM categories
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ShortName, &c.Description, &c.Region, &c.IsMain); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

func (r *catalogRepository) Candidates(ctx context.Context) ([]domain.Candidate, error) {
	query := `
		SELECT id, name, image_url, description, region, website
		FROM candidates
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.ImageURL, &c.Description, &c.Region, &c.Website); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candidates: %w", err)
	}
	return candidates, nil
}
