// Package sqlite provides a SQLite-backed, read-mostly catalog and dashboard
// store. Votes and donations are never written here.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

var (
	_ ports.CatalogRepository   = (*Store)(nil)
	_ ports.DashboardRepository = (*Store)(nil)
)

type Store struct {
	db *sql.DB
}

// New opens the database at dbPath, creating parent directories and the
// schema when missing.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Seed copies catalog and aggregates from the given sources when the
// categories table is empty. It reports whether anything was written.
func (s *Store) Seed(ctx context.Context, catalog ports.CatalogRepository, dashboard ports.DashboardRepository) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to count categories: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	categories, err := catalog.Categories(ctx)
	if err != nil {
		return false, err
	}
	candidates, err := catalog.Candidates(ctx)
	if err != nil {
		return false, err
	}
	aggregates, err := dashboard.Aggregates(ctx)
	if err != nil {
		return false, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i, c := range categories {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO categories (id, position, name, short_name, description, region, is_main)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, c.ID, i+1, c.Name, c.ShortName, c.Description, c.Region, c.IsMain)
		if err != nil {
			return false, fmt.Errorf("failed to insert category %s: %w", c.ID, err)
		}
	}

	for i, c := range candidates {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO candidates (id, position, name, image_url, description, region, website)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, c.ID, i+1, c.Name, c.ImageURL, c.Description, c.Region, c.Website)
		if err != nil {
			return false, fmt.Errorf("failed to insert candidate %s: %w", c.ID, err)
		}
	}

	for _, vc := range aggregates.Counts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO vote_counts (category_id, candidate_id, votes) VALUES (?, ?, ?)
		`, vc.CategoryID, vc.CandidateID, vc.Votes)
		if err != nil {
			return false, fmt.Errorf("failed to insert vote count: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO dashboard_summary (id, unique_voters, prize_pool) VALUES (1, ?, ?)
	`, aggregates.UniqueVoters, aggregates.PrizePool)
	if err != nil {
		return false, fmt.Errorf("failed to insert dashboard summary: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return true, nil
}

func (s *Store) Categories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, short_name, description, region, is_main
		FROM categories
		ORDER BY position
	`)
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
	return categories, rows.Err()
}

func (s *Store) Candidates(ctx context.Context) ([]domain.Candidate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, image_url, description, region, website
		FROM candidates
		ORDER BY position
	`)
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
	return candidates, rows.Err()
}

func (s *Store) Aggregates(ctx context.Context) (*domain.Aggregates, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT vc.category_id, vc.candidate_id, vc.votes
		FROM vote_counts vc
		JOIN categories cat ON cat.id = vc.category_id
		JOIN candidates cand ON cand.id = vc.candidate_id
		ORDER BY cat.position, cand.position
	`)
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

	err = s.db.QueryRowContext(ctx, `SELECT unique_voters, prize_pool FROM dashboard_summary WHERE id = 1`).
		Scan(&aggregates.UniqueVoters, &aggregates.PrizePool)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to fetch dashboard summary: %w", err)
	}
	return aggregates, nil
}
