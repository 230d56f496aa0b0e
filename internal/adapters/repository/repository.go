// Package repository selects the catalog and dashboard stores named by the
// configuration.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"github.com/vncsmyrnk/awards/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/awards/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/awards/internal/adapters/repository/sqlite"
	"github.com/vncsmyrnk/awards/internal/config"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type Stores struct {
	Catalog   ports.CatalogRepository
	Dashboard ports.DashboardRepository
	close     func() error
}

func (s *Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

func Open(ctx context.Context, cfg config.Config) (*Stores, error) {
	switch cfg.CatalogDriver {
	case config.CatalogPostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to reach postgres: %w", err)
		}
		return &Stores{
			Catalog:   postgres.NewCatalogRepository(db),
			Dashboard: postgres.NewDashboardRepository(db),
			close:     db.Close,
		}, nil

	case config.CatalogSQLite:
		store, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		seeded, err := store.Seed(ctx, memory.NewCatalogRepository(), memory.NewDashboardRepository())
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to seed sqlite catalog: %w", err)
		}
		if seeded {
			slog.InfoContext(ctx, "seeded sqlite catalog", "path", cfg.SQLitePath)
		}
		return &Stores{
			Catalog:   store,
			Dashboard: store,
			close:     store.Close,
		}, nil

	default:
		return &Stores{
			Catalog:   memory.NewCatalogRepository(),
			Dashboard: memory.NewDashboardRepository(),
		}, nil
	}
}
