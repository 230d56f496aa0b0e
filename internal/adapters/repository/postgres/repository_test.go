package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/vncsmyrnk/awards/internal/adapters/repository/postgres"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("awards"),
		tcpostgres.WithUsername("user"),
		tcpostgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, postgres.ApplyMigrations(db, "migrations"))
	return db
}

func TestPostgresRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	db := setupDB(t)

	catalog := postgres.NewCatalogRepository(db)

	categories, err := catalog.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, "best-organizer-2025", categories[0].ID)
	assert.True(t, categories[0].IsMain)
	assert.Empty(t, categories[0].Region)
	assert.Equal(t, "best-mena", categories[5].ID)
	assert.Equal(t, "MENA", categories[5].Region)

	candidates, err := catalog.Candidates(ctx)
	require.NoError(t, err)
	assert.Len(t, candidates, 12)

	aggregates, err := postgres.NewDashboardRepository(db).Aggregates(ctx)
	require.NoError(t, err)
	assert.Len(t, aggregates.Counts, 7)
	assert.Equal(t, int64(847), aggregates.UniqueVoters)
	assert.Equal(t, 45.0, aggregates.PrizePool)
}

func TestApplyMigrationsIsRepeatable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := setupDB(t)
	require.NoError(t, postgres.ApplyMigrations(db, "migrations"))

	categories, err := postgres.NewCatalogRepository(db).Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 6)
}

func TestApplyMigrationsMissingDir(t *testing.T) {
	err := postgres.ApplyMigrations(nil, "does-not-exist")
	assert.ErrorContains(t, err, "failed to read migrations directory")
}
