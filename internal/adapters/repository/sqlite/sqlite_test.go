package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/awards/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/awards/internal/adapters/repository/sqlite"
)

func TestSeedAndRead(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "awards.db")

	store, err := sqlite.New(path)
	require.NoError(t, err)
	defer store.Close()

	seeded, err := store.Seed(ctx, memory.NewCatalogRepository(), memory.NewDashboardRepository())
	require.NoError(t, err)
	assert.True(t, seeded)

	want, err := memory.NewCatalogRepository().Categories(ctx)
	require.NoError(t, err)
	categories, err := store.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, categories)

	wantCandidates, err := memory.NewCatalogRepository().Candidates(ctx)
	require.NoError(t, err)
	candidates, err := store.Candidates(ctx)
	require.NoError(t, err)
	assert.Equal(t, wantCandidates, candidates)

	aggregates, err := store.Aggregates(ctx)
	require.NoError(t, err)
	assert.Len(t, aggregates.Counts, 7)
	assert.Equal(t, int64(847), aggregates.UniqueVoters)
	assert.Equal(t, 45.0, aggregates.PrizePool)
}

func TestSeedOnlyOnce(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "awards.db")

	store, err := sqlite.New(path)
	require.NoError(t, err)

	seeded, err := store.Seed(ctx, memory.NewCatalogRepository(), memory.NewDashboardRepository())
	require.NoError(t, err)
	require.True(t, seeded)
	require.NoError(t, store.Close())

	reopened, err := sqlite.New(path)
	require.NoError(t, err)
	defer reopened.Close()

	seeded, err = reopened.Seed(ctx, memory.NewCatalogRepository(), memory.NewDashboardRepository())
	require.NoError(t, err)
	assert.False(t, seeded)

	categories, err := reopened.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 6)
}

func TestEmptyStore(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer store.Close()

	categories, err := store.Categories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	aggregates, err := store.Aggregates(ctx)
	require.NoError(t, err)
	assert.Empty(t, aggregates.Counts)
	assert.Zero(t, aggregates.UniqueVoters)
}
