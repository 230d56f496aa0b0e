package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/awards/internal/adapters/repository/memory"
)

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	svc := NewAdminService(NewCatalogService(memory.NewCatalogRepository()), memory.NewDashboardRepository())

	dashboard, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1337), dashboard.TotalVotes)
	assert.Equal(t, int64(847), dashboard.UniqueVoters)
	assert.Equal(t, 45.0, dashboard.PrizePool)
	assert.Equal(t, 6, dashboard.Categories)
	assert.Equal(t, 12, dashboard.Candidates)
	assert.Equal(t, "best-organizer-2025", dashboard.CategoryID)

	require.Len(t, dashboard.Distribution, 4)
	for _, entry := range dashboard.Distribution {
		if entry.CandidateID == "riot" {
			assert.InDelta(t, 100.0, entry.Percentage, 0.001)
		}
		if entry.CandidateID == "pgl" {
			assert.InDelta(t, 50.0, entry.Percentage, 0.001)
		}
	}
}

func TestToggleSettings(t *testing.T) {
	ctx := context.Background()
	svc := NewAdminService(NewCatalogService(memory.NewCatalogRepository()), memory.NewDashboardRepository())

	settings, err := svc.ToggleVotingLock(ctx)
	require.NoError(t, err)
	assert.True(t, settings.VotingLocked)
	assert.False(t, settings.ResultsPublic)

	settings, err = svc.ToggleResultsPublic(ctx)
	require.NoError(t, err)
	assert.True(t, settings.VotingLocked)
	assert.True(t, settings.ResultsPublic)

	settings, err = svc.ToggleVotingLock(ctx)
	require.NoError(t, err)
	assert.False(t, settings.VotingLocked)

	dashboard, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, dashboard.Settings)
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	svc := NewAdminService(NewCatalogService(memory.NewCatalogRepository()), memory.NewDashboardRepository())

	rows, err := svc.Export(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 7)

	assert.Equal(t, "best-organizer-2025", rows[0].CategoryID)
	assert.Equal(t, "Riot Games", rows[0].CandidateName)
	assert.Equal(t, int64(312), rows[0].Votes)
	assert.Equal(t, "Best Organizer of 2025", rows[0].CategoryName)

	assert.Equal(t, "best-emea", rows[4].CategoryID)
	assert.Equal(t, "blast", rows[4].CandidateID)
	assert.Equal(t, int64(123), rows[6].Votes)
}
