package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/awards/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/awards/internal/adapters/token"
	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type countingMetrics struct {
	mu                sync.Mutex
	sessions          int
	votes             map[string]int
	rejected          map[string]int
	donations         int
	donated           float64
	donationsRejected int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{
		votes:    make(map[string]int),
		rejected: make(map[string]int),
	}
}

func (m *countingMetrics) SessionStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions++
}

func (m *countingMetrics) VoteCast(categoryID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.votes[categoryID]++
}

func (m *countingMetrics) VoteRejected(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected[reason]++
}

func (m *countingMetrics) DonationRecorded(amount float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.donations++
	m.donated += amount
}

func (m *countingMetrics) DonationRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.donationsRejected++
}

type testApp struct {
	store    *memory.SessionStore
	metrics  *countingMetrics
	catalog  ports.CatalogService
	sessions *sessionService
	voting   ports.VotingService
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	store := memory.NewSessionStore()
	metrics := newCountingMetrics()
	catalog := NewCatalogService(memory.NewCatalogRepository())
	sessions := NewSessionService(catalog, store, token.NewManager("test-secret", time.Hour), metrics, 30*time.Minute).(*sessionService)

	return &testApp{
		store:    store,
		metrics:  metrics,
		catalog:  catalog,
		sessions: sessions,
		voting:   NewVotingService(store, metrics),
	}
}

func (a *testApp) start(t *testing.T) *ports.StartedSession {
	t.Helper()
	started, err := a.sessions.Start(context.Background())
	require.NoError(t, err)
	return started
}

type failingCatalog struct{ err error }

func (r failingCatalog) Categories(ctx context.Context) ([]domain.Category, error) {
	return nil, r.err
}

func (r failingCatalog) Candidates(ctx context.Context) ([]domain.Candidate, error) {
	return nil, r.err
}
