package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounters(t *testing.T) {
	r := NewRecorder()

	r.SessionStarted()
	r.SessionStarted()
	r.VoteCast("best-emea")
	r.VoteRejected("unauthenticated")
	r.DonationRecorded(12.5)
	r.DonationRecorded(7.5)
	r.DonationRejected()

	assert.Equal(t, 2.0, testutil.ToFloat64(r.sessionsStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.votesCast.WithLabelValues("best-emea")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.votesRejected.WithLabelValues("unauthenticated")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.donations))
	assert.Equal(t, 20.0, testutil.ToFloat64(r.donationAmount))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.donationsRejected))
}

func TestRecorderHandler(t *testing.T) {
	r := NewRecorder()
	r.VoteCast("best-na")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `awards_votes_cast_total{category="best-na"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestRecordersAreIndependent(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()
	a.SessionStarted()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.sessionsStarted))
	assert.Zero(t, testutil.ToFloat64(b.sessionsStarted))
}
