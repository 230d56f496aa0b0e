package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

const namespace = "awards"

type Recorder struct {
	gatherer prometheus.Gatherer

	sessionsStarted   prometheus.Counter
	votesCast         *prometheus.CounterVec
	votesRejected     *prometheus.CounterVec
	donations         prometheus.Counter
	donationAmount    prometheus.Counter
	donationsRejected prometheus.Counter
}

var _ ports.MetricsRecorder = (*Recorder)(nil)

// NewRecorder registers the service counters on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		gatherer: reg,
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Voting sessions started.",
		}),
		votesCast: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_cast_total",
			Help:      "Votes recorded, by category.",
		}, []string{"category"}),
		votesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_rejected_total",
			Help:      "Vote attempts rejected, by reason.",
		}, []string{"reason"}),
		donations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "donations_total",
			Help:      "Donations recorded.",
		}),
		donationAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "donation_amount_total",
			Help:      "Sum of donated amounts.",
		}),
		donationsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "donations_rejected_total",
			Help:      "Donation attempts with an invalid amount.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		r.sessionsStarted,
		r.votesCast,
		r.votesRejected,
		r.donations,
		r.donationAmount,
		r.donationsRejected,
	)
	return r
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}

func (r *Recorder) SessionStarted() {
	r.sessionsStarted.Inc()
}

func (r *Recorder) VoteCast(categoryID string) {
	r.votesCast.WithLabelValues(categoryID).Inc()
}

func (r *Recorder) VoteRejected(reason string) {
	r.votesRejected.WithLabelValues(reason).Inc()
}

func (r *Recorder) DonationRecorded(amount float64) {
	r.donations.Inc()
	r.donationAmount.Add(amount)
}

func (r *Recorder) DonationRejected() {
	r.donationsRejected.Inc()
}
