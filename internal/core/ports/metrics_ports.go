package ports

type MetricsRecorder interface {
	SessionStarted()
	VoteCast(categoryID string)
	VoteRejected(reason string)
	DonationRecorded(amount float64)
	DonationRejected()
}
