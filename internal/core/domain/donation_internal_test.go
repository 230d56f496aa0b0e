package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordRejectsTotalOverflow(t *testing.T) {
	tracker := NewDonationTracker(3)
	tracker.total = math.MaxFloat64
	tracker.count = 1

	err := tracker.Record(Donation{Amount: MaxDonationAmount, Message: "one more"})

	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, math.MaxFloat64, tracker.Total())
	assert.Equal(t, 1, tracker.Count())
	assert.Empty(t, tracker.Recent())
}
