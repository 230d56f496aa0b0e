package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/awards/internal/core/domain"
)

func TestDonationTrackerTotalsAndHistory(t *testing.T) {
	tracker := domain.NewDonationTracker(domain.DefaultHistorySize)

	require.NoError(t, tracker.Record(domain.Donation{Amount: 10, Message: "x"}))
	require.NoError(t, tracker.Record(domain.Donation{Amount: 5, Message: ""}))

	assert.Equal(t, 15.0, tracker.Total())
	assert.Equal(t, 2, tracker.Count())

	recent := tracker.Recent()
	require.Len(t, recent, 1)
	assert.Equal(t, 10.0, recent[0].Amount)
	assert.Equal(t, "x", recent[0].Message)
}

func TestDonationTrackerHistoryIsCappedNewestFirst(t *testing.T) {
	tracker := domain.NewDonationTracker(3)

	for i, msg := range []string{"a", "b", "c", "d"} {
		require.NoError(t, tracker.Record(domain.Donation{Amount: float64(i + 1), Message: msg}))
	}

	recent := tracker.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "d", recent[0].Message)
	assert.Equal(t, "c", recent[1].Message)
	assert.Equal(t, "b", recent[2].Message)
	assert.Equal(t, 10.0, tracker.Total())
}

func TestDonationTrackerRejectsInvalidAmounts(t *testing.T) {
	tracker := domain.NewDonationTracker(3)

	for _, amount := range []float64{0, -1, domain.MaxDonationAmount + 0.01, 1.7e308, math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := tracker.Record(domain.Donation{Amount: amount, Message: "nope"})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "amount %v", amount)
	}

	assert.Zero(t, tracker.Total())
	assert.Empty(t, tracker.Recent())
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{raw: "10", want: 10},
		{raw: " 2.5 ", want: 2.5},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "NaN", wantErr: true},
		{raw: "Inf", wantErr: true},
		{raw: "10000", want: domain.MaxDonationAmount},
		{raw: "1.7e308", wantErr: true},
	}

	for _, tt := range tests {
		got, err := domain.ParseAmount(tt.raw)
		if tt.wantErr {
			assert.ErrorIs(t, err, domain.ErrInvalidAmount, "raw %q", tt.raw)
			continue
		}
		require.NoError(t, err, "raw %q", tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestRecentReturnsCopy(t *testing.T) {
	tracker := domain.NewDonationTracker(3)
	require.NoError(t, tracker.Record(domain.Donation{Amount: 1, Message: "hi"}))

	recent := tracker.Recent()
	recent[0].Message = "changed"

	assert.Equal(t, "hi", tracker.Recent()[0].Message)
}

func TestDonationTrackerTotalStaysFinite(t *testing.T) {
	tracker := domain.NewDonationTracker(3)

	for i := 0; i < 100; i++ {
		require.NoError(t, tracker.Record(domain.Donation{Amount: domain.MaxDonationAmount, Message: "max"}))
	}

	assert.False(t, math.IsInf(tracker.Total(), 0))
	assert.Equal(t, 100*domain.MaxDonationAmount, tracker.Total())
}
