package simulated

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vncsmyrnk/awards/internal/core/domain"
)

func TestProcessWaitsForDelay(t *testing.T) {
	p := NewProcessor(20 * time.Millisecond)

	start := time.Now()
	err := p.Process(context.Background(), domain.Donation{Amount: 5})

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestProcessHonorsCancellation(t *testing.T) {
	p := NewProcessor(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Process(ctx, domain.Donation{Amount: 5})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessWithoutDelay(t *testing.T) {
	assert.NoError(t, NewProcessor(0).Process(context.Background(), domain.Donation{Amount: 1}))
}
