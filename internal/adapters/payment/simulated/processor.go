// Package simulated stands in for a payment backend. It accepts every
// donation after a fixed pause.
package simulated

import (
	"context"
	"log/slog"
	"time"

	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type Processor struct {
	delay time.Duration
}

func NewProcessor(delay time.Duration) ports.DonationProcessor {
	return &Processor{delay: delay}
}

func (p *Processor) Process(ctx context.Context, donation domain.Donation) error {
	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	slog.DebugContext(ctx, "donation processed", "amount", donation.Amount, "has_message", donation.Message != "")
	return nil
}
