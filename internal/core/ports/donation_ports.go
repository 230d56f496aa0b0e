package ports

import (
	"context"

	"github.com/vncsmyrnk/awards/internal/core/domain"
)

// DonationProcessor settles a donation with a payment backend.
type DonationProcessor interface {
	Process(ctx context.Context, donation domain.Donation) error
}

type DonationInput struct {
	Amount  float64
	Message string
}

type DonationService interface {
	Donate(ctx context.Context, input DonationInput) (*domain.Donation, error)
	Pool(ctx context.Context) (domain.PrizePool, error)
}
