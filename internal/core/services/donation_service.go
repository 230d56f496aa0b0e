package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type donationService struct {
	processor ports.DonationProcessor
	metrics   ports.MetricsRecorder
	now       func() time.Time

	mu      sync.Mutex
	tracker *domain.DonationTracker
}

func NewDonationService(processor ports.DonationProcessor, metrics ports.MetricsRecorder, historySize int) ports.DonationService {
	return &donationService{
		processor: processor,
		metrics:   metrics,
		now:       time.Now,
		tracker:   domain.NewDonationTracker(historySize),
	}
}

func (s *donationService) Donate(ctx context.Context, input ports.DonationInput) (*domain.Donation, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		s.metrics.DonationRejected()
		return nil, err
	}

	donation := domain.Donation{
		Amount:    input.Amount,
		Message:   strings.TrimSpace(input.Message),
		CreatedAt: s.now(),
	}

	if err := s.processor.Process(ctx, donation); err != nil {
		return nil, fmt.Errorf("failed to process donation: %w", err)
	}

	s.mu.Lock()
	err := s.tracker.Record(donation)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.metrics.DonationRecorded(donation.Amount)
	return &donation, nil
}

func (s *donationService) Pool(ctx context.Context) (domain.PrizePool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.NewPrizePool(s.tracker), nil
}
