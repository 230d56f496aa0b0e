package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DefaultHistorySize caps the recent donation history.
const DefaultHistorySize = 3

// MaxDonationAmount caps a single donation.
const MaxDonationAmount = 10000.0

// PresetAmounts are the suggested donation amounts.
var PresetAmounts = []float64{5, 10, 20, 50}

type Donation struct {
	Amount    float64   `json:"amount"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DonationTracker folds donations into a running total and keeps the most
// recent messages, newest first. It is not safe for concurrent use.
type DonationTracker struct {
	total   float64
	count   int
	history []Donation
	limit   int
}

func NewDonationTracker(limit int) *DonationTracker {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	return &DonationTracker{limit: limit}
}

func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 || amount > MaxDonationAmount {
		return ErrInvalidAmount
	}
	return nil
}

// ParseAmount turns user input into a donation amount.
func ParseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if err := ValidateAmount(amount); err != nil {
		return 0, err
	}
	return amount, nil
}

// Record adds d to the total. Donations carrying a message also enter the
// history; anonymous ones only count toward the total.
func (t *DonationTracker) Record(d Donation) error {
	if err := ValidateAmount(d.Amount); err != nil {
		return err
	}
	total := t.total + d.Amount
	if math.IsInf(total, 0) || total >= math.MaxFloat64 {
		return ErrInvalidAmount
	}

	t.total = total
	t.count++

	if strings.TrimSpace(d.Message) == "" {
		return nil
	}
	t.history = append([]Donation{d}, t.history...)
	if len(t.history) > t.limit {
		t.history = t.history[:t.limit]
	}
	return nil
}

func (t *DonationTracker) Total() float64 {
	return t.total
}

func (t *DonationTracker) Count() int {
	return t.count
}

func (t *DonationTracker) Recent() []Donation {
	out := make([]Donation, len(t.history))
	copy(out, t.history)
	return out
}
