package domain

// BasePrizePool is the organizer-funded pool before any donation.
const BasePrizePool = 20.0

// placeThresholds holds the donation total each place unlocks at.
var placeThresholds = []float64{0, 30, 60}

type PrizeTier struct {
	Place     int     `json:"place"`
	Threshold float64 `json:"threshold"`
	Unlocked  bool    `json:"unlocked"`
}

type PrizePool struct {
	Base      float64     `json:"base"`
	Donated   float64     `json:"donated"`
	Total     float64     `json:"total"`
	Donations int         `json:"donations"`
	Tiers     []PrizeTier `json:"tiers"`
	Places    int         `json:"unlocked_places"`
	Recent    []Donation  `json:"recent"`
	Presets   []float64   `json:"presets"`
}

func PrizeTiers(donated float64) []PrizeTier {
	tiers := make([]PrizeTier, len(placeThresholds))
	for i, threshold := range placeThresholds {
		tiers[i] = PrizeTier{
			Place:     i + 1,
			Threshold: threshold,
			Unlocked:  donated >= threshold,
		}
	}
	return tiers
}

// UnlockedPlaces counts how many places pay out at the given donation total.
func UnlockedPlaces(donated float64) int {
	n := 0
	for _, threshold := range placeThresholds {
		if donated >= threshold {
			n++
		}
	}
	return n
}

func NewPrizePool(t *DonationTracker) PrizePool {
	donated := t.Total()
	presets := make([]float64, len(PresetAmounts))
	copy(presets, PresetAmounts)
	return PrizePool{
		Base:      BasePrizePool,
		Donated:   donated,
		Total:     BasePrizePool + donated,
		Donations: t.Count(),
		Tiers:     PrizeTiers(donated),
		Places:    UnlockedPlaces(donated),
		Recent:    t.Recent(),
		Presets:   presets,
	}
}
