package domain

// VoteCount is one aggregated (category, candidate) tally.
type VoteCount struct {
	CategoryID  string `json:"category_id"`
	CandidateID string `json:"candidate_id"`
	Votes       int64  `json:"votes"`
}

// Aggregates are the figures the admin dashboard displays.
type Aggregates struct {
	Counts       []VoteCount
	UniqueVoters int64
	PrizePool    float64
}

type DistributionEntry struct {
	CandidateID   string  `json:"candidate_id"`
	CandidateName string  `json:"candidate_name"`
	Votes         int64   `json:"votes"`
	Percentage    float64 `json:"percentage"`
}

type AdminSettings struct {
	VotingLocked  bool `json:"voting_locked"`
	ResultsPublic bool `json:"results_public"`
}

type Dashboard struct {
	TotalVotes   int64               `json:"total_votes"`
	UniqueVoters int64               `json:"unique_voters"`
	PrizePool    float64             `json:"prize_pool"`
	Categories   int                 `json:"categories"`
	Candidates   int                 `json:"candidates"`
	Settings     AdminSettings       `json:"settings"`
	CategoryID   string              `json:"distribution_category_id,omitempty"`
	Distribution []DistributionEntry `json:"distribution"`
}

type ResultRow struct {
	CategoryID    string
	CategoryName  string
	CandidateID   string
	CandidateName string
	Votes         int64
}

func TotalVotes(counts []VoteCount) int64 {
	var total int64
	for _, c := range counts {
		total += c.Votes
	}
	return total
}

// Distribution returns the tallies of one category, each as a percentage of
// the category's leading tally. Unknown candidate ids keep their id as name.
func Distribution(counts []VoteCount, categoryID string, candidates []Candidate) []DistributionEntry {
	names := make(map[string]string, len(candidates))
	for _, c := range candidates {
		names[c.ID] = c.Name
	}

	var max int64
	for _, c := range counts {
		if c.CategoryID == categoryID && c.Votes > max {
			max = c.Votes
		}
	}

	entries := make([]DistributionEntry, 0)
	for _, c := range counts {
		if c.CategoryID != categoryID {
			continue
		}
		name, ok := names[c.CandidateID]
		if !ok {
			name = c.CandidateID
		}
		percentage := 0.0
		if max > 0 {
			percentage = float64(c.Votes) / float64(max) * 100
		}
		entries = append(entries, DistributionEntry{
			CandidateID:   c.CandidateID,
			CandidateName: name,
			Votes:         c.Votes,
			Percentage:    percentage,
		})
	}
	return entries
}

// MainCategory returns the first category flagged as main, falling back to
// the head of the sequence.
func MainCategory(categories []Category) (Category, bool) {
	for _, c := range categories {
		if c.IsMain {
			return c, true
		}
	}
	if len(categories) > 0 {
		return categories[0], true
	}
	return Category{}, false
}
