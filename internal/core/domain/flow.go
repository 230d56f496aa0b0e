package domain

// VotingFlow is the per-voter state machine: a cursor over the category
// sequence, the active search/region filter and the vote ledger.
// It is not safe for concurrent use.
type VotingFlow struct {
	categories []Category
	candidates []Candidate
	cursor     int
	search     string
	region     string
	ledger     Ledger
}

type Progress struct {
	Index         int               `json:"index"`
	Category      Category          `json:"category"`
	Selected      string            `json:"selected,omitempty"`
	Total         int               `json:"total"`
	Search        string            `json:"search"`
	Region        string            `json:"region"`
	Votes         map[string]string `json:"votes"`
	Completed     []string          `json:"completed"`
	Remaining     int               `json:"remaining"`
	Complete      bool              `json:"complete"`
	Authenticated bool              `json:"authenticated"`
}

func NewVotingFlow(categories []Category, candidates []Candidate) (*VotingFlow, error) {
	if len(categories) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &VotingFlow{
		categories: categories,
		candidates: candidates,
		region:     AllRegions,
		ledger:     make(Ledger),
	}, nil
}

func (f *VotingFlow) Current() Category {
	return f.categories[f.cursor]
}

func (f *VotingFlow) Cursor() int {
	return f.cursor
}

// SelectCategory jumps to index. Out-of-range indices leave the flow
// untouched and report false. The filter is kept.
func (f *VotingFlow) SelectCategory(index int) bool {
	if index < 0 || index >= len(f.categories) {
		return false
	}
	f.cursor = index
	return true
}

// Advance moves to the next category and clears the filter. At the last
// category it does nothing.
func (f *VotingFlow) Advance() bool {
	if f.cursor >= len(f.categories)-1 {
		return false
	}
	f.cursor++
	f.resetFilter()
	return true
}

// Retreat moves to the previous category and clears the filter. At the first
// category it does nothing.
func (f *VotingFlow) Retreat() bool {
	if f.cursor == 0 {
		return false
	}
	f.cursor--
	f.resetFilter()
	return true
}

func (f *VotingFlow) SetFilter(search, region string) {
	if region == "" {
		region = AllRegions
	}
	f.search = search
	f.region = region
}

func (f *VotingFlow) resetFilter() {
	f.search = ""
	f.region = AllRegions
}

// ScopedCandidates lists every candidate eligible in the active category.
func (f *VotingFlow) ScopedCandidates() []Candidate {
	return ScopedCandidates(f.Current(), f.candidates)
}

// FilteredCandidates applies the active search and region filter to the
// active category's candidates.
func (f *VotingFlow) FilteredCandidates() []Candidate {
	return FilterCandidates(f.ScopedCandidates(), f.search, f.region)
}

// CastVote records candidateID as the choice for the active category,
// replacing any earlier choice. Unauthenticated voters and candidates outside
// the category's scope are rejected without touching the ledger.
func (f *VotingFlow) CastVote(authenticated bool, candidateID string) error {
	if !authenticated {
		return ErrAuthenticationRequired
	}

	category := f.Current()
	valid := false
	for _, c := range f.candidates {
		if c.ID == candidateID && category.Scopes(c) {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidCandidate
	}

	f.ledger.Record(category.ID, candidateID)
	return nil
}

func (f *VotingFlow) Votes() Ledger {
	return f.ledger.Clone()
}

// Complete reports whether every category has a vote.
func (f *VotingFlow) Complete() bool {
	return len(f.ledger) == len(f.categories)
}

// Completed lists the voted category ids in sequence order.
func (f *VotingFlow) Completed() []string {
	done := make([]string, 0, len(f.ledger))
	for _, c := range f.categories {
		if _, ok := f.ledger[c.ID]; ok {
			done = append(done, c.ID)
		}
	}
	return done
}

func (f *VotingFlow) Progress() Progress {
	completed := f.Completed()
	selected, _ := f.ledger.Choice(f.Current().ID)
	return Progress{
		Index:     f.cursor,
		Category:  f.Current(),
		Selected:  selected,
		Total:     len(f.categories),
		Search:    f.search,
		Region:    f.region,
		Votes:     f.Votes(),
		Completed: completed,
		Remaining: len(f.categories) - len(completed),
		Complete:  f.Complete(),
	}
}
