package domain

// AllRegions is the wildcard region filter.
const AllRegions = "all"

type Candidate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	Region      string `json:"region"`
	Website     string `json:"website,omitempty"`
}

// ScopedCandidates returns the candidates eligible in the category, keeping
// directory order.
func ScopedCandidates(category Category, candidates []Candidate) []Candidate {
	scoped := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if category.Scopes(c) {
			scoped = append(scoped, c)
		}
	}
	return scoped
}

// Regions lists the distinct candidate regions in first-seen order.
func Regions(candidates []Candidate) []string {
	seen := make(map[string]struct{}, len(candidates))
	regions := make([]string, 0)
	for _, c := range candidates {
		if _, ok := seen[c.Region]; ok {
			continue
		}
		seen[c.Region] = struct{}{}
		regions = append(regions, c.Region)
	}
	return regions
}
