package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// FilterCandidates keeps the candidates whose name or description contains
// search as typed, ignoring case, and whose region equals region. An empty
// search matches everything; an empty or "all" region matches every region.
func FilterCandidates(candidates []Candidate, search, region string) []Candidate {
	fold := cases.Fold()
	term := fold.String(search)

	filtered := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if !matchesRegion(c, region) {
			continue
		}
		if term != "" &&
			!strings.Contains(fold.String(c.Name), term) &&
			!strings.Contains(fold.String(c.Description), term) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

func matchesRegion(c Candidate, region string) bool {
	return region == "" || region == AllRegions || c.Region == region
}
