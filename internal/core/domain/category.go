package domain

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	Description string `json:"description"`
	Region      string `json:"region,omitempty"`
	IsMain      bool   `json:"is_main"`
}

// Scopes reports whether the candidate competes in the category. A category
// without a region scope admits every candidate.
func (c Category) Scopes(candidate Candidate) bool {
	return c.Region == "" || c.Region == candidate.Region
}

func CategoryIndex(categories []Category, id string) int {
	for i, c := range categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}
