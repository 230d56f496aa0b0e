package memory

import (
	"context"

	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

var categories = []domain.Category{
	{
		ID:          "best-organizer-2025",
		Name:        "Best Organizer of 2025",
		ShortName:   "Best Overall",
		Description: "Vote for the best esports tournament organizer of 2025",
		IsMain:      true,
	},
	{
		ID:          "best-emea",
		Name:        "Best EMEA Organizer",
		ShortName:   "EMEA",
		Description: "Best organizer from Europe, Middle East & Africa",
		Region:      "EMEA",
	},
	{
		ID:          "best-apac",
		Name:        "Best APAC Organizer",
		ShortName:   "APAC",
		Description: "Best organizer from Asia-Pacific region",
		Region:      "APAC",
	},
	{
		ID:          "best-na",
		Name:        "Best NA Organizer",
		ShortName:   "NA",
		Description: "Best organizer from North America",
		Region:      "NA",
	},
	{
		ID:          "best-sa",
		Name:        "Best SA Organizer",
		ShortName:   "SA",
		Description: "Best organizer from South America",
		Region:      "SA",
	},
	{
		ID:          "best-mena",
		Name:        "Best Middle East / Arab Organizer",
		ShortName:   "MENA",
		Description: "Best organizer from Middle East & Arab region",
		Region:      "MENA",
	},
}

var candidates = []domain.Candidate{
	{
		ID:          "esl",
		Name:        "ESL Gaming",
		ImageURL:    "https://images.unsplash.com/photo-1560419015-7c427e8ae5ba?w=200&h=200&fit=crop",
		Description: "World's largest esports company, organizing premium tournaments across multiple titles.",
		Region:      "EMEA",
	},
	{
		ID:          "blast",
		Name:        "BLAST Premier",
		ImageURL:    "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=200&h=200&fit=crop",
		Description: "Revolutionary tournament format bringing innovation to competitive gaming.",
		Region:      "EMEA",
	},
	{
		ID:          "pgl",
		Name:        "PGL Esports",
		ImageURL:    "https://images.unsplash.com/photo-1511512578047-dfb367046420?w=200&h=200&fit=crop",
		Description: "Premier esports production company known for exceptional Major events.",
		Region:      "EMEA",
	},
	{
		ID:          "riot",
		Name:        "Riot Games",
		ImageURL:    "https://images.unsplash.com/photo-1538481199705-c710c4e965fc?w=200&h=200&fit=crop",
		Description: "Publishers of League of Legends and VALORANT with world-class esports ecosystems.",
		Region:      "NA",
	},
	{
		ID:          "epicenter",
		Name:        "EPICENTER",
		ImageURL:    "https://images.unsplash.com/photo-1493711662062-fa541f7f67e4?w=200&h=200&fit=crop",
		Description: "Known for spectacular production value and immersive tournament experiences.",
		Region:      "EMEA",
	},
	{
		ID:          "weplay",
		Name:        "WePlay Esports",
		ImageURL:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=200&h=200&fit=crop",
		Description: "Creative tournament organizer with unique themed events and engaging content.",
		Region:      "EMEA",
	},
	{
		ID:          "beyond-summit",
		Name:        "Beyond The Summit",
		ImageURL:    "https://images.unsplash.com/photo-1552820728-8b83bb6b2b07?w=200&h=200&fit=crop",
		Description: "Community-focused organizer known for casual viewing experiences.",
		Region:      "NA",
	},
	{
		ID:          "starladder",
		Name:        "StarLadder",
		ImageURL:    "https://images.unsplash.com/photo-1546443046-ed1ce6ffd1ab?w=200&h=200&fit=crop",
		Description: "Long-standing tournament organizer with rich esports history.",
		Region:      "EMEA",
	},
	{
		ID:          "gamers8",
		Name:        "Gamers8",
		ImageURL:    "https://images.unsplash.com/photo-1534423861386-85a16f5d13fd?w=200&h=200&fit=crop",
		Description: "Premier Saudi esports festival with massive prize pools.",
		Region:      "MENA",
	},
	{
		ID:          "arab-star",
		Name:        "Arab Star",
		ImageURL:    "https://images.unsplash.com/photo-1563089145-599997674d42?w=200&h=200&fit=crop",
		Description: "Leading Arab esports organization promoting regional talent.",
		Region:      "MENA",
	},
	{
		ID:          "esl-brazil",
		Name:        "ESL Brazil",
		ImageURL:    "https://images.unsplash.com/photo-1542751110-97427bbecf20?w=200&h=200&fit=crop",
		Description: "South America's premier tournament organizer for CS and more.",
		Region:      "SA",
	},
	{
		ID:          "psg-talon",
		Name:        "PSG Talon",
		ImageURL:    "https://images.unsplash.com/photo-1580327344181-c131d96064a9?w=200&h=200&fit=crop",
		Description: "Leading APAC esports organization with international reach.",
		Region:      "APAC",
	},
}

type catalogRepository struct{}

// NewCatalogRepository serves the built-in event catalog.
func NewCatalogRepository() ports.CatalogRepository {
	return &catalogRepository{}
}

func (r *catalogRepository) Categories(ctx context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, len(categories))
	copy(out, categories)
	return out, nil
}

func (r *catalogRepository) Candidates(ctx context.Context) ([]domain.Candidate, error) {
	out := make([]domain.Candidate, len(candidates))
	copy(out, candidates)
	return out, nil
}
