package domain_test

import "github.com/vncsmyrnk/awards/internal/core/domain"

func testCategories() []domain.Category {
	return []domain.Category{
		{ID: "best-overall", Name: "Best Overall", IsMain: true},
		{ID: "best-emea", Name: "Best EMEA", Region: "EMEA"},
		{ID: "best-apac", Name: "Best APAC", Region: "APAC"},
		{ID: "best-na", Name: "Best NA", Region: "NA"},
		{ID: "best-sa", Name: "Best SA", Region: "SA"},
		{ID: "best-mena", Name: "Best MENA", Region: "MENA"},
	}
}

func testCandidates() []domain.Candidate {
	return []domain.Candidate{
		{ID: "esl", Name: "ESL Gaming", Description: "World's largest esports company.", Region: "EMEA"},
		{ID: "blast", Name: "BLAST Premier", Description: "Revolutionary tournament format.", Region: "EMEA"},
		{ID: "riot", Name: "Riot Games", Description: "Publishers of VALORANT.", Region: "NA"},
		{ID: "psg-talon", Name: "PSG Talon", Description: "Leading APAC organization.", Region: "APAC"},
		{ID: "esl-brazil", Name: "ESL Brazil", Description: "South America's premier organizer.", Region: "SA"},
		{ID: "gamers8", Name: "Gamers8", Description: "Premier Saudi esports festival.", Region: "MENA"},
		{ID: "beyond-summit", Name: "Beyond The Summit", Description: "Community-focused organizer.", Region: "NA"},
	}
}
