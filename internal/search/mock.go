// Package search returns placeholder job listings. There is no real
// board integration; results are a fixed catalogue regardless of the
// query, the same way the tool shipped.
package search

import "go-jobhunt-backend/internal/domain"

const (
	DefaultRole     = "Product Designer"
	DefaultLocation = "Sydney Australia"
)

// Listings returns the mock result set for the given parameters. The
// parameters only fill defaults; they do not filter the catalogue.
func Listings(params domain.SearchParams) []domain.Listing {
	if params.Role == "" {
		params.Role = DefaultRole
	}
	if params.Location == "" {
		params.Location = DefaultLocation
	}

	return []domain.Listing{
		{
			Company:      "Atlassian",
			Role:         "Senior Product Designer",
			Location:     "Sydney, Australia",
			RemoteStatus: "Hybrid",
			URL:          "https://www.atlassian.com/company/careers",
			MatchRating:  5,
			Source:       "LinkedIn",
			Notes:        "Source: LinkedIn",
		},
		{
			Company:      "Canva",
			Role:         "Product Designer",
			Location:     "Sydney, Australia",
			RemoteStatus: "Flexible",
			URL:          "https://www.canva.com/careers",
			MatchRating:  5,
			Source:       "Indeed",
			Notes:        "Source: Indeed",
		},
		{
			Company:      "SafetyCulture",
			Role:         "Senior UX Designer",
			Location:     "Sydney, Australia",
			RemoteStatus: "Hybrid",
			URL:          "https://safetyculture.com/careers",
			MatchRating:  4,
			Source:       "LinkedIn",
			Notes:        "Source: LinkedIn",
		},
		{
			Company:      "Linktree",
			Role:         "Product Designer",
			Location:     "Melbourne, Australia",
			RemoteStatus: "Remote OK",
			URL:          "https://linktr.ee/careers",
			MatchRating:  4,
			Source:       "Seek",
			Notes:        "Source: Seek",
		},
		{
			Company:      "Xero",
			Role:         "Product Designer - Fintech",
			Location:     "Sydney, Australia",
			RemoteStatus: "Hybrid",
			URL:          "https://www.xero.com/au/careers",
			MatchRating:  4,
			Source:       "LinkedIn",
			Notes:        "Source: LinkedIn",
		},
	}
}
