package domain

import "context"

// Listing is a job posting candidate for the CSV ledger. URL is the
// dedup key; a listing without one can never be appended.
type Listing struct {
	Company      string `json:"company"`
	Role         string `json:"role"`
	RoleType     string `json:"role_type,omitempty"`
	Location     string `json:"location"`
	RemoteStatus string `json:"remote_status"`
	SalaryRange  string `json:"salary_range,omitempty"`
	URL          string `json:"url"`
	ContactInfo  string `json:"contact_info,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	MatchRating  int    `json:"match_rating"`
	Source       string `json:"source,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

type SearchParams struct {
	Role     string `json:"role"`
	Location string `json:"location"`
	Remote   bool   `json:"remote"`
}

type SearchResult struct {
	Listings []Listing `json:"results"`
	Added    int       `json:"added"`
}

type SearchUsecase interface {
	Search(ctx context.Context, params SearchParams) (*SearchResult, error)
}
