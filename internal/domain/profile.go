package domain

import (
	"context"
	"time"
)

const (
	DefaultExperienceLevel = "mid"
	DefaultWorkStyle       = "flexible"
)

// Profile is the one-to-one career profile attached to a user account.
// JSON keys are camelCase to match the stored document shape the
// front-end already consumes.
type Profile struct {
	UserID              string    `json:"id"`
	FullName            string    `json:"fullName"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	Location            string    `json:"location"`
	LinkedinURL         string    `json:"linkedinUrl"`
	GithubURL           string    `json:"githubUrl"`
	PortfolioURL        string    `json:"portfolioUrl"`
	TwitterURL          string    `json:"twitterUrl"`
	ExperienceLevel     string    `json:"experienceLevel"`
	YearsOfExperience   int       `json:"yearsOfExperience"`
	PreferredRoles      []string  `json:"preferredRoles"`
	PreferredIndustries []string  `json:"preferredIndustries"`
	WorkStyle           string    `json:"workStyle"`
	SalaryExpectation   *int      `json:"salaryExpectation"`
	ResumeText          string    `json:"resumeText"`
	ResumeFileName      string    `json:"resumeFileName"`
	ExtractedSkills     []string  `json:"extractedSkills"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// ProfileUpdate carries an optional value per profile field. A nil field
// means "leave unchanged" on a merge (PUT) and "reset to default" on a
// full replace (POST).
type ProfileUpdate struct {
	FullName            *string   `json:"fullName"`
	Email               *string   `json:"email" validate:"omitempty,email"`
	Phone               *string   `json:"phone"`
	Location            *string   `json:"location"`
	LinkedinURL         *string   `json:"linkedinUrl"`
	GithubURL           *string   `json:"githubUrl"`
	PortfolioURL        *string   `json:"portfolioUrl"`
	TwitterURL          *string   `json:"twitterUrl"`
	ExperienceLevel     *string   `json:"experienceLevel"`
	YearsOfExperience   *int      `json:"yearsOfExperience" validate:"omitempty,gte=0"`
	PreferredRoles      *[]string `json:"preferredRoles"`
	PreferredIndustries *[]string `json:"preferredIndustries"`
	WorkStyle           *string   `json:"workStyle"`
	SalaryExpectation   *int      `json:"salaryExpectation"`
	ResumeText          *string   `json:"resumeText"`
	ResumeFileName      *string   `json:"resumeFileName"`
	ExtractedSkills     *[]string `json:"extractedSkills"`
}

type ProfileRepository interface {
	// Upsert writes the full profile row, creating it when absent.
	Upsert(ctx context.Context, profile *Profile) error
	// GetByUserID returns (nil, nil) when the user has no profile yet.
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
}

type ProfileUsecase interface {
	Get(ctx context.Context) (*Profile, error)
	// Apply updates the caller's profile. With replace=false absent
	// fields keep their stored values; with replace=true they reset
	// to defaults.
	Apply(ctx context.Context, upd *ProfileUpdate, replace bool) (*Profile, error)
}
