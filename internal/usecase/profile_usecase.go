package usecase

import (
	"context"
	"time"

	"go-jobhunt-backend/internal/domain"
	"go-jobhunt-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	repo     domain.ProfileRepository
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{repo: repo, validate: validate}
}

func (u *profileUsecase) Get(ctx context.Context) (*domain.Profile, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}

// Apply writes the caller's profile. The user id always comes from the
// context; there is no path that accepts someone else's.
func (u *profileUsecase) Apply(ctx context.Context, upd *domain.ProfileUpdate, replace bool) (*domain.Profile, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	if err := u.validate.Struct(upd); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	existing, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	// Start from defaults (full replace) or the stored row (merge).
	base := domain.Profile{
		ExperienceLevel:     domain.DefaultExperienceLevel,
		WorkStyle:           domain.DefaultWorkStyle,
		PreferredRoles:      []string{},
		PreferredIndustries: []string{},
		ExtractedSkills:     []string{},
		CreatedAt:           now,
	}
	if existing != nil {
		if !replace {
			base = *existing
		}
		base.CreatedAt = existing.CreatedAt
	}

	applyUpdate(&base, upd)

	base.UserID = userID
	base.UpdatedAt = now

	if err := u.repo.Upsert(ctx, &base); err != nil {
		return nil, err
	}
	return &base, nil
}

func applyUpdate(p *domain.Profile, upd *domain.ProfileUpdate) {
	if upd.FullName != nil {
		p.FullName = *upd.FullName
	}
	if upd.Email != nil {
		p.Email = *upd.Email
	}
	if upd.Phone != nil {
		p.Phone = *upd.Phone
	}
	if upd.Location != nil {
		p.Location = *upd.Location
	}
	if upd.LinkedinURL != nil {
		p.LinkedinURL = *upd.LinkedinURL
	}
	if upd.GithubURL != nil {
		p.GithubURL = *upd.GithubURL
	}
	if upd.PortfolioURL != nil {
		p.PortfolioURL = *upd.PortfolioURL
	}
	if upd.TwitterURL != nil {
		p.TwitterURL = *upd.TwitterURL
	}
	if upd.ExperienceLevel != nil {
		p.ExperienceLevel = *upd.ExperienceLevel
	}
	if upd.YearsOfExperience != nil {
		p.YearsOfExperience = *upd.YearsOfExperience
	}
	if upd.PreferredRoles != nil {
		p.PreferredRoles = *upd.PreferredRoles
	}
	if upd.PreferredIndustries != nil {
		p.PreferredIndustries = *upd.PreferredIndustries
	}
	if upd.WorkStyle != nil {
		p.WorkStyle = *upd.WorkStyle
	}
	if upd.SalaryExpectation != nil {
		p.SalaryExpectation = upd.SalaryExpectation
	}
	if upd.ResumeText != nil {
		p.ResumeText = *upd.ResumeText
	}
	if upd.ResumeFileName != nil {
		p.ResumeFileName = *upd.ResumeFileName
	}
	if upd.ExtractedSkills != nil {
		p.ExtractedSkills = *upd.ExtractedSkills
	}
}
