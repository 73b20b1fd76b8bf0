package postgres

import (
	"context"
	"errors"

	"go-jobhunt-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, full_name, email, phone, location,
			linkedin_url, github_url, portfolio_url, twitter_url,
			experience_level, years_of_experience,
			preferred_roles, preferred_industries, work_style,
			salary_expectation, resume_text, resume_file_name,
			extracted_skills, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			linkedin_url = EXCLUDED.linkedin_url,
			github_url = EXCLUDED.github_url,
			portfolio_url = EXCLUDED.portfolio_url,
			twitter_url = EXCLUDED.twitter_url,
			experience_level = EXCLUDED.experience_level,
			years_of_experience = EXCLUDED.years_of_experience,
			preferred_roles = EXCLUDED.preferred_roles,
			preferred_industries = EXCLUDED.preferred_industries,
			work_style = EXCLUDED.work_style,
			salary_expectation = EXCLUDED.salary_expectation,
			resume_text = EXCLUDED.resume_text,
			resume_file_name = EXCLUDED.resume_file_name,
			extracted_skills = EXCLUDED.extracted_skills,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query,
		p.UserID, p.FullName, p.Email, p.Phone, p.Location,
		p.LinkedinURL, p.GithubURL, p.PortfolioURL, p.TwitterURL,
		p.ExperienceLevel, p.YearsOfExperience,
		pq.Array(p.PreferredRoles), pq.Array(p.PreferredIndustries), p.WorkStyle,
		p.SalaryExpectation, p.ResumeText, p.ResumeFileName,
		pq.Array(p.ExtractedSkills), p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
		SELECT
			user_id, full_name, email, phone, location,
			linkedin_url, github_url, portfolio_url, twitter_url,
			experience_level, years_of_experience,
			preferred_roles, preferred_industries, work_style,
			salary_expectation, resume_text, resume_file_name,
			extracted_skills, created_at, updated_at
		FROM profiles WHERE user_id = $1`

	var p domain.Profile
	var roles, industries, skills []string

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.FullName, &p.Email, &p.Phone, &p.Location,
		&p.LinkedinURL, &p.GithubURL, &p.PortfolioURL, &p.TwitterURL,
		&p.ExperienceLevel, &p.YearsOfExperience,
		pq.Array(&roles), pq.Array(&industries), &p.WorkStyle,
		&p.SalaryExpectation, &p.ResumeText, &p.ResumeFileName,
		pq.Array(&skills), &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	p.PreferredRoles = roles
	p.PreferredIndustries = industries
	p.ExtractedSkills = skills
	return &p, nil
}
