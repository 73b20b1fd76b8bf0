package postgres

import (
	"context"
	"time"

	"go-jobhunt-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application and fills app.ID from the sequence.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (user_id, job_id, company, role, cover_letter, email_sent, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusDraft
	}

	return r.db.QueryRow(ctx, query,
		app.UserID,
		app.JobID,
		app.Company,
		app.Role,
		app.CoverLetter,
		app.EmailSent,
		app.Status,
		app.Notes,
		app.CreatedAt,
		app.UpdatedAt,
	).Scan(&app.ID)
}

func (r *applicationRepo) ListByUser(ctx context.Context, userID string) ([]domain.Application, error) {
	query := `
		SELECT id, user_id, job_id, company, role, cover_letter, email_sent, status, applied_at, notes, created_at, updated_at
		FROM applications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.UserID, &app.JobID, &app.Company, &app.Role,
			&app.CoverLetter, &app.EmailSent, &app.Status, &app.AppliedAt,
			&app.Notes, &app.CreatedAt, &app.UpdatedAt,
		); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, userID string, id int64, status string) error {
	query := `
		UPDATE applications
		SET status = $3, updated_at = NOW(),
		    applied_at = CASE WHEN $3 = 'sent' AND applied_at IS NULL THEN NOW() ELSE applied_at END
		WHERE user_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, userID, id, status)
	return err
}
