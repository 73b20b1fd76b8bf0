package postgres

import (
	"context"
	"encoding/json"

	"go-jobhunt-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type savedJobRepo struct {
	db *pgxpool.Pool
}

func NewSavedJobRepository(db *pgxpool.Pool) domain.SavedJobRepository {
	return &savedJobRepo{db: db}
}

// Upsert replaces the whole row on re-save, matching insert-or-replace
// semantics: notes, payload and status all reflect the latest save.
func (r *savedJobRepo) Upsert(ctx context.Context, userID string, job *domain.SavedJob) error {
	payload, err := json.Marshal(job.JobData)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO saved_jobs (user_id, job_id, job_data, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, job_id) DO UPDATE SET
			job_data = EXCLUDED.job_data,
			notes = EXCLUDED.notes,
			status = EXCLUDED.status,
			created_at = EXCLUDED.created_at`

	_, err = r.db.Exec(ctx, query, userID, job.JobID, payload, job.Notes, job.Status, job.CreatedAt)
	return err
}

func (r *savedJobRepo) ListByUser(ctx context.Context, userID string) ([]domain.SavedJob, error) {
	query := `
		SELECT job_id, job_data, notes, status, created_at
		FROM saved_jobs
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.SavedJob{}
	for rows.Next() {
		var job domain.SavedJob
		var payload []byte
		if err := rows.Scan(&job.JobID, &payload, &job.Notes, &job.Status, &job.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &job.JobData); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *savedJobRepo) Delete(ctx context.Context, userID, jobID string) error {
	// Deleting an absent row is a no-op, not an error.
	query := `DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`
	_, err := r.db.Exec(ctx, query, userID, jobID)
	return err
}
