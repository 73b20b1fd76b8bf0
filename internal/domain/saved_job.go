package domain

import (
	"context"
	"time"
)

const (
	SavedJobStatusSaved        = "saved"
	SavedJobStatusApplied      = "applied"
	SavedJobStatusInterviewing = "interviewing"
	SavedJobStatusRejected     = "rejected"
	SavedJobStatusOffer        = "offer"
)

// SavedJob is a bookmarked posting, unique per (user, job id). The job
// payload is opaque structured data supplied by the client.
type SavedJob struct {
	JobID     string                 `json:"job_id"`
	JobData   map[string]interface{} `json:"job_data"`
	Notes     string                 `json:"notes"`
	Status    string                 `json:"status"`
	CreatedAt time.Time              `json:"saved_at"`
}

type SaveJobRequest struct {
	JobID   string                 `json:"job_id" validate:"required"`
	JobData map[string]interface{} `json:"job_data" validate:"required"`
	Notes   string                 `json:"notes"`
}

type SavedJobRepository interface {
	// Upsert inserts or replaces the row keyed by (userID, job.JobID).
	Upsert(ctx context.Context, userID string, job *SavedJob) error
	// ListByUser returns saved jobs newest first.
	ListByUser(ctx context.Context, userID string) ([]SavedJob, error)
	// Delete is a no-op when the row does not exist.
	Delete(ctx context.Context, userID, jobID string) error
}

type JobUsecase interface {
	Save(ctx context.Context, req SaveJobRequest) error
	ListSaved(ctx context.Context) ([]SavedJob, error)
	DeleteSaved(ctx context.Context, jobID string) error
}
