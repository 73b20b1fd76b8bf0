package usecase

import (
	"context"
	"time"

	"go-jobhunt-backend/internal/domain"
	"go-jobhunt-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type jobUsecase struct {
	repo     domain.SavedJobRepository
	validate *validator.Validate
}

func NewJobUsecase(repo domain.SavedJobRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{repo: repo, validate: validate}
}

// Save is an idempotent upsert keyed by (caller, job id). Re-sending
// the same payload leaves the same stored state, so retries are safe.
func (u *jobUsecase) Save(ctx context.Context, req domain.SaveJobRequest) error {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return apperror.Unauthorized("User not authenticated")
	}

	if err := u.validate.Struct(req); err != nil {
		return apperror.BadRequest(err.Error())
	}

	job := &domain.SavedJob{
		JobID:     req.JobID,
		JobData:   req.JobData,
		Notes:     req.Notes,
		Status:    domain.SavedJobStatusSaved,
		CreatedAt: time.Now(),
	}
	return u.repo.Upsert(ctx, userID, job)
}

func (u *jobUsecase) ListSaved(ctx context.Context) ([]domain.SavedJob, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	return u.repo.ListByUser(ctx, userID)
}

func (u *jobUsecase) DeleteSaved(ctx context.Context, jobID string) error {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return apperror.Unauthorized("User not authenticated")
	}
	if jobID == "" {
		return apperror.BadRequest("job_id is required")
	}
	return u.repo.Delete(ctx, userID, jobID)
}
