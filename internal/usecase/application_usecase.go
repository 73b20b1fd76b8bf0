package usecase

import (
	"context"

	"go-jobhunt-backend/internal/domain"
	"go-jobhunt-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type applicationUsecase struct {
	repo     domain.ApplicationRepository
	validate *validator.Validate
}

func NewApplicationUsecase(repo domain.ApplicationRepository, validate *validator.Validate) domain.ApplicationUsecase {
	return &applicationUsecase{repo: repo, validate: validate}
}

func (u *applicationUsecase) Create(ctx context.Context, req domain.ApplicationCreateRequest) (int64, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return 0, apperror.Unauthorized("User not authenticated")
	}

	if err := u.validate.Struct(req); err != nil {
		return 0, apperror.BadRequest(err.Error())
	}

	app := &domain.Application{
		UserID:      userID,
		JobID:       req.JobID,
		Company:     req.Company,
		Role:        req.Role,
		CoverLetter: req.CoverLetter,
		EmailSent:   req.EmailSent,
		Status:      domain.ApplicationStatusDraft,
	}
	if err := u.repo.Create(ctx, app); err != nil {
		return 0, err
	}
	return app.ID, nil
}

func (u *applicationUsecase) List(ctx context.Context) ([]domain.Application, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	return u.repo.ListByUser(ctx, userID)
}
