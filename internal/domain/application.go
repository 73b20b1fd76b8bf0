package domain

import (
	"context"
	"time"
)

const (
	ApplicationStatusDraft       = "draft"
	ApplicationStatusSent        = "sent"
	ApplicationStatusPhoneScreen = "phone_screen"
	ApplicationStatusInterview   = "interview"
	ApplicationStatusOffer       = "offer"
	ApplicationStatusRejected    = "rejected"
)

// Application tracks one application attempt. IDs are assigned by the
// store, sequential across all users.
type Application struct {
	ID          int64      `json:"id"`
	UserID      string     `json:"-"`
	JobID       string     `json:"job_id"`
	Company     string     `json:"company"`
	Role        string     `json:"role"`
	CoverLetter string     `json:"cover_letter,omitempty"`
	EmailSent   string     `json:"email_sent,omitempty"`
	Status      string     `json:"status"`
	AppliedAt   *time.Time `json:"applied_at"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ApplicationCreateRequest struct {
	JobID       string `json:"job_id" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Role        string `json:"role" validate:"required"`
	CoverLetter string `json:"cover_letter"`
	EmailSent   string `json:"email_sent"`
}

type ApplicationRepository interface {
	// Create assigns app.ID from the store's sequence.
	Create(ctx context.Context, app *Application) error
	// ListByUser returns applications newest first.
	ListByUser(ctx context.Context, userID string) ([]Application, error)
	// UpdateStatus exists for the schema-implied tracking extension;
	// no HTTP surface is wired to it yet.
	UpdateStatus(ctx context.Context, userID string, id int64, status string) error
}

type ApplicationUsecase interface {
	Create(ctx context.Context, req ApplicationCreateRequest) (int64, error)
	List(ctx context.Context) ([]Application, error)
}
