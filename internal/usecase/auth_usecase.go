package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go-jobhunt-backend/internal/domain"
	"go-jobhunt-backend/pkg/apperror"
	"go-jobhunt-backend/pkg/auth"
	"go-jobhunt-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo    domain.UserRepository
	profileRepo domain.ProfileRepository
	tokens      *auth.TokenService
	validate    *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, profileRepo domain.ProfileRepository, tokens *auth.TokenService, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
		validate:    validate,
	}
}

func (u *authUsecase) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResult, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Random id, not derived from the email or the clock.
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	// The unique constraint on email makes the check-and-insert atomic;
	// concurrent registrations for the same address cannot both succeed.
	if err := u.userRepo.Create(ctx, user); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusConflict {
			// The API contract reports duplicates as a 400, not 409.
			return nil, apperror.BadRequest("Email already registered")
		}
		return nil, err
	}

	now := time.Now()
	profile := &domain.Profile{
		UserID:              user.ID,
		FullName:            req.FullName,
		Email:               email,
		ExperienceLevel:     domain.DefaultExperienceLevel,
		WorkStyle:           domain.DefaultWorkStyle,
		PreferredRoles:      []string{},
		PreferredIndustries: []string{},
		ExtractedSkills:     []string{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := u.profileRepo.Upsert(ctx, profile); err != nil {
		logger.Log.Error("Failed to seed initial profile", "user_id", user.ID, "error", err)
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AuthResult{Token: token, UserID: user.ID, Email: email}, nil
}

func (u *authUsecase) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResult, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	// Unknown email and wrong password produce the identical error so
	// callers cannot probe which one failed.
	if user == nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	if err := u.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// Best effort: a failed timestamp update must not block login.
		logger.Log.Warn("Failed to update last login", "user_id", user.ID, "error", err)
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	profile, err := u.profileRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		logger.Log.Warn("Failed to load profile on login", "user_id", user.ID, "error", err)
	}

	return &domain.AuthResult{Token: token, UserID: user.ID, Email: user.Email, Profile: profile}, nil
}
