package domain

import (
	"context"
	"time"
)

type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"` // stored lowercase, unique
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is what a successful register/login hands back to the client.
type AuthResult struct {
	Token   string   `json:"token"`
	UserID  string   `json:"user_id"`
	Email   string   `json:"email"`
	Profile *Profile `json:"profile,omitempty"`
}

type UserRepository interface {
	// Create fails with a Conflict error when the email is already taken.
	// The uniqueness check is atomic (database unique constraint).
	Create(ctx context.Context, user *User) error
	// GetByEmail returns (nil, nil) when no user exists for the email.
	// The lookup is case-insensitive: callers pass lowercase.
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateLastLogin(ctx context.Context, id string) error
}

type AuthUsecase interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)
}
