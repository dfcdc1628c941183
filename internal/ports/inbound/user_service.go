package inbound

import (
	"context"

	"github.com/google/uuid"
)

// UserService defines the sign-in gate use cases
type UserService interface {
	Register(ctx context.Context, cmd RegisterCommand) (*AuthResultDTO, error)
	Login(ctx context.Context, cmd LoginCommand) (*AuthResultDTO, error)
	LoginWithGoogle(ctx context.Context, idToken string) (*AuthResultDTO, error)
	Logout(ctx context.Context, sessionID string) error
	Refresh(ctx context.Context, refreshToken string) (*AuthResultDTO, error)

	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, userID uuid.UUID) error

	GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
}

// RegisterCommand contains sign-up data
type RegisterCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginCommand contains sign-in data
type LoginCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserDTO is the data transfer object for accounts
type UserDTO struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Provider      string    `json:"provider"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     string    `json:"created_at"`
}

// AuthResultDTO carries a token pair plus the signed-in account
type AuthResultDTO struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	ExpiresAt    int64   `json:"expires_at"` // milliseconds
	User         UserDTO `json:"user"`
}
