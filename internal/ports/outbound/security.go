package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair is a freshly issued access/refresh token set bound to a
// server-side session
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
	ExpiresAt    time.Time
}

// TokenClaims is the decoded identity a validated token asserts
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	SessionID string
}

// TokenService issues and validates session-bound token pairs
type TokenService interface {
	IssuePair(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error)
	ValidateAccess(ctx context.Context, accessToken string) (*TokenClaims, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	RevokeSession(ctx context.Context, sessionID string) error
}

// PasswordHasher hashes and verifies account passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}
