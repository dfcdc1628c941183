// Package security provides token issuing and password hashing for the
// sign-in gate
package security

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/novamoonx/demmi/internal/infrastructure/config"
	"github.com/novamoonx/demmi/internal/ports/outbound"
)

const (
	issuer   = "demmi"
	audience = "demmi-api"
)

// TokenType represents different types of JWT tokens
type TokenType string

const (
	accessToken  TokenType = "access"
	refreshToken TokenType = "refresh"
)

// Claims represents JWT claims structure
type Claims struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	TokenType TokenType `json:"token_type"`
	SessionID string    `json:"session_id"`
	jwt.RegisteredClaims
}

// TokenService issues HS256-signed token pairs bound to server-side
// sessions. The session record lives in the cache; deleting it revokes
// every token of that session regardless of its remaining lifetime.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	sessions   outbound.CacheRepository
	logger     *zap.Logger
}

var _ outbound.TokenService = (*TokenService)(nil)

// NewTokenService creates a new token service
func NewTokenService(cfg *config.Config, sessions outbound.CacheRepository, logger *zap.Logger) *TokenService {
	return &TokenService{
		secret:     []byte(cfg.Auth.JWTSecret),
		accessTTL:  cfg.Auth.JWTExpiration,
		refreshTTL: cfg.Auth.RefreshExpiration,
		sessions:   sessions,
		logger:     logger.Named("token-service"),
	}
}

// IssuePair opens a new session and signs an access/refresh token pair
// for it
func (s *TokenService) IssuePair(ctx context.Context, userID uuid.UUID, email string) (*outbound.TokenPair, error) {
	sessionID := uuid.New().String()

	if err := s.sessions.Set(ctx, sessionKey(sessionID), []byte(userID.String()), s.refreshTTL); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return s.signPair(userID, email, sessionID)
}

// ValidateAccess validates an access token and checks its session is
// still live
func (s *TokenService) ValidateAccess(ctx context.Context, token string) (*outbound.TokenClaims, error) {
	claims, err := s.parse(token, accessToken)
	if err != nil {
		return nil, err
	}

	live, err := s.sessions.Exists(ctx, sessionKey(claims.SessionID))
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if !live {
		return nil, fmt.Errorf("session has been revoked")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token: %w", err)
	}

	return &outbound.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		SessionID: claims.SessionID,
	}, nil
}

// Refresh exchanges a live refresh token for a fresh pair on the same
// session
func (s *TokenService) Refresh(ctx context.Context, token string) (*outbound.TokenPair, error) {
	claims, err := s.parse(token, refreshToken)
	if err != nil {
		return nil, err
	}

	raw, err := s.sessions.Get(ctx, sessionKey(claims.SessionID))
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("session has been revoked")
	}

	userID, err := uuid.Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("corrupt session record: %w", err)
	}
	if userID.String() != claims.UserID {
		return nil, fmt.Errorf("session user mismatch")
	}

	// Sliding expiration: the session lives another refresh window.
	if err := s.sessions.Set(ctx, sessionKey(claims.SessionID), raw, s.refreshTTL); err != nil {
		s.logger.Warn("Failed to extend session", zap.Error(err))
	}

	return s.signPair(userID, claims.Email, claims.SessionID)
}

// RevokeSession deletes the session record, invalidating all tokens
// bound to it
func (s *TokenService) RevokeSession(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionKey(sessionID)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *TokenService) signPair(userID uuid.UUID, email, sessionID string) (*outbound.TokenPair, error) {
	now := time.Now()
	expiresAt := now.Add(s.accessTTL)

	access, err := s.sign(&Claims{
		UserID:    userID.String(),
		Email:     email,
		TokenType: accessToken,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID.String(),
			Audience:  []string{audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := s.sign(&Claims{
		UserID:    userID.String(),
		Email:     email,
		TokenType: refreshToken,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID.String(),
			Audience:  []string{audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &outbound.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		SessionID:    sessionID,
		ExpiresAt:    expiresAt,
	}, nil
}

func (s *TokenService) sign(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) parse(tokenString string, expectedType TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.TokenType != expectedType {
		return nil, fmt.Errorf("invalid token type: expected %s, got %s", expectedType, claims.TokenType)
	}

	return claims, nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// BcryptHasher hashes passwords with bcrypt
type BcryptHasher struct {
	cost int
}

var _ outbound.PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a hasher with the configured cost. An
// out-of-range cost falls back to the bcrypt default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash securely hashes a password using bcrypt
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify verifies a password against its hash
func (h *BcryptHasher) Verify(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
