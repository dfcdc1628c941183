package security

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/novamoonx/demmi/internal/infrastructure/config"
	"github.com/novamoonx/demmi/internal/infrastructure/persistence/memory"
)

func newTokenService(t *testing.T) *TokenService {
	t.Helper()
	cache := memory.NewCacheRepository()
	t.Cleanup(func() { _ = cache.Close() })

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.JWTExpiration = 15 * time.Minute
	cfg.Auth.RefreshExpiration = 7 * 24 * time.Hour

	return NewTokenService(cfg, cache, zap.NewNop())
}

func TestIssuePairAndValidate(t *testing.T) {
	svc := newTokenService(t)
	ctx := context.Background()
	userID := uuid.New()

	pair, err := svc.IssuePair(ctx, userID, "nova@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEmpty(t, pair.SessionID)
	assert.True(t, pair.ExpiresAt.After(time.Now()))

	claims, err := svc.ValidateAccess(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "nova@example.com", claims.Email)
	assert.Equal(t, pair.SessionID, claims.SessionID)
}

func TestValidateAccess_RejectsRefreshToken(t *testing.T) {
	svc := newTokenService(t)
	ctx := context.Background()

	pair, err := svc.IssuePair(ctx, uuid.New(), "nova@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateAccess(ctx, pair.RefreshToken)
	assert.Error(t, err)
}

func TestValidateAccess_RejectsTamperedToken(t *testing.T) {
	svc := newTokenService(t)
	ctx := context.Background()

	pair, err := svc.IssuePair(ctx, uuid.New(), "nova@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateAccess(ctx, pair.AccessToken+"x")
	assert.Error(t, err)
}

func TestValidateAccess_RejectsForeignSignature(t *testing.T) {
	svc := newTokenService(t)
	other := newTokenService(t)
	other.secret = []byte("different-secret")
	ctx := context.Background()

	pair, err := other.IssuePair(ctx, uuid.New(), "nova@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateAccess(ctx, pair.AccessToken)
	assert.Error(t, err)
}

func TestRefresh_KeepsSessionAndUser(t *testing.T) {
	svc := newTokenService(t)
	ctx := context.Background()
	userID := uuid.New()

	pair, err := svc.IssuePair(ctx, userID, "nova@example.com")
	require.NoError(t, err)

	fresh, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, pair.SessionID, fresh.SessionID)

	claims, err := svc.ValidateAccess(ctx, fresh.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc := newTokenService(t)
	ctx := context.Background()

	pair, err := svc.IssuePair(ctx, uuid.New(), "nova@example.com")
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, pair.AccessToken)
	assert.Error(t, err)
}

func TestRevokeSession_InvalidatesAllTokens(t *testing.T) {
	svc := newTokenService(t)
	ctx := context.Background()

	pair, err := svc.IssuePair(ctx, uuid.New(), "nova@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.RevokeSession(ctx, pair.SessionID))

	_, err = svc.ValidateAccess(ctx, pair.AccessToken)
	assert.Error(t, err)

	_, err = svc.Refresh(ctx, pair.RefreshToken)
	assert.Error(t, err)
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, hasher.Verify(hash, "correct horse battery staple"))
	assert.Error(t, hasher.Verify(hash, "wrong password"))
}

func TestNewBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(99)

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.NoError(t, hasher.Verify(hash, "pw"))
}
