package user

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/novamoonx/demmi/internal/domain/user"
	"github.com/novamoonx/demmi/internal/infrastructure/persistence/memory"
	"github.com/novamoonx/demmi/internal/ports/inbound"
	"github.com/novamoonx/demmi/internal/ports/outbound"
	"github.com/novamoonx/demmi/pkg/errors"
)

// fakeTokenService issues predictable tokens and tracks live sessions
type fakeTokenService struct {
	mu       sync.Mutex
	counter  int
	byAccess map[string]outbound.TokenClaims
	refresh  map[string]uuid.UUID
	emails   map[uuid.UUID]string
	revoked  []string
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		byAccess: make(map[string]outbound.TokenClaims),
		refresh:  make(map[string]uuid.UUID),
		emails:   make(map[uuid.UUID]string),
	}
}

func (f *fakeTokenService) IssuePair(ctx context.Context, userID uuid.UUID, email string) (*outbound.TokenPair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counter++
	pair := &outbound.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", f.counter),
		RefreshToken: fmt.Sprintf("refresh-%d", f.counter),
		SessionID:    fmt.Sprintf("session-%d", f.counter),
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}
	f.byAccess[pair.AccessToken] = outbound.TokenClaims{UserID: userID, Email: email, SessionID: pair.SessionID}
	f.refresh[pair.RefreshToken] = userID
	f.emails[userID] = email
	return pair, nil
}

func (f *fakeTokenService) ValidateAccess(ctx context.Context, accessToken string) (*outbound.TokenClaims, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	claims, ok := f.byAccess[accessToken]
	if !ok {
		return nil, stderrors.New("unknown access token")
	}
	return &claims, nil
}

func (f *fakeTokenService) Refresh(ctx context.Context, refreshToken string) (*outbound.TokenPair, error) {
	f.mu.Lock()
	userID, ok := f.refresh[refreshToken]
	email := f.emails[userID]
	f.mu.Unlock()
	if !ok {
		return nil, stderrors.New("unknown refresh token")
	}
	return f.IssuePair(ctx, userID, email)
}

func (f *fakeTokenService) RevokeSession(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked = append(f.revoked, sessionID)
	return nil
}

// fakeHasher marks passwords instead of hashing them
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Verify(hash, password string) error {
	if hash != "hashed:"+password {
		return stderrors.New("password mismatch")
	}
	return nil
}

// recordingMailer captures sent verification tokens
type recordingMailer struct {
	mu   sync.Mutex
	sent []struct{ To, Token string }
	fail bool
}

func (m *recordingMailer) SendVerification(ctx context.Context, to, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return stderrors.New("smtp unavailable")
	}
	m.sent = append(m.sent, struct{ To, Token string }{to, token})
	return nil
}

// fakeVerifier maps ID tokens straight to emails
type fakeVerifier struct {
	emails map[string]string
}

func (f *fakeVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	email, ok := f.emails[idToken]
	if !ok {
		return "", stderrors.New("invalid id token")
	}
	return email, nil
}

type fixture struct {
	service  inbound.UserService
	users    *memory.UserRepository
	tokens   *fakeTokenService
	mailer   *recordingMailer
	verifier *fakeVerifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cache := memory.NewCacheRepository()
	t.Cleanup(func() { _ = cache.Close() })

	f := &fixture{
		users:    memory.NewUserRepository(),
		tokens:   newFakeTokenService(),
		mailer:   &recordingMailer{},
		verifier: &fakeVerifier{emails: map[string]string{"good-token": "nova@example.com"}},
	}
	f.service = NewUserService(f.users, f.tokens, fakeHasher{}, cache, f.mailer, f.verifier, zap.NewNop())
	return f
}

func TestRegister(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.service.Register(ctx, inbound.RegisterCommand{
		Email:    "nova@example.com",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "nova@example.com", result.User.Email)
	assert.Equal(t, string(user.ProviderPassword), result.User.Provider)
	assert.False(t, result.User.EmailVerified)

	// A verification mail went out to the new account.
	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "nova@example.com", f.mailer.sent[0].To)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, inbound.RegisterCommand{Email: "nova@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = f.service.Register(ctx, inbound.RegisterCommand{Email: "nova@example.com", Password: "other456"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeEmailAlreadyExists))
}

func TestRegister_SucceedsWhenMailerFails(t *testing.T) {
	f := newFixture(t)
	f.mailer.fail = true

	result, err := f.service.Register(context.Background(), inbound.RegisterCommand{
		Email:    "nova@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, inbound.RegisterCommand{Email: "nova@example.com", Password: "secret123"})
	require.NoError(t, err)

	result, err := f.service.Login(ctx, inbound.LoginCommand{Email: "nova@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "nova@example.com", result.User.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, inbound.RegisterCommand{Email: "nova@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = f.service.Login(ctx, inbound.LoginCommand{Email: "nova@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeInvalidCredentials))
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Login(context.Background(), inbound.LoginCommand{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeInvalidCredentials))
}

func TestLogin_GoogleAccountCannotUsePassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.LoginWithGoogle(ctx, "good-token")
	require.NoError(t, err)

	_, err = f.service.Login(ctx, inbound.LoginCommand{Email: "nova@example.com", Password: "anything"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeInvalidCredentials))
}

func TestLoginWithGoogle_CreatesVerifiedAccountOnFirstSight(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.service.LoginWithGoogle(ctx, "good-token")

	require.NoError(t, err)
	assert.Equal(t, "nova@example.com", result.User.Email)
	assert.Equal(t, string(user.ProviderGoogle), result.User.Provider)
	assert.True(t, result.User.EmailVerified)

	// A second sign-in reuses the account.
	again, err := f.service.LoginWithGoogle(ctx, "good-token")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, again.User.ID)
}

func TestLoginWithGoogle_InvalidToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.LoginWithGoogle(context.Background(), "bad-token")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))
}

func TestLogout_RevokesSession(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.service.Logout(context.Background(), "session-1"))
	assert.Equal(t, []string{"session-1"}, f.tokens.revoked)
}

func TestRefresh(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	registered, err := f.service.Register(ctx, inbound.RegisterCommand{Email: "nova@example.com", Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := f.service.Refresh(ctx, registered.RefreshToken)

	require.NoError(t, err)
	assert.NotEqual(t, registered.AccessToken, refreshed.AccessToken)
	assert.Equal(t, registered.User.ID, refreshed.User.ID)
}

func TestRefresh_InvalidToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Refresh(context.Background(), "not-a-refresh-token")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))
}

func TestVerifyEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.service.Register(ctx, inbound.RegisterCommand{Email: "nova@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.Len(t, f.mailer.sent, 1)

	require.NoError(t, f.service.VerifyEmail(ctx, f.mailer.sent[0].Token))

	profile, err := f.service.GetProfile(ctx, result.User.ID)
	require.NoError(t, err)
	assert.True(t, profile.EmailVerified)

	// The token is single-use.
	err = f.service.VerifyEmail(ctx, f.mailer.sent[0].Token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))
}

func TestVerifyEmail_UnknownToken(t *testing.T) {
	f := newFixture(t)

	err := f.service.VerifyEmail(context.Background(), uuid.New().String())

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))
}

func TestResendVerification(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.service.Register(ctx, inbound.RegisterCommand{Email: "nova@example.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, f.service.ResendVerification(ctx, result.User.ID))
	assert.Len(t, f.mailer.sent, 2)

	// Already-verified accounts are a no-op.
	require.NoError(t, f.service.VerifyEmail(ctx, f.mailer.sent[1].Token))
	require.NoError(t, f.service.ResendVerification(ctx, result.User.ID))
	assert.Len(t, f.mailer.sent, 2)
}

func TestGetProfile_Unknown(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.GetProfile(context.Background(), uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeUserNotFound))
}
