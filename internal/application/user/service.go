// Package user provides the application layer for the sign-in gate:
// registration, credential and Google sign-in, session refresh and the
// email verification flow.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/novamoonx/demmi/internal/domain/user"
	"github.com/novamoonx/demmi/internal/ports/inbound"
	"github.com/novamoonx/demmi/internal/ports/outbound"
	"github.com/novamoonx/demmi/pkg/errors"
)

const verificationTTL = 24 * time.Hour

// UserService implements the sign-in gate use cases
type UserService struct {
	userRepo outbound.UserRepository
	tokens   outbound.TokenService
	hasher   outbound.PasswordHasher
	cache    outbound.CacheRepository
	mailer   outbound.Mailer
	identity outbound.IdentityVerifier
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo outbound.UserRepository,
	tokens outbound.TokenService,
	hasher outbound.PasswordHasher,
	cache outbound.CacheRepository,
	mailer outbound.Mailer,
	identity outbound.IdentityVerifier,
	logger *zap.Logger,
) inbound.UserService {
	return &UserService{
		userRepo: userRepo,
		tokens:   tokens,
		hasher:   hasher,
		cache:    cache,
		mailer:   mailer,
		identity: identity,
		logger:   logger.Named("user-service"),
	}
}

// Register creates a password account, sends the verification mail and
// signs the account in
func (s *UserService) Register(ctx context.Context, cmd inbound.RegisterCommand) (*inbound.AuthResultDTO, error) {
	existing, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, errors.NewDatabaseError("find user by email", err)
	}
	if existing != nil {
		return nil, errors.NewEmailAlreadyExistsError(cmd.Email)
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, errors.NewInternalError("Failed to hash password").WithCause(err)
	}

	entity, err := user.NewUser(cmd.Email, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.userRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create user", err)
	}

	if err := s.sendVerification(ctx, entity); err != nil {
		// Registration still succeeds; the mail can be resent.
		s.logger.Warn("Failed to send verification email",
			zap.String("user_id", entity.ID().String()),
			zap.Error(err),
		)
	}

	s.logger.Info("User registered", zap.String("user_id", entity.ID().String()))
	return s.signIn(ctx, entity)
}

// Login signs a password account in
func (s *UserService) Login(ctx context.Context, cmd inbound.LoginCommand) (*inbound.AuthResultDTO, error) {
	entity, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, errors.NewDatabaseError("find user by email", err)
	}
	if entity == nil || entity.Provider() != user.ProviderPassword {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := s.hasher.Verify(entity.PasswordHash(), cmd.Password); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	return s.signIn(ctx, entity)
}

// LoginWithGoogle signs in via a Google ID token, creating the account
// on first sight. Google emails arrive verified.
func (s *UserService) LoginWithGoogle(ctx context.Context, idToken string) (*inbound.AuthResultDTO, error) {
	email, err := s.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("Google sign-in failed").WithCause(err)
	}

	entity, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewDatabaseError("find user by email", err)
	}
	if entity == nil {
		entity, err = user.NewGoogleUser(email)
		if err != nil {
			return nil, errors.NewValidationError(err.Error()).WithCause(err)
		}
		if err := s.userRepo.Create(ctx, entity); err != nil {
			return nil, errors.NewDatabaseError("create user", err)
		}
		s.logger.Info("Google account created", zap.String("user_id", entity.ID().String()))
	}

	return s.signIn(ctx, entity)
}

// Logout revokes the server-side session
func (s *UserService) Logout(ctx context.Context, sessionID string) error {
	if err := s.tokens.RevokeSession(ctx, sessionID); err != nil {
		return errors.NewInternalError("Failed to revoke session").WithCause(err)
	}
	return nil
}

// Refresh exchanges a refresh token for a fresh pair
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*inbound.AuthResultDTO, error) {
	pair, err := s.tokens.Refresh(ctx, refreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("Invalid or expired refresh token").WithCause(err)
	}

	claims, err := s.tokens.ValidateAccess(ctx, pair.AccessToken)
	if err != nil {
		return nil, errors.NewInternalError("Failed to validate issued token").WithCause(err)
	}

	entity, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.NewDatabaseError("find user", err)
	}
	if entity == nil {
		return nil, errors.NewUserNotFoundError(claims.UserID.String())
	}

	return authResult(pair, entity), nil
}

// VerifyEmail completes the verification flow for a mailed token
func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	raw, err := s.cache.Get(ctx, verificationKey(token))
	if err != nil || raw == nil {
		return errors.NewUnauthorizedError("Invalid or expired verification token")
	}

	userID, err := uuid.Parse(string(raw))
	if err != nil {
		return errors.NewUnauthorizedError("Invalid or expired verification token")
	}

	entity, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return errors.NewDatabaseError("find user", err)
	}
	if entity == nil {
		return errors.NewUserNotFoundError(userID.String())
	}

	entity.VerifyEmail()
	if err := s.userRepo.Update(ctx, entity); err != nil {
		return errors.NewDatabaseError("update user", err)
	}

	if err := s.cache.Delete(ctx, verificationKey(token)); err != nil {
		s.logger.Warn("Failed to delete verification token", zap.Error(err))
	}

	s.logger.Info("Email verified", zap.String("user_id", userID.String()))
	return nil
}

// ResendVerification issues a fresh verification token and mails it
func (s *UserService) ResendVerification(ctx context.Context, userID uuid.UUID) error {
	entity, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return errors.NewDatabaseError("find user", err)
	}
	if entity == nil {
		return errors.NewUserNotFoundError(userID.String())
	}
	if entity.EmailVerified() {
		return nil
	}

	if err := s.sendVerification(ctx, entity); err != nil {
		return errors.NewExternalServiceError("mailer", err)
	}
	return nil
}

// GetProfile returns the account behind a user id
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*inbound.UserDTO, error) {
	entity, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find user", err)
	}
	if entity == nil {
		return nil, errors.NewUserNotFoundError(userID.String())
	}

	dto := userToDTO(entity)
	return &dto, nil
}

func (s *UserService) signIn(ctx context.Context, entity *user.User) (*inbound.AuthResultDTO, error) {
	pair, err := s.tokens.IssuePair(ctx, entity.ID(), entity.Email())
	if err != nil {
		return nil, errors.NewInternalError("Failed to issue tokens").WithCause(err)
	}

	entity.RecordLogin()
	if err := s.userRepo.Update(ctx, entity); err != nil {
		s.logger.Warn("Failed to record login time",
			zap.String("user_id", entity.ID().String()),
			zap.Error(err),
		)
	}

	return authResult(pair, entity), nil
}

func (s *UserService) sendVerification(ctx context.Context, entity *user.User) error {
	token := uuid.New().String()
	if err := s.cache.Set(ctx, verificationKey(token), []byte(entity.ID().String()), verificationTTL); err != nil {
		return err
	}
	return s.mailer.SendVerification(ctx, entity.Email(), token)
}

func verificationKey(token string) string {
	return fmt.Sprintf("verify:%s", token)
}

func authResult(pair *outbound.TokenPair, entity *user.User) *inbound.AuthResultDTO {
	return &inbound.AuthResultDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt.UnixMilli(),
		User:         userToDTO(entity),
	}
}

func userToDTO(u *user.User) inbound.UserDTO {
	return inbound.UserDTO{
		ID:            u.ID(),
		Email:         u.Email(),
		Provider:      string(u.Provider()),
		EmailVerified: u.EmailVerified(),
		CreatedAt:     u.CreatedAt().Format(time.RFC3339),
	}
}
