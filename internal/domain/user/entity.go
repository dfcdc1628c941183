// Package user contains the account domain model behind the sign-in
// gate.
package user

import (
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// Provider identifies how an account authenticates
type Provider string

const (
	ProviderPassword Provider = "password"
	ProviderGoogle   Provider = "google"
)

// User represents an account
type User struct {
	id            uuid.UUID
	email         string
	passwordHash  string
	provider      Provider
	emailVerified bool
	createdAt     time.Time
	lastLoginAt   *time.Time
}

// NewUser creates a password-provider account. The email starts
// unverified until the verification flow completes.
func NewUser(email, passwordHash string) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, ErrPasswordRequired
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		provider:     ProviderPassword,
		createdAt:    time.Now(),
	}, nil
}

// NewGoogleUser creates a Google-provider account. Google accounts
// arrive with a verified email.
func NewGoogleUser(email string) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	return &User{
		id:            uuid.New(),
		email:         email,
		provider:      ProviderGoogle,
		emailVerified: true,
		createdAt:     time.Now(),
	}, nil
}

// Restore rebuilds a user from persisted state
func Restore(id uuid.UUID, email, passwordHash string, provider Provider, emailVerified bool, createdAt time.Time, lastLoginAt *time.Time) *User {
	return &User{
		id:            id,
		email:         email,
		passwordHash:  passwordHash,
		provider:      provider,
		emailVerified: emailVerified,
		createdAt:     createdAt,
		lastLoginAt:   lastLoginAt,
	}
}

// ID returns the user's unique identifier
func (u *User) ID() uuid.UUID { return u.id }

// Email returns the account email
func (u *User) Email() string { return u.email }

// PasswordHash returns the bcrypt hash, empty for Google accounts
func (u *User) PasswordHash() string { return u.passwordHash }

// Provider returns the account's authentication provider
func (u *User) Provider() Provider { return u.provider }

// EmailVerified reports whether the email has been verified
func (u *User) EmailVerified() bool { return u.emailVerified }

// CreatedAt returns when the account was created
func (u *User) CreatedAt() time.Time { return u.createdAt }

// LastLoginAt returns the most recent login, if any
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }

// VerifyEmail marks the account email as verified
func (u *User) VerifyEmail() {
	u.emailVerified = true
}

// RecordLogin stamps the current time as the last login
func (u *User) RecordLogin() {
	now := time.Now()
	u.lastLoginAt = &now
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
