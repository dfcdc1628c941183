package user

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("cook@example.com", "$2a$10$hash")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, "cook@example.com", u.Email())
	assert.Equal(t, ProviderPassword, u.Provider())
	assert.False(t, u.EmailVerified())
	assert.Nil(t, u.LastLoginAt())
}

func TestNewUser_Validation(t *testing.T) {
	_, err := NewUser("", "hash")
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = NewUser("not-an-email", "hash")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = NewUser("cook@example.com", "")
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

func TestNewGoogleUser_ArrivesVerified(t *testing.T) {
	u, err := NewGoogleUser("cook@gmail.com")

	require.NoError(t, err)
	assert.Equal(t, ProviderGoogle, u.Provider())
	assert.True(t, u.EmailVerified())
	assert.Empty(t, u.PasswordHash())
}

func TestVerifyEmail(t *testing.T) {
	u, err := NewUser("cook@example.com", "hash")
	require.NoError(t, err)

	u.VerifyEmail()
	assert.True(t, u.EmailVerified())
}

func TestRecordLogin(t *testing.T) {
	u, err := NewUser("cook@example.com", "hash")
	require.NoError(t, err)

	u.RecordLogin()
	require.NotNil(t, u.LastLoginAt())
	first := *u.LastLoginAt()

	u.RecordLogin()
	assert.False(t, u.LastLoginAt().Before(first))
}
