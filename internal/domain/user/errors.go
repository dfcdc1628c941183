package user

import "errors"

// Domain errors for account operations

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrInvalidEmail     = errors.New("email address is not valid")
	ErrPasswordRequired = errors.New("a password hash is required")

	ErrUserNotFound = errors.New("user not found")
)
