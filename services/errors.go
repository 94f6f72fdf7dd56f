package services

import (
	"errors"
)

var (
	// ErrValidation wraps a required-field failure on a create/update payload
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials covers both unknown username and wrong password
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUsernameTaken is returned when creating a user with an existing username
	ErrUsernameTaken = errors.New("username already taken")

	// ErrSelfDelete is returned when a caller tries to delete their own account
	ErrSelfDelete = errors.New("cannot delete your own account")
)
