// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"fmt"

	"growth_journal/internal/shared/apperr"
)

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = apperr.New(apperr.ErrNotFound, "user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = apperr.New(apperr.ErrConflict, "email already in use")

	// ErrInvalidCredentials is returned when the email or password does not match.
	ErrInvalidCredentials = apperr.New(apperr.ErrAuth, "invalid credentials")

	// ErrEmailNotVerified is returned when a user with valid credentials has not verified the email.
	ErrEmailNotVerified = apperr.New(apperr.ErrAuth, "email not verified")

	// ErrMissingFields is returned when name, email or password is empty.
	ErrMissingFields = apperr.New(apperr.ErrValidation, "all fields are required")

	// ErrWeakPassword is returned when the password is shorter than minPasswordLength.
	ErrWeakPassword = apperr.New(apperr.ErrValidation, fmt.Sprintf("password must be at least %d characters long", minPasswordLength))
)
