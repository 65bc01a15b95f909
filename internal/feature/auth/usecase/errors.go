// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned on any login failure; the cause is deliberately not distinguished.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWeakPassword is returned when a password does not meet the length requirement.
	ErrWeakPassword = errors.New("password too weak")

	// ErrInvalidProfile is returned when profile input fails validation.
	ErrInvalidProfile = errors.New("invalid profile")
)
