// Package common defines shared constants and sentinel errors used across
// client and server layers of Scriptoria. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrInfrastructure marks storage or generation-service failures. It is
	// surfaced to the user as a "try again" condition.
	ErrInfrastructure = errors.New("something went wrong, please try again")

	// Account errors.
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrWeakPassword       = errors.New("password does not meet the strength requirements")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Validation errors for form input that is not a password problem.
	ErrInvalidInput = errors.New("invalid input")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Session lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
