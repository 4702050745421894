// Package common defines shared constants and sentinel errors used across
// the feedbackhub server and client. Callers should use errors.Is to match
// these values; services wrap them with context via fmt.Errorf("%w: ...").
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Input errors.
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("already exists")

	// Credential errors (bad login).
	ErrAuth = errors.New("invalid credentials")

	// Role or ownership gate failures.
	ErrUnauthorized = errors.New("unauthorized")

	ErrInternal = errors.New("internal error")

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
