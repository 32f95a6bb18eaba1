// Package common defines shared constants and sentinel errors used across
// client and server layers of auditkeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrStore      = errors.New("store error")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
	ErrValidation = errors.New("validation error")

	// Credential errors surfaced to callers.
	ErrDuplicateUsername  = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUnauthenticated    = errors.New("could not validate credentials")

	// Token errors. These never cross the service boundary; callers see
	// ErrUnauthenticated instead.
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrMissingSubject = errors.New("token has no subject")
)
