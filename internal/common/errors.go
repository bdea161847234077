// Package common defines shared constants and sentinel errors used across
// the transport, service and repository layers. Callers should use errors.Is
// to match these values.
package common

import (
	"errors"
	"sort"
	"strings"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrTransientStore = errors.New("store temporarily unavailable")

	// Input errors. ValidationError wraps ErrValidation.
	ErrValidation = errors.New("validation error")

	// Credential errors.
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrAccountDisabled        = errors.New("account disabled")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrTooManyAttempts        = errors.New("too many attempts")

	// Token protocol errors.
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenAlreadyUsed = errors.New("token already used")
	ErrTokenNotFound    = errors.New("token not found")

	// Two-factor state machine errors.
	ErrAlreadyEnabled  = errors.New("two-factor authentication already enabled")
	ErrNotEnabled      = errors.New("two-factor authentication not enabled")
	ErrNoPendingSecret = errors.New("no pending two-factor secret")
	ErrInvalidCode     = errors.New("invalid two-factor code")
)

// ValidationError reports field-level input problems. It matches
// ErrValidation via errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
