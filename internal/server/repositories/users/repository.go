// Package users declares the server-side repository contract for user
// accounts and a database/sql implementation of it.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/commpro-auth/internal/server/models"
)

// Repository defines the persistence operations on user accounts. Lookups
// of an absent user return common.ErrorNotFound; so do updates that match
// no row.
type Repository interface {
	// Create inserts user, assigning an ID when it has none. A taken email
	// yields an error wrapping common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail expects an already normalized email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	UpdatePasswordHash(ctx context.Context, id string, hash string, at time.Time) error
	UpdateProfile(ctx context.Context, id string, profile models.Profile, at time.Time) error

	// SetTwoFASecret stores a pending secret and resets the enabled flag.
	SetTwoFASecret(ctx context.Context, id string, secret string, at time.Time) error

	// EnableTwoFA flips the flag only while secret is still the stored
	// pending secret.
	EnableTwoFA(ctx context.Context, id string, secret string, at time.Time) error

	// DisableTwoFA clears both the secret and the flag.
	DisableTwoFA(ctx context.Context, id string, at time.Time) error
}
