// Package resettokens persists single-use password reset tokens.
package resettokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/commpro-auth/internal/server/models"
)

// Repository stores password reset tokens.
type Repository interface {
	Create(ctx context.Context, token *models.PasswordResetToken) error

	// Find returns common.ErrorNotFound when no row carries token.
	Find(ctx context.Context, token string) (*models.PasswordResetToken, error)

	// DeleteUnusedByUser removes every unused token of userID.
	DeleteUnusedByUser(ctx context.Context, userID string) (int64, error)

	// MarkUsed flips used to true only if it is still false, returning
	// common.ErrTokenAlreadyUsed otherwise.
	MarkUsed(ctx context.Context, id string, at time.Time) error

	// DeleteExpired removes tokens that expired at or before now, used or not.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
