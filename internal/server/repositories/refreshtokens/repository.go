// Package refreshtokens declares the repository contract for persisted
// refresh-token sessions and a database/sql implementation of it.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/commpro-auth/internal/server/models"
)

// Repository stores session rows. Rows are inserted and deleted, never
// updated. Delete methods report how many rows they removed so callers can
// detect that a concurrent caller consumed the row first.
type Repository interface {
	Create(ctx context.Context, token *models.RefreshToken) error

	// Find looks a row up by the exact token string and returns
	// common.ErrorNotFound when absent.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	ListByUser(ctx context.Context, userID string) ([]*models.RefreshToken, error)

	DeleteByID(ctx context.Context, id string) (int64, error)
	DeleteByToken(ctx context.Context, token string) (int64, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
	DeleteByUserDevice(ctx context.Context, userID string, deviceID string) (int64, error)

	// DeleteExpired removes rows whose expiry is at or before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
