package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
	"github.com/dmitrijs2005/commpro-auth/internal/dbx"
	"github.com/dmitrijs2005/commpro-auth/internal/logging"
	"github.com/dmitrijs2005/commpro-auth/internal/server/auth"
	"github.com/dmitrijs2005/commpro-auth/internal/server/models"
	"github.com/dmitrijs2005/commpro-auth/internal/server/repositories/repomanager"
)

// RequestMeta describes the client a session is issued to. All fields are
// optional.
type RequestMeta struct {
	DeviceID   string
	DeviceName string
	IPAddress  string
	UserAgent  string
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// SessionOptions tunes the SessionRegistry.
type SessionOptions struct {
	StoreTimeout time.Duration
	// SingleSessionPerDevice drops a device's previous sessions whenever a
	// new one is issued for the same (user, device id).
	SingleSessionPerDevice bool
}

// SessionRegistry owns the refresh-token rows: issuing, rotating, revoking
// and purging them. Every row is consumed exactly once.
type SessionRegistry struct {
	store
	issuer                 *auth.TokenIssuer
	singleSessionPerDevice bool
}

// NewSessionRegistry constructs a SessionRegistry.
func NewSessionRegistry(db *sql.DB, m repomanager.RepositoryManager, issuer *auth.TokenIssuer, log logging.Logger, opts SessionOptions) *SessionRegistry {
	return &SessionRegistry{
		store:                  newStore(db, m, opts.StoreTimeout, log),
		issuer:                 issuer,
		singleSessionPerDevice: opts.SingleSessionPerDevice,
	}
}

// Issue mints a token pair for user and persists the refresh token through
// tx, which may be the pool or an open transaction.
func (r *SessionRegistry) Issue(ctx context.Context, tx dbx.DBTX, user *models.User, meta RequestMeta) (*auth.TokenPair, error) {
	pair, err := r.issuer.IssuePair(user)
	if err != nil {
		return nil, storeError(err)
	}

	repo := r.repomanager.RefreshTokens(tx)

	if r.singleSessionPerDevice && meta.DeviceID != "" {
		if _, err := repo.DeleteByUserDevice(ctx, user.ID, meta.DeviceID); err != nil {
			return nil, storeError(err)
		}
	}

	row := &models.RefreshToken{
		UserID:     user.ID,
		Token:      pair.RefreshToken,
		ExpiresAt:  r.issuer.RefreshExpiry().UTC(),
		DeviceID:   optional(meta.DeviceID),
		DeviceName: optional(meta.DeviceName),
		IPAddress:  optional(meta.IPAddress),
		UserAgent:  optional(meta.UserAgent),
		CreatedAt:  r.clock(),
	}
	if err := repo.Create(ctx, row); err != nil {
		return nil, storeError(err)
	}

	return pair, nil
}

// Refresh rotates a refresh token: the presented row is deleted and a new
// one carrying the same device metadata replaces it, in one transaction.
// Of two concurrent rotations of the same token exactly one succeeds; the
// other fails with ErrTokenNotFound.
func (r *SessionRegistry) Refresh(ctx context.Context, presented string, meta RequestMeta) (pair *auth.TokenPair, err error) {
	ctx, span := startSpan(ctx, "SessionRegistry.Refresh")
	defer func() { endSpan(span, err) }()

	claims, err := r.issuer.VerifyRefreshToken(presented)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, r.dropExpired(ctx, presented)
		}
		return nil, common.ErrInvalidToken
	}

	row, err := r.find(ctx, presented)
	if err != nil {
		return nil, err
	}
	if row.UserID != claims.UserID {
		return nil, common.ErrTokenNotFound
	}

	if row.Expired(r.clock()) {
		if err := r.deleteRow(ctx, row.ID); err != nil {
			return nil, err
		}
		return nil, common.ErrTokenExpired
	}

	user, err := r.owner(ctx, row.UserID)
	if err != nil {
		return nil, err
	}

	pair, err = r.issuer.IssuePair(user)
	if err != nil {
		return nil, storeError(err)
	}

	err = r.tx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := r.repomanager.RefreshTokens(tx)

		n, err := repo.DeleteByID(ctx, row.ID)
		if err != nil {
			return err
		}
		if n != 1 {
			// a concurrent rotation consumed the row first
			return common.ErrTokenNotFound
		}

		return repo.Create(ctx, &models.RefreshToken{
			UserID:     user.ID,
			Token:      pair.RefreshToken,
			ExpiresAt:  r.issuer.RefreshExpiry().UTC(),
			DeviceID:   row.DeviceID,
			DeviceName: row.DeviceName,
			IPAddress:  optional(meta.IPAddress),
			UserAgent:  optional(meta.UserAgent),
			CreatedAt:  r.clock(),
		})
	})
	if err != nil {
		return nil, storeError(err)
	}

	r.log.Info(ctx, "session rotated", "user_id", user.ID)
	return pair, nil
}

// dropExpired handles a refresh token whose JWT already expired: its row,
// if still present, is deleted and the call reports ErrTokenExpired.
func (r *SessionRegistry) dropExpired(ctx context.Context, presented string) error {
	row, err := r.find(ctx, presented)
	if err != nil {
		return err
	}
	if err := r.deleteRow(ctx, row.ID); err != nil {
		return err
	}
	return common.ErrTokenExpired
}

func (r *SessionRegistry) find(ctx context.Context, token string) (*models.RefreshToken, error) {
	ctx, cancel := r.call(ctx)
	defer cancel()

	row, err := r.repomanager.RefreshTokens(r.db).Find(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrTokenNotFound
		}
		return nil, storeError(err)
	}
	return row, nil
}

func (r *SessionRegistry) deleteRow(ctx context.Context, id string) error {
	ctx, cancel := r.call(ctx)
	defer cancel()

	if _, err := r.repomanager.RefreshTokens(r.db).DeleteByID(ctx, id); err != nil {
		return storeError(err)
	}
	return nil
}

func (r *SessionRegistry) owner(ctx context.Context, userID string) (*models.User, error) {
	ctx, cancel := r.call(ctx)
	defer cancel()

	user, err := r.repomanager.Users(r.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrTokenNotFound
		}
		return nil, storeError(err)
	}
	if !user.IsActive {
		return nil, common.ErrAccountDisabled
	}
	return user, nil
}

// Revoke deletes the session carrying token. Revoking an unknown or
// already revoked token is not an error.
func (r *SessionRegistry) Revoke(ctx context.Context, token string) (err error) {
	ctx, span := startSpan(ctx, "SessionRegistry.Revoke")
	defer func() { endSpan(span, err) }()

	ctx, cancel := r.call(ctx)
	defer cancel()

	n, err := r.repomanager.RefreshTokens(r.db).DeleteByToken(ctx, token)
	if err != nil {
		return storeError(err)
	}
	r.log.Debug(ctx, "session revoked", "token", logging.Redact(token), "rows", n)
	return nil
}

// RevokeAll deletes every session of userID through tx.
func (r *SessionRegistry) RevokeAll(ctx context.Context, tx dbx.DBTX, userID string) (int64, error) {
	n, err := r.repomanager.RefreshTokens(tx).DeleteByUser(ctx, userID)
	if err != nil {
		return 0, storeError(err)
	}
	return n, nil
}

// List returns the live and not yet purged sessions of userID.
func (r *SessionRegistry) List(ctx context.Context, userID string) ([]*models.RefreshToken, error) {
	ctx, cancel := r.call(ctx)
	defer cancel()

	rows, err := r.repomanager.RefreshTokens(r.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, storeError(err)
	}
	return rows, nil
}

// PurgeExpired deletes every expired session and reports how many went.
func (r *SessionRegistry) PurgeExpired(ctx context.Context) (n int64, err error) {
	ctx, span := startSpan(ctx, "SessionRegistry.PurgeExpired")
	defer func() { endSpan(span, err) }()

	ctx, cancel := r.call(ctx)
	defer cancel()

	n, err = r.repomanager.RefreshTokens(r.db).DeleteExpired(ctx, r.clock())
	if err != nil {
		return 0, storeError(err)
	}
	return n, nil
}
