package resettokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
	"github.com/dmitrijs2005/commpro-auth/internal/dbx"
	"github.com/dmitrijs2005/commpro-auth/internal/server/models"
)

// SQLRepository implements Repository over dbx.DBTX.
type SQLRepository struct {
	db dbx.DBTX
}

// NewSQLRepository constructs a repository bound to the given DBTX.
func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func dbError(err error) error {
	return fmt.Errorf("db error: %w", dbx.Classify(err))
}

func (r *SQLRepository) Create(ctx context.Context, t *models.PasswordResetToken) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	query := `INSERT INTO password_reset_tokens (id, user_id, token, expires_at, used, used_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var usedAt *time.Time
	if t.UsedAt != nil {
		u := t.UsedAt.UTC()
		usedAt = &u
	}

	if _, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.Token, t.ExpiresAt.UTC(), t.Used, usedAt, t.CreatedAt.UTC()); err != nil {
		return dbError(err)
	}
	return nil
}

func (r *SQLRepository) Find(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	query := `SELECT id, user_id, token, expires_at, used, used_at, created_at
		FROM password_reset_tokens WHERE token = $1`

	t := &models.PasswordResetToken{}
	err := r.db.QueryRowContext(ctx, query, token).
		Scan(&t.ID, &t.UserID, &t.Token, &t.ExpiresAt, &t.Used, &t.UsedAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbError(err)
	}
	return t, nil
}

func (r *SQLRepository) DeleteUnusedByUser(ctx context.Context, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM password_reset_tokens WHERE user_id = $1 AND used = FALSE`, userID)
	if err != nil {
		return 0, dbError(err)
	}
	return dbx.RowsAffected(res), nil
}

func (r *SQLRepository) MarkUsed(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE password_reset_tokens SET used = TRUE, used_at = $2 WHERE id = $1 AND used = FALSE`,
		id, at.UTC())
	if err != nil {
		return dbError(err)
	}
	if dbx.RowsAffected(res) != 1 {
		return common.ErrTokenAlreadyUsed
	}
	return nil
}

func (r *SQLRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM password_reset_tokens WHERE expires_at <= $1`, now.UTC())
	if err != nil {
		return 0, dbError(err)
	}
	return dbx.RowsAffected(res), nil
}
