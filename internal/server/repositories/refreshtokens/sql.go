package refreshtokens

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

const tokenColumns = `id, user_id, token, expires_at, device_id, device_name, ip_address, user_agent, created_at`

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

// Create inserts t, assigning an ID when it has none.
func (r *SQLRepository) Create(ctx context.Context, t *models.RefreshToken) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	query := `INSERT INTO refresh_tokens (` + tokenColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.Token, t.ExpiresAt.UTC(),
		t.DeviceID, t.DeviceName, t.IPAddress, t.UserAgent, t.CreatedAt.UTC())
	if err != nil {
		return dbError(err)
	}
	return nil
}

func scanToken(row interface{ Scan(...any) error }) (*models.RefreshToken, error) {
	t := &models.RefreshToken{}
	err := row.Scan(&t.ID, &t.UserID, &t.Token, &t.ExpiresAt,
		&t.DeviceID, &t.DeviceName, &t.IPAddress, &t.UserAgent, &t.CreatedAt)
	return t, err
}

func (r *SQLRepository) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	query := `SELECT ` + tokenColumns + ` FROM refresh_tokens WHERE token = $1`

	t, err := scanToken(r.db.QueryRowContext(ctx, query, token))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbError(err)
	}
	return t, nil
}

func (r *SQLRepository) ListByUser(ctx context.Context, userID string) ([]*models.RefreshToken, error) {
	query := `SELECT ` + tokenColumns + ` FROM refresh_tokens WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, dbError(err)
	}
	defer rows.Close()

	var result []*models.RefreshToken
	for rows.Next() {
		t, err := scanToken(rows)
		if err != nil {
			return nil, dbError(err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err)
	}
	return result, nil
}

func (r *SQLRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	return r.delete(ctx, `DELETE FROM refresh_tokens WHERE id = $1`, id)
}

func (r *SQLRepository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	return r.delete(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, token)
}

func (r *SQLRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	return r.delete(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
}

func (r *SQLRepository) DeleteByUserDevice(ctx context.Context, userID string, deviceID string) (int64, error) {
	return r.delete(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1 AND device_id = $2`, userID, deviceID)
}

func (r *SQLRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return r.delete(ctx, `DELETE FROM refresh_tokens WHERE expires_at <= $1`, now.UTC())
}

func (r *SQLRepository) delete(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, dbError(err)
	}
	return dbx.RowsAffected(res), nil
}
