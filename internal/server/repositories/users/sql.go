package users

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

const userColumns = `id, email, password_hash, role, is_active, two_fa_enabled, two_fa_secret,
		last_login, first_name, last_name, company_name, timezone, created_at, updated_at`

// SQLRepository implements Repository over dbx.DBTX (satisfied by *sql.DB
// or *sql.Tx). Queries are written to run unchanged on PostgreSQL and
// SQLite.
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

func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	query := `INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, string(user.Role), user.IsActive,
		user.TwoFAEnabled, user.TwoFASecret, utcPtr(user.LastLogin),
		user.Profile.FirstName, user.Profile.LastName, user.Profile.CompanyName, user.Profile.Timezone,
		user.CreatedAt.UTC(), user.UpdatedAt.UTC())
	if err != nil {
		return nil, dbError(err)
	}

	return user, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *SQLRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *SQLRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	var role string

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &role, &user.IsActive,
		&user.TwoFAEnabled, &user.TwoFASecret, &user.LastLogin,
		&user.Profile.FirstName, &user.Profile.LastName, &user.Profile.CompanyName, &user.Profile.Timezone,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbError(err)
	}

	user.Role = models.Role(role)
	return user, nil
}

func (r *SQLRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.update(ctx, `UPDATE users SET last_login = $2, updated_at = $2 WHERE id = $1`, id, at.UTC())
}

func (r *SQLRepository) UpdatePasswordHash(ctx context.Context, id string, hash string, at time.Time) error {
	return r.update(ctx, `UPDATE users SET password_hash = $2, updated_at = $3 WHERE id = $1`, id, hash, at.UTC())
}

func (r *SQLRepository) UpdateProfile(ctx context.Context, id string, p models.Profile, at time.Time) error {
	query := `UPDATE users
		SET first_name = $2, last_name = $3, company_name = $4, timezone = $5, updated_at = $6
		WHERE id = $1`
	return r.update(ctx, query, id, p.FirstName, p.LastName, p.CompanyName, p.Timezone, at.UTC())
}

func (r *SQLRepository) SetTwoFASecret(ctx context.Context, id string, secret string, at time.Time) error {
	query := `UPDATE users SET two_fa_secret = $2, updated_at = $3
		WHERE id = $1 AND two_fa_enabled = FALSE`
	return r.update(ctx, query, id, secret, at.UTC())
}

func (r *SQLRepository) EnableTwoFA(ctx context.Context, id string, secret string, at time.Time) error {
	query := `UPDATE users SET two_fa_enabled = TRUE, updated_at = $3
		WHERE id = $1 AND two_fa_secret = $2 AND two_fa_enabled = FALSE`
	return r.update(ctx, query, id, secret, at.UTC())
}

func (r *SQLRepository) DisableTwoFA(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE users SET two_fa_secret = NULL, two_fa_enabled = FALSE, updated_at = $2 WHERE id = $1`
	return r.update(ctx, query, id, at.UTC())
}

func (r *SQLRepository) update(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return dbError(err)
	}
	if dbx.RowsAffected(res) == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
