package resettokens

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
	"github.com/dmitrijs2005/commpro-auth/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	expires := time.Date(2026, 1, 1, 0, 15, 0, 0, time.UTC)
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+password_reset_tokens\s*\(id,\s*user_id,\s*token,\s*expires_at,\s*used,\s*used_at,\s*created_at\)`).
		WithArgs(sqlmock.AnyArg(), "u1", "abc", expires, false, nil, created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tok := &models.PasswordResetToken{UserID: "u1", Token: "abc", ExpiresAt: expires, CreatedAt: created}
	require.NoError(t, repo.Create(context.Background(), tok))
	assert.NotEmpty(t, tok.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFind(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		now := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"id", "user_id", "token", "expires_at", "used", "used_at", "created_at"}).
			AddRow("p1", "u1", "abc", now, true, now, now)
		mock.ExpectQuery(`(?s)FROM\s+password_reset_tokens\s+WHERE\s+token\s*=\s*\$1`).
			WithArgs("abc").
			WillReturnRows(rows)

		got, err := repo.Find(context.Background(), "abc")
		require.NoError(t, err)
		assert.True(t, got.Used)
		require.NotNil(t, got.UsedAt)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(`FROM\s+password_reset_tokens`).WillReturnError(sql.ErrNoRows)

		_, err := repo.Find(context.Background(), "zzz")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestDeleteUnusedByUser(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+password_reset_tokens\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+used\s*=\s*FALSE`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.DeleteUnusedByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestMarkUsed(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 5, 0, 0, time.UTC)
	q := `UPDATE\s+password_reset_tokens\s+SET\s+used\s*=\s*TRUE,\s*used_at\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1\s+AND\s+used\s*=\s*FALSE`

	t.Run("flips once", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q).WithArgs("p1", at).WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.MarkUsed(context.Background(), "p1", at))
	})

	t.Run("already used", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q).WithArgs("p1", at).WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.MarkUsed(context.Background(), "p1", at), common.ErrTokenAlreadyUsed)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q).WillReturnError(errors.New("db down"))
		err := repo.MarkUsed(context.Background(), "p1", at)
		require.Error(t, err)
		assert.NotErrorIs(t, err, common.ErrTokenAlreadyUsed)
	})
}

func TestDeleteExpired(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`DELETE\s+FROM\s+password_reset_tokens\s+WHERE\s+expires_at\s*<=\s*\$1`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
}
