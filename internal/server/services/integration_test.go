package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
	"github.com/dmitrijs2005/commpro-auth/internal/cryptox"
	"github.com/dmitrijs2005/commpro-auth/internal/dbx"
	"github.com/dmitrijs2005/commpro-auth/internal/server/models"
	"github.com/dmitrijs2005/commpro-auth/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/commpro-auth/internal/server/repositories/repomanager"
)

// sqliteStore opens a migrated SQLite database in a temp dir.
func sqliteStore(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	ctx := context.Background()

	db, m, err := repomanager.Open(ctx, "sqlite:"+filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, m.RunMigrations(ctx, db))
	return db, m
}

// flakyRefresh fails the selected operations once armed.
type flakyRefresh struct {
	refreshtokens.Repository
	armed        *atomic.Bool
	failCreate   bool
	failDeleteBy bool
}

func (r flakyRefresh) Create(ctx context.Context, t *models.RefreshToken) error {
	if r.armed.Load() && r.failCreate {
		return assert.AnError
	}
	return r.Repository.Create(ctx, t)
}

func (r flakyRefresh) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	if r.armed.Load() && r.failDeleteBy {
		return 0, assert.AnError
	}
	return r.Repository.DeleteByUser(ctx, userID)
}

type flakyManager struct {
	repomanager.RepositoryManager
	armed        atomic.Bool
	failCreate   bool
	failDeleteBy bool
}

func (m *flakyManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return flakyRefresh{
		Repository:   m.RepositoryManager.RefreshTokens(db),
		armed:        &m.armed,
		failCreate:   m.failCreate,
		failDeleteBy: m.failDeleteBy,
	}
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func TestSQLite_RegisterLoginScenario(t *testing.T) {
	db, m := sqliteStore(t)
	f := assemble(t, db, m)
	ctx := context.Background()

	reg := f.register(t, "alice@x.com", "Secret123")

	res, err := f.svc.Login(ctx, LoginInput{Email: "alice@x.com", Password: "Secret123"}, RequestMeta{UserAgent: "test"})
	require.NoError(t, err)
	assert.False(t, res.Requires2FA)
	require.NotNil(t, res.Tokens)

	claims, err := f.issuer.VerifyAccessToken(res.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)
	assert.Equal(t, 2, countRows(t, db, "refresh_tokens"))

	_, err = f.svc.Register(ctx, RegisterInput{Email: "ALICE@x.com", Password: "Secret123"}, RequestMeta{})
	assert.ErrorIs(t, err, common.ErrEmailAlreadyRegistered)
}

func TestSQLite_RefreshReplayRejected(t *testing.T) {
	db, m := sqliteStore(t)
	f := assemble(t, db, m)
	ctx := context.Background()
	reg := f.register(t, "bob@x.com", "Secret123")

	pair, err := f.svc.Refresh(ctx, RefreshInput{RefreshToken: reg.Tokens.RefreshToken}, RequestMeta{})
	require.NoError(t, err)

	_, err = f.svc.Refresh(ctx, RefreshInput{RefreshToken: reg.Tokens.RefreshToken}, RequestMeta{})
	assert.ErrorIs(t, err, common.ErrTokenNotFound)

	_, err = f.svc.Refresh(ctx, RefreshInput{RefreshToken: pair.RefreshToken}, RequestMeta{})
	assert.NoError(t, err)
	assert.Equal(t, 1, countRows(t, db, "refresh_tokens"))
}

func TestSQLite_RefreshExpiredDeletesStaleRow(t *testing.T) {
	db, m := sqliteStore(t)
	f := assemble(t, db, m)
	ctx := context.Background()
	reg := f.register(t, "carol@x.com", "Secret123")

	f.clock.Advance(7*24*time.Hour + time.Second)

	_, err := f.svc.Refresh(ctx, RefreshInput{RefreshToken: reg.Tokens.RefreshToken}, RequestMeta{})
	assert.ErrorIs(t, err, common.ErrTokenExpired)
	assert.Equal(t, 0, countRows(t, db, "refresh_tokens"))
}

func TestSQLite_RotationIsAtomic(t *testing.T) {
	db, base := sqliteStore(t)
	m := &flakyManager{RepositoryManager: base, failCreate: true}
	f := assemble(t, db, m)
	ctx := context.Background()
	reg := f.register(t, "dan@x.com", "Secret123")

	m.armed.Store(true)
	_, err := f.svc.Refresh(ctx, RefreshInput{RefreshToken: reg.Tokens.RefreshToken}, RequestMeta{})
	require.ErrorIs(t, err, common.ErrorInternal)

	// the delete was rolled back together with the failed insert
	m.armed.Store(false)
	_, err = base.RefreshTokens(db).Find(ctx, reg.Tokens.RefreshToken)
	require.NoError(t, err)

	_, err = f.svc.Refresh(ctx, RefreshInput{RefreshToken: reg.Tokens.RefreshToken}, RequestMeta{})
	assert.NoError(t, err)
}

func TestSQLite_PasswordResetIsAtomic(t *testing.T) {
	db, base := sqliteStore(t)
	m := &flakyManager{RepositoryManager: base, failDeleteBy: true}
	f := assemble(t, db, m)
	ctx := context.Background()
	reg := f.register(t, "eve@x.com", "Secret123")
	before, err := base.Users(db).GetByID(ctx, reg.User.ID)
	require.NoError(t, err)

	token := f.requestReset(t, "eve@x.com")

	m.armed.Store(true)
	err = f.svc.ResetPassword(ctx, ResetPasswordInput{Token: token, NewPassword: "NewSecret1"})
	require.Error(t, err)

	after, err := base.Users(db).GetByID(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)

	row, err := base.ResetTokens(db).Find(ctx, token)
	require.NoError(t, err)
	assert.False(t, row.Used)

	m.armed.Store(false)
	require.NoError(t, f.svc.ResetPassword(ctx, ResetPasswordInput{Token: token, NewPassword: "NewSecret1"}))
	err = f.svc.ResetPassword(ctx, ResetPasswordInput{Token: token, NewPassword: "NewSecret2"})
	assert.ErrorIs(t, err, common.ErrTokenAlreadyUsed)
	assert.Equal(t, 0, countRows(t, db, "refresh_tokens"))
}

func TestSQLite_PasswordResetOnlyLatestValid(t *testing.T) {
	db, m := sqliteStore(t)
	f := assemble(t, db, m)
	ctx := context.Background()
	f.register(t, "fay@x.com", "Secret123")

	first := f.requestReset(t, "fay@x.com")
	second := f.requestReset(t, "fay@x.com")
	assert.Equal(t, 1, countRows(t, db, "password_reset_tokens"))

	err := f.svc.ResetPassword(ctx, ResetPasswordInput{Token: first, NewPassword: "NewSecret1"})
	assert.ErrorIs(t, err, common.ErrInvalidToken)
	assert.NoError(t, f.svc.ResetPassword(ctx, ResetPasswordInput{Token: second, NewPassword: "NewSecret1"}))

	_, err = f.svc.ForgotPassword(ctx, ForgotPasswordInput{Email: "ghost@x.com"})
	require.NoError(t, err)
	assert.Equal(t, 1, countRows(t, db, "password_reset_tokens"))
}

func TestSQLite_OneLiveResetTokenPerUser(t *testing.T) {
	db, m := sqliteStore(t)
	f := assemble(t, db, m)
	ctx := context.Background()
	reg := f.register(t, "flo@x.com", "Secret123")
	repo := m.ResetTokens(db)
	now := f.clock.Now()

	first := &models.PasswordResetToken{UserID: reg.User.ID, Token: "t1", ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	require.NoError(t, repo.Create(ctx, first))
	err := repo.Create(ctx, &models.PasswordResetToken{UserID: reg.User.ID, Token: "t2", ExpiresAt: now.Add(time.Hour), CreatedAt: now})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	// a used token no longer counts as live
	require.NoError(t, repo.MarkUsed(ctx, first.ID, now))
	assert.NoError(t, repo.Create(ctx, &models.PasswordResetToken{UserID: reg.User.ID, Token: "t3", ExpiresAt: now.Add(time.Hour), CreatedAt: now}))
}

func TestSQLite_ConcurrentResetRequests(t *testing.T) {
	db, m := sqliteStore(t)
	f := assemble(t, db, m)
	ctx := context.Background()
	f.register(t, "gil@x.com", "Secret123")

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			_, err := f.svc.ForgotPassword(ctx, ForgotPasswordInput{Email: "gil@x.com"})
			return err
		})
	}
	require.NoError(t, g.Wait())

	var live int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM password_reset_tokens WHERE used = FALSE`).Scan(&live))
	assert.Equal(t, 1, live)
}

func TestSQLite_TwoFactorScenario(t *testing.T) {
	db, m := sqliteStore(t)
	f := assemble(t, db, m)
	ctx := context.Background()
	reg := f.register(t, "gus@x.com", "Secret123")

	err := f.svc.Confirm2FA(ctx, reg.User.ID, TwoFactorCodeInput{Code: "123456"})
	assert.ErrorIs(t, err, common.ErrNoPendingSecret)

	_, err = f.svc.Enable2FA(ctx, reg.User.ID)
	require.NoError(t, err)
	enr, err := f.svc.Enable2FA(ctx, reg.User.ID)
	require.NoError(t, err)

	stored, err := m.Users(db).GetByID(ctx, reg.User.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.TwoFASecret)
	assert.Equal(t, enr.Secret, *stored.TwoFASecret, "second Begin overwrites the pending secret")

	require.NoError(t, f.svc.Confirm2FA(ctx, reg.User.ID, TwoFactorCodeInput{Code: f.code(t, enr.Secret)}))
	err = f.svc.Confirm2FA(ctx, reg.User.ID, TwoFactorCodeInput{Code: f.code(t, enr.Secret)})
	assert.ErrorIs(t, err, common.ErrAlreadyEnabled)

	res, err := f.svc.Login(ctx, LoginInput{Email: "gus@x.com", Password: "Secret123"}, RequestMeta{})
	require.NoError(t, err)
	assert.True(t, res.Requires2FA)
	assert.Nil(t, res.Tokens)

	res, err = f.svc.Verify2FA(ctx, Verify2FAInput{Email: "gus@x.com", Password: "Secret123", Code: f.code(t, enr.Secret)}, RequestMeta{})
	require.NoError(t, err)
	require.NotNil(t, res.Tokens)

	require.NoError(t, f.svc.Disable2FA(ctx, reg.User.ID, DisableTwoFactorInput{Password: "Secret123", Code: f.code(t, enr.Secret)}))
	stored, err = m.Users(db).GetByID(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TwoFADisabled, stored.TwoFAState())
}

func TestSQLite_ChangePasswordRevokesEverySession(t *testing.T) {
	db, m := sqliteStore(t)
	f := assemble(t, db, m)
	ctx := context.Background()
	reg := f.register(t, "hank@x.com", "Secret123")
	for i := 0; i < 2; i++ {
		_, err := f.svc.Login(ctx, LoginInput{Email: "hank@x.com", Password: "Secret123"}, RequestMeta{})
		require.NoError(t, err)
	}
	require.Equal(t, 3, countRows(t, db, "refresh_tokens"))

	err := f.svc.ChangePassword(ctx, reg.User.ID, ChangePasswordInput{CurrentPassword: "nope-nope", NewPassword: "NewSecret1"})
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Equal(t, 3, countRows(t, db, "refresh_tokens"))

	require.NoError(t, f.svc.ChangePassword(ctx, reg.User.ID, ChangePasswordInput{CurrentPassword: "Secret123", NewPassword: "NewSecret1"}))
	assert.Equal(t, 0, countRows(t, db, "refresh_tokens"))

	stored, err := m.Users(db).GetByID(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.NoError(t, cryptox.NewPasswordHasher(4).Compare(stored.PasswordHash, "NewSecret1"))
}

func TestSQLite_PurgeExpired(t *testing.T) {
	db, m := sqliteStore(t)
	f := assemble(t, db, m)
	ctx := context.Background()
	f.register(t, "ivy@x.com", "Secret123")
	f.requestReset(t, "ivy@x.com")

	f.clock.Advance(8 * 24 * time.Hour)

	n, err := f.svc.Sessions().PurgeExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = f.svc.Resets().PurgeExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
