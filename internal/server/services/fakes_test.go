package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
	"github.com/dmitrijs2005/commpro-auth/internal/cryptox"
	"github.com/dmitrijs2005/commpro-auth/internal/dbx"
	"github.com/dmitrijs2005/commpro-auth/internal/logging"
	"github.com/dmitrijs2005/commpro-auth/internal/server/auth"
	"github.com/dmitrijs2005/commpro-auth/internal/server/limiter"
	"github.com/dmitrijs2005/commpro-auth/internal/server/models"
	"github.com/dmitrijs2005/commpro-auth/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/commpro-auth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/commpro-auth/internal/server/repositories/resettokens"
	"github.com/dmitrijs2005/commpro-auth/internal/server/repositories/users"
	"github.com/dmitrijs2005/commpro-auth/internal/server/totp"
)

// --- in-memory repositories ---
//
// The fakes ignore the DBTX they are bound to, so a rolled back
// transaction is not undone. Rollback behaviour is covered by the sqlite
// suite in integration_test.go.

type fakeUsers struct {
	mu   sync.Mutex
	rows map[string]*models.User
	err  error
}

func clone(u *models.User) *models.User {
	c := *u
	return &c
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, row := range f.rows {
		if row.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	f.rows[u.ID] = clone(u)
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.rows[id]; ok {
		return clone(u), nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.rows {
		if u.Email == email {
			return clone(u), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) update(id string, fn func(u *models.User) bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	u, ok := f.rows[id]
	if !ok || !fn(u) {
		return common.ErrorNotFound
	}
	return nil
}

func (f *fakeUsers) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	return f.update(id, func(u *models.User) bool { u.LastLogin = &at; return true })
}

func (f *fakeUsers) UpdatePasswordHash(_ context.Context, id, hash string, at time.Time) error {
	return f.update(id, func(u *models.User) bool { u.PasswordHash = hash; u.UpdatedAt = at; return true })
}

func (f *fakeUsers) UpdateProfile(_ context.Context, id string, p models.Profile, at time.Time) error {
	return f.update(id, func(u *models.User) bool { u.Profile = p; u.UpdatedAt = at; return true })
}

func (f *fakeUsers) SetTwoFASecret(_ context.Context, id, secret string, at time.Time) error {
	return f.update(id, func(u *models.User) bool {
		if u.TwoFAEnabled {
			return false
		}
		u.TwoFASecret = &secret
		u.UpdatedAt = at
		return true
	})
}

func (f *fakeUsers) EnableTwoFA(_ context.Context, id, secret string, at time.Time) error {
	return f.update(id, func(u *models.User) bool {
		if u.TwoFAEnabled || u.TwoFASecret == nil || *u.TwoFASecret != secret {
			return false
		}
		u.TwoFAEnabled = true
		u.UpdatedAt = at
		return true
	})
}

func (f *fakeUsers) DisableTwoFA(_ context.Context, id string, at time.Time) error {
	return f.update(id, func(u *models.User) bool {
		u.TwoFASecret = nil
		u.TwoFAEnabled = false
		u.UpdatedAt = at
		return true
	})
}

type fakeRefresh struct {
	mu   sync.Mutex
	rows map[string]*models.RefreshToken
	err  error
}

func (f *fakeRefresh) Create(_ context.Context, t *models.RefreshToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, row := range f.rows {
		if row.Token == t.Token {
			return common.ErrorAlreadyExists
		}
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	c := *t
	f.rows[t.ID] = &c
	return nil
}

func (f *fakeRefresh) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, row := range f.rows {
		if row.Token == token {
			c := *row
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeRefresh) ListByUser(_ context.Context, userID string) ([]*models.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.RefreshToken
	for _, row := range f.rows {
		if row.UserID == userID {
			c := *row
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRefresh) deleteWhere(match func(*models.RefreshToken) bool) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for id, row := range f.rows {
		if match(row) {
			delete(f.rows, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeRefresh) DeleteByID(_ context.Context, id string) (int64, error) {
	return f.deleteWhere(func(r *models.RefreshToken) bool { return r.ID == id })
}

func (f *fakeRefresh) DeleteByToken(_ context.Context, token string) (int64, error) {
	return f.deleteWhere(func(r *models.RefreshToken) bool { return r.Token == token })
}

func (f *fakeRefresh) DeleteByUser(_ context.Context, userID string) (int64, error) {
	return f.deleteWhere(func(r *models.RefreshToken) bool { return r.UserID == userID })
}

func (f *fakeRefresh) DeleteByUserDevice(_ context.Context, userID, deviceID string) (int64, error) {
	return f.deleteWhere(func(r *models.RefreshToken) bool {
		return r.UserID == userID && r.DeviceID != nil && *r.DeviceID == deviceID
	})
}

func (f *fakeRefresh) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	return f.deleteWhere(func(r *models.RefreshToken) bool { return r.Expired(now) })
}

func (f *fakeRefresh) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type fakeResets struct {
	mu   sync.Mutex
	rows map[string]*models.PasswordResetToken
	err  error
}

func (f *fakeResets) Create(_ context.Context, t *models.PasswordResetToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, row := range f.rows {
		if row.UserID == t.UserID && !row.Used {
			return common.ErrorAlreadyExists
		}
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	c := *t
	f.rows[t.ID] = &c
	return nil
}

func (f *fakeResets) Find(_ context.Context, token string) (*models.PasswordResetToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, row := range f.rows {
		if row.Token == token {
			c := *row
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeResets) DeleteUnusedByUser(_ context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, row := range f.rows {
		if row.UserID == userID && !row.Used {
			delete(f.rows, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeResets) MarkUsed(_ context.Context, id string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.Used {
		return common.ErrTokenAlreadyUsed
	}
	row.Used = true
	row.UsedAt = &at
	return nil
}

func (f *fakeResets) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, row := range f.rows {
		if row.Expired(now) {
			delete(f.rows, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeResets) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type fakeManager struct {
	users   *fakeUsers
	refresh *fakeRefresh
	resets  *fakeResets
}

func newFakeManager() *fakeManager {
	return &fakeManager{
		users:   &fakeUsers{rows: map[string]*models.User{}},
		refresh: &fakeRefresh{rows: map[string]*models.RefreshToken{}},
		resets:  &fakeResets{rows: map[string]*models.PasswordResetToken{}},
	}
}

func (m *fakeManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeManager) Users(dbx.DBTX) users.Repository                 { return m.users }
func (m *fakeManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.refresh }
func (m *fakeManager) ResetTokens(dbx.DBTX) resettokens.Repository     { return m.resets }

// --- collaborators ---

type fakeLimiter struct {
	mu       sync.Mutex
	blocked  map[string]bool
	failures map[string]int
	resets   map[string]int
}

func newFakeLimiter() *fakeLimiter {
	return &fakeLimiter{blocked: map[string]bool{}, failures: map[string]int{}, resets: map[string]int{}}
}

func limKey(p limiter.Purpose, subject string) string { return string(p) + ":" + subject }

func (l *fakeLimiter) Check(_ context.Context, p limiter.Purpose, subject string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.blocked[limKey(p, subject)] {
		return common.ErrTooManyAttempts
	}
	return nil
}

func (l *fakeLimiter) RecordFailure(_ context.Context, p limiter.Purpose, subject string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures[limKey(p, subject)]++
}

func (l *fakeLimiter) Reset(_ context.Context, p limiter.Purpose, subject string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resets[limKey(p, subject)]++
}

func (l *fakeLimiter) block(p limiter.Purpose, subject string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.blocked[limKey(p, subject)] = true
}

func (l *fakeLimiter) failuresFor(p limiter.Purpose, subject string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failures[limKey(p, subject)]
}

type sentMail struct {
	email string
	link  string
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (s *fakeSender) SendPasswordResetEmail(_ context.Context, email, link string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentMail{email: email, link: link})
	return s.err
}

func (s *fakeSender) last(t *testing.T) sentMail {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.sent, "no email sent")
	return s.sent[len(s.sent)-1]
}

// clock is a manually advanced time source shared by every component of
// a fixture.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// --- fixture ---

type fixture struct {
	svc     *UserService
	m       *fakeManager
	db      *sql.DB
	issuer  *auth.TokenIssuer
	totp    *totp.Generator
	clock   *clock
	limiter *fakeLimiter
	sender  *fakeSender
}

// txDB returns an empty in-memory sqlite database. Services only use it to
// begin and commit transactions; the fakes hold the data.
func txDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newIssuer(t *testing.T, c *clock) *auth.TokenIssuer {
	t.Helper()
	issuer, err := auth.NewTokenIssuer(auth.Config{
		AccessSecret:    "access-secret",
		RefreshSecret:   "refresh-secret",
		AccessLifetime:  "15m",
		RefreshLifetime: "7d",
	})
	require.NoError(t, err)
	return issuer.WithClock(c.Now)
}

type fixtureOption func(*SessionOptions)

func singleSessionPerDevice(o *SessionOptions) { o.SingleSessionPerDevice = true }

// assemble wires the service graph over db and m with a fake clock.
func assemble(t *testing.T, db *sql.DB, m repomanager.RepositoryManager, opts ...fixtureOption) *fixture {
	t.Helper()

	c := &clock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	issuer := newIssuer(t, c)
	gen := totp.New("CommPro").WithClock(c.Now)
	hasher := cryptox.NewPasswordHasher(bcrypt.MinCost)
	lim := newFakeLimiter()
	sender := &fakeSender{}
	log := logging.Nop{}

	sessOpts := SessionOptions{StoreTimeout: time.Second}
	for _, o := range opts {
		o(&sessOpts)
	}

	sessions := NewSessionRegistry(db, m, issuer, log, sessOpts)
	twoFactor := NewTwoFactorService(db, m, gen, hasher, lim, log, TwoFactorOptions{StoreTimeout: time.Second, Window: 2})
	resets := NewPasswordResetService(db, m, hasher, sender, lim, log, ResetOptions{
		StoreTimeout: time.Second,
		URLBase:      "http://localhost:3000/reset-password",
	})
	svc := NewUserService(db, m, Deps{
		Sessions:  sessions,
		TwoFactor: twoFactor,
		Resets:    resets,
		Hasher:    hasher,
		Limiter:   lim,
		Log:       log,
	}, time.Second)

	for _, s := range []*store{&sessions.store, &twoFactor.store, &resets.store, &svc.store} {
		s.now = c.Now
	}

	f := &fixture{svc: svc, db: db, issuer: issuer, totp: gen, clock: c, limiter: lim, sender: sender}
	if fm, ok := m.(*fakeManager); ok {
		f.m = fm
	}
	return f
}

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()
	return assemble(t, txDB(t), newFakeManager(), opts...)
}

func (f *fixture) register(t *testing.T, email, password string) *AuthResult {
	t.Helper()
	res, err := f.svc.Register(context.Background(), RegisterInput{Email: email, Password: password}, RequestMeta{})
	require.NoError(t, err)
	return res
}

// code returns the current TOTP code for secret.
func (f *fixture) code(t *testing.T, secret string) string {
	t.Helper()
	code, err := f.totp.Code(secret, f.clock.Now())
	require.NoError(t, err)
	return code
}

// wrongCode returns a well-formed code that does not match secret within
// the window.
func (f *fixture) wrongCode(t *testing.T, secret string) string {
	t.Helper()
	for _, c := range []string{"000000", "111111", "222222", "333333", "444444", "555555"} {
		if !f.totp.Verify(secret, c, 2) {
			return c
		}
	}
	t.Fatal("could not find a non-matching code")
	return ""
}

// enable2FA walks a user through enrollment and returns the secret.
func (f *fixture) enable2FA(t *testing.T, userID string) string {
	t.Helper()
	ctx := context.Background()
	enr, err := f.svc.Enable2FA(ctx, userID)
	require.NoError(t, err)
	require.NoError(t, f.svc.Confirm2FA(ctx, userID, TwoFactorCodeInput{Code: f.code(t, enr.Secret)}))
	return enr.Secret
}
