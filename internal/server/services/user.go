// Package services contains the server-side business logic: the session
// registry, two-factor enrollment, password reset and the UserService that
// fronts them for both transports.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
	"github.com/dmitrijs2005/commpro-auth/internal/cryptox"
	"github.com/dmitrijs2005/commpro-auth/internal/dbx"
	"github.com/dmitrijs2005/commpro-auth/internal/logging"
	"github.com/dmitrijs2005/commpro-auth/internal/server/auth"
	"github.com/dmitrijs2005/commpro-auth/internal/server/limiter"
	"github.com/dmitrijs2005/commpro-auth/internal/server/models"
	"github.com/dmitrijs2005/commpro-auth/internal/server/repositories/repomanager"
)

// AuthResult is returned by register, login and 2FA verification. Either
// Tokens is set, or Requires2FA is true and only Email is filled in.
type AuthResult struct {
	User        *models.PublicUser `json:"user,omitempty"`
	Tokens      *auth.TokenPair    `json:"tokens,omitempty"`
	Requires2FA bool               `json:"requires2FA,omitempty"`
	Email       string             `json:"email,omitempty"`
}

// Deps are the collaborators a UserService delegates to.
type Deps struct {
	Sessions  *SessionRegistry
	TwoFactor *TwoFactorService
	Resets    *PasswordResetService
	Hasher    *cryptox.PasswordHasher
	Limiter   limiter.AttemptLimiter
	Log       logging.Logger
}

// UserService is the entry point used by the transports. Every method
// validates its input before touching the store.
type UserService struct {
	store
	sessions  *SessionRegistry
	twoFactor *TwoFactorService
	resets    *PasswordResetService
	hasher    *cryptox.PasswordHasher
	limiter   limiter.AttemptLimiter
}

// NewUserService constructs a UserService.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, deps Deps, storeTimeout time.Duration) *UserService {
	lim := deps.Limiter
	if lim == nil {
		lim = limiter.Noop{}
	}
	return &UserService{
		store:     newStore(db, m, storeTimeout, deps.Log),
		sessions:  deps.Sessions,
		twoFactor: deps.TwoFactor,
		resets:    deps.Resets,
		hasher:    deps.Hasher,
		limiter:   lim,
	}
}

// Sessions exposes the registry, used by the cleanup worker.
func (s *UserService) Sessions() *SessionRegistry { return s.sessions }

// Resets exposes the reset flow, used by the cleanup worker.
func (s *UserService) Resets() *PasswordResetService { return s.resets }

// Register creates an account and its first session.
func (s *UserService) Register(ctx context.Context, in RegisterInput, meta RequestMeta) (res *AuthResult, err error) {
	ctx, span := startSpan(ctx, "UserService.Register")
	defer func() { endSpan(span, err) }()

	if err := Validate(in); err != nil {
		return nil, err
	}
	email := common.NormalizeEmail(in.Email)

	if existing, err := s.userByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, common.ErrEmailAlreadyRegistered
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, hashError("password", err)
	}

	now := s.clock()
	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		IsActive:     true,
		Profile: models.Profile{
			FirstName:   in.FirstName,
			LastName:    in.LastName,
			CompanyName: in.CompanyName,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	var pair *auth.TokenPair
	err = s.tx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Users(tx).Create(ctx, user); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				// lost a race against a concurrent registration
				return common.ErrEmailAlreadyRegistered
			}
			return err
		}
		var err error
		pair, err = s.sessions.Issue(ctx, tx, user, meta)
		return err
	})
	if err != nil {
		return nil, storeError(err)
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID)
	return &AuthResult{User: user.Public(), Tokens: pair}, nil
}

// Login checks the password. Accounts with two-factor enabled get
// Requires2FA and no tokens; the caller continues with Verify2FA.
func (s *UserService) Login(ctx context.Context, in LoginInput, meta RequestMeta) (res *AuthResult, err error) {
	ctx, span := startSpan(ctx, "UserService.Login")
	defer func() { endSpan(span, err) }()

	if err := Validate(in); err != nil {
		return nil, err
	}

	user, err := s.authenticate(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	if user.TwoFAState() == models.TwoFAEnabled {
		return &AuthResult{Requires2FA: true, Email: user.Email}, nil
	}

	meta = withDevice(meta, in.DeviceID, in.DeviceName)
	return s.completeLogin(ctx, user, meta)
}

// Verify2FA finishes a login for an account with two-factor enabled.
func (s *UserService) Verify2FA(ctx context.Context, in Verify2FAInput, meta RequestMeta) (res *AuthResult, err error) {
	ctx, span := startSpan(ctx, "UserService.Verify2FA")
	defer func() { endSpan(span, err) }()

	if err := Validate(in); err != nil {
		return nil, err
	}

	user, err := s.authenticate(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	if err := s.limiter.Check(ctx, limiter.PurposeTwoFA, user.ID); err != nil {
		return nil, err
	}
	if err := s.twoFactor.VerifyDuringLogin(user, in.Code); err != nil {
		if errors.Is(err, common.ErrInvalidCode) {
			s.limiter.RecordFailure(ctx, limiter.PurposeTwoFA, user.ID)
		}
		return nil, err
	}
	s.limiter.Reset(ctx, limiter.PurposeTwoFA, user.ID)

	meta = withDevice(meta, in.DeviceID, in.DeviceName)
	return s.completeLogin(ctx, user, meta)
}

// authenticate resolves email and password to an active user. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *UserService) authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = common.NormalizeEmail(email)

	if err := s.limiter.Check(ctx, limiter.PurposeLogin, email); err != nil {
		return nil, err
	}

	user, err := s.userByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.hasher.CompareDummy(password)
		s.limiter.RecordFailure(ctx, limiter.PurposeLogin, email)
		return nil, common.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			s.limiter.RecordFailure(ctx, limiter.PurposeLogin, email)
			return nil, common.ErrInvalidCredentials
		}
		return nil, storeError(err)
	}

	if !user.IsActive {
		return nil, common.ErrAccountDisabled
	}

	s.limiter.Reset(ctx, limiter.PurposeLogin, email)
	return user, nil
}

func (s *UserService) completeLogin(ctx context.Context, user *models.User, meta RequestMeta) (*AuthResult, error) {
	now := s.clock()

	var pair *auth.TokenPair
	err := s.tx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).UpdateLastLogin(ctx, user.ID, now); err != nil {
			return err
		}
		var err error
		pair, err = s.sessions.Issue(ctx, tx, user, meta)
		return err
	})
	if err != nil {
		return nil, storeError(err)
	}

	user.LastLogin = &now
	s.log.Info(ctx, "user logged in", "user_id", user.ID)
	return &AuthResult{User: user.Public(), Tokens: pair}, nil
}

func withDevice(meta RequestMeta, id, name string) RequestMeta {
	if id != "" {
		meta.DeviceID = id
	}
	if name != "" {
		meta.DeviceName = name
	}
	return meta
}

// Refresh rotates a refresh token.
func (s *UserService) Refresh(ctx context.Context, in RefreshInput, meta RequestMeta) (*auth.TokenPair, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	return s.sessions.Refresh(ctx, in.RefreshToken, meta)
}

// Logout revokes the session carrying the token. Unknown tokens are fine.
func (s *UserService) Logout(ctx context.Context, in RefreshInput) error {
	if err := Validate(in); err != nil {
		return err
	}
	return s.sessions.Revoke(ctx, in.RefreshToken)
}

// Me returns the caller's public profile.
func (s *UserService) Me(ctx context.Context, userID string) (*models.PublicUser, error) {
	user, err := s.userByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// ChangePassword replaces the password and signs the user out everywhere.
func (s *UserService) ChangePassword(ctx context.Context, userID string, in ChangePasswordInput) (err error) {
	ctx, span := startSpan(ctx, "UserService.ChangePassword")
	defer func() { endSpan(span, err) }()

	if err := Validate(in); err != nil {
		return err
	}

	user, err := s.userByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(user.PasswordHash, in.CurrentPassword); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return common.ErrInvalidCredentials
		}
		return storeError(err)
	}

	hash, err := s.hasher.Hash(in.NewPassword)
	if err != nil {
		return hashError("newPassword", err)
	}

	var revoked int64
	err = s.tx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).UpdatePasswordHash(ctx, user.ID, hash, s.clock()); err != nil {
			return err
		}
		var err error
		revoked, err = s.sessions.RevokeAll(ctx, tx, user.ID)
		return err
	})
	if err != nil {
		return storeError(err)
	}

	s.log.Info(ctx, "password changed", "user_id", user.ID, "sessions_revoked", revoked)
	return nil
}

// UpdateProfile applies the non-nil fields of in.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*models.PublicUser, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	user, err := s.userByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := &user.Profile
	if in.FirstName != nil {
		p.FirstName = in.FirstName
	}
	if in.LastName != nil {
		p.LastName = in.LastName
	}
	if in.CompanyName != nil {
		p.CompanyName = in.CompanyName
	}
	if in.Timezone != nil {
		p.Timezone = in.Timezone
	}

	now := s.clock()

	ctx, cancel := s.call(ctx)
	defer cancel()

	if err := s.repomanager.Users(s.db).UpdateProfile(ctx, user.ID, user.Profile, now); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, storeError(err)
	}
	user.UpdatedAt = now
	return user.Public(), nil
}

// ForgotPassword starts a password reset. The message never reveals
// whether the email is registered.
func (s *UserService) ForgotPassword(ctx context.Context, in ForgotPasswordInput) (string, error) {
	if err := Validate(in); err != nil {
		return "", err
	}
	return s.resets.Request(ctx, in.Email)
}

// ResetPassword redeems a reset token.
func (s *UserService) ResetPassword(ctx context.Context, in ResetPasswordInput) error {
	if err := Validate(in); err != nil {
		return err
	}
	return s.resets.Reset(ctx, in.Token, in.NewPassword)
}

// Enable2FA starts two-factor enrollment for the caller.
func (s *UserService) Enable2FA(ctx context.Context, userID string) (*Enrollment, error) {
	return s.twoFactor.Begin(ctx, userID)
}

// Confirm2FA finishes enrollment.
func (s *UserService) Confirm2FA(ctx context.Context, userID string, in TwoFactorCodeInput) error {
	if err := Validate(in); err != nil {
		return err
	}
	return s.twoFactor.Confirm(ctx, userID, in.Code)
}

// Disable2FA turns two-factor authentication off.
func (s *UserService) Disable2FA(ctx context.Context, userID string, in DisableTwoFactorInput) error {
	if err := Validate(in); err != nil {
		return err
	}
	return s.twoFactor.Disable(ctx, userID, in.Password, in.Code)
}

// userByEmail returns nil without error when no account has email.
func (s *UserService) userByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := s.call(ctx)
	defer cancel()

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, storeError(err)
	}
	return user, nil
}

// userByID resolves the subject of an access token. A vanished account is
// reported as ErrorUnauthorized.
func (s *UserService) userByID(ctx context.Context, userID string) (*models.User, error) {
	ctx, cancel := s.call(ctx)
	defer cancel()

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, storeError(err)
	}
	return user, nil
}
