package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
	"github.com/dmitrijs2005/commpro-auth/internal/cryptox"
	"github.com/dmitrijs2005/commpro-auth/internal/logging"
	"github.com/dmitrijs2005/commpro-auth/internal/server/limiter"
	"github.com/dmitrijs2005/commpro-auth/internal/server/models"
	"github.com/dmitrijs2005/commpro-auth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/commpro-auth/internal/server/totp"
)

const defaultTOTPWindow = 2

// Enrollment is handed to the user when two-factor setup starts.
type Enrollment struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauthUrl"`
	QRCode     string `json:"qrCode"`
}

// TwoFactorOptions tunes the TwoFactorService.
type TwoFactorOptions struct {
	StoreTimeout time.Duration
	// Window is the number of 30s steps accepted on either side of now.
	// Zero means defaultTOTPWindow.
	Window int
}

// TwoFactorService runs the enrollment state machine
// Disabled -> PendingConfirmation -> Enabled -> Disabled.
type TwoFactorService struct {
	store
	totp    *totp.Generator
	hasher  *cryptox.PasswordHasher
	limiter limiter.AttemptLimiter
	window  int
}

// NewTwoFactorService constructs a TwoFactorService. A nil limiter disables
// attempt limiting.
func NewTwoFactorService(db *sql.DB, m repomanager.RepositoryManager, gen *totp.Generator, hasher *cryptox.PasswordHasher,
	lim limiter.AttemptLimiter, log logging.Logger, opts TwoFactorOptions) *TwoFactorService {
	if lim == nil {
		lim = limiter.Noop{}
	}
	window := opts.Window
	if window <= 0 {
		window = defaultTOTPWindow
	}
	return &TwoFactorService{
		store:   newStore(db, m, opts.StoreTimeout, log),
		totp:    gen,
		hasher:  hasher,
		limiter: lim,
		window:  window,
	}
}

func (s *TwoFactorService) user(ctx context.Context, userID string) (*models.User, error) {
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

// Begin starts (or restarts) enrollment. A pending secret from an earlier
// Begin is replaced, so only the latest QR code can be confirmed.
func (s *TwoFactorService) Begin(ctx context.Context, userID string) (enr *Enrollment, err error) {
	ctx, span := startSpan(ctx, "TwoFactorService.Begin")
	defer func() { endSpan(span, err) }()

	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.TwoFAState() == models.TwoFAEnabled {
		return nil, common.ErrAlreadyEnabled
	}

	key, err := s.totp.GenerateSecret(user.Email)
	if err != nil {
		return nil, storeError(err)
	}
	qr, err := totp.QRCodeDataURL(key.URI)
	if err != nil {
		return nil, storeError(err)
	}

	cctx, cancel := s.call(ctx)
	defer cancel()

	if err := s.repomanager.Users(s.db).SetTwoFASecret(cctx, user.ID, key.Secret, s.clock()); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// the row is gone or a concurrent Confirm enabled it first
			if _, err := s.user(ctx, user.ID); err != nil {
				return nil, err
			}
			return nil, common.ErrAlreadyEnabled
		}
		return nil, storeError(err)
	}

	s.log.Info(ctx, "two-factor enrollment started", "user_id", user.ID)
	return &Enrollment{Secret: key.Secret, OTPAuthURL: key.URI, QRCode: qr}, nil
}

// Confirm enables two-factor authentication when code matches the pending
// secret.
func (s *TwoFactorService) Confirm(ctx context.Context, userID, code string) (err error) {
	ctx, span := startSpan(ctx, "TwoFactorService.Confirm")
	defer func() { endSpan(span, err) }()

	if err := s.limiter.Check(ctx, limiter.PurposeTwoFA, userID); err != nil {
		return err
	}

	user, err := s.user(ctx, userID)
	if err != nil {
		return err
	}

	switch user.TwoFAState() {
	case models.TwoFADisabled:
		return common.ErrNoPendingSecret
	case models.TwoFAEnabled:
		return common.ErrAlreadyEnabled
	}

	secret := *user.TwoFASecret
	if !s.totp.Verify(secret, code, s.window) {
		s.limiter.RecordFailure(ctx, limiter.PurposeTwoFA, userID)
		return common.ErrInvalidCode
	}

	cctx, cancel := s.call(ctx)
	defer cancel()

	if err := s.repomanager.Users(s.db).EnableTwoFA(cctx, user.ID, secret, s.clock()); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// a concurrent Begin replaced the secret the code was checked against
			return common.ErrInvalidCode
		}
		return storeError(err)
	}

	s.limiter.Reset(ctx, limiter.PurposeTwoFA, userID)
	s.log.Info(ctx, "two-factor enabled", "user_id", user.ID)
	return nil
}

// Disable turns two-factor authentication off after re-checking both the
// password and a current code.
func (s *TwoFactorService) Disable(ctx context.Context, userID, password, code string) (err error) {
	ctx, span := startSpan(ctx, "TwoFactorService.Disable")
	defer func() { endSpan(span, err) }()

	user, err := s.user(ctx, userID)
	if err != nil {
		return err
	}
	if user.TwoFAState() != models.TwoFAEnabled {
		return common.ErrNotEnabled
	}

	if err := s.limiter.Check(ctx, limiter.PurposeTwoFA, userID); err != nil {
		return err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			s.limiter.RecordFailure(ctx, limiter.PurposeTwoFA, userID)
			return common.ErrInvalidCredentials
		}
		return storeError(err)
	}
	if !s.totp.Verify(*user.TwoFASecret, code, s.window) {
		s.limiter.RecordFailure(ctx, limiter.PurposeTwoFA, userID)
		return common.ErrInvalidCode
	}

	cctx, cancel := s.call(ctx)
	defer cancel()

	if err := s.repomanager.Users(s.db).DisableTwoFA(cctx, user.ID, s.clock()); err != nil {
		return storeError(err)
	}

	s.limiter.Reset(ctx, limiter.PurposeTwoFA, userID)
	s.log.Info(ctx, "two-factor disabled", "user_id", user.ID)
	return nil
}

// VerifyDuringLogin checks code against an enabled user's secret. It never
// writes.
func (s *TwoFactorService) VerifyDuringLogin(user *models.User, code string) error {
	if user.TwoFAState() != models.TwoFAEnabled {
		return common.ErrNotEnabled
	}
	if !s.totp.Verify(*user.TwoFASecret, code, s.window) {
		return common.ErrInvalidCode
	}
	return nil
}
