package services

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"time"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
	"github.com/dmitrijs2005/commpro-auth/internal/cryptox"
	"github.com/dmitrijs2005/commpro-auth/internal/dbx"
	"github.com/dmitrijs2005/commpro-auth/internal/logging"
	"github.com/dmitrijs2005/commpro-auth/internal/server/limiter"
	"github.com/dmitrijs2005/commpro-auth/internal/server/models"
	"github.com/dmitrijs2005/commpro-auth/internal/server/notify"
	"github.com/dmitrijs2005/commpro-auth/internal/server/repositories/repomanager"
)

const (
	resetTokenBytes      = 32
	defaultResetLifetime = 15 * time.Minute
	resetIssueAttempts   = 3
)

// ResetOptions tunes the PasswordResetService.
type ResetOptions struct {
	StoreTimeout time.Duration
	Lifetime     time.Duration
	// URLBase is the frontend page the emailed link points at; the token
	// is appended as the "token" query parameter.
	URLBase string
	// LogTokens writes raw reset tokens to the log. Development only.
	LogTokens bool
}

// PasswordResetService issues and redeems single-use reset tokens.
type PasswordResetService struct {
	store
	hasher    *cryptox.PasswordHasher
	sender    notify.Sender
	limiter   limiter.AttemptLimiter
	lifetime  time.Duration
	urlBase   string
	logTokens bool
}

// NewPasswordResetService constructs a PasswordResetService.
func NewPasswordResetService(db *sql.DB, m repomanager.RepositoryManager, hasher *cryptox.PasswordHasher,
	sender notify.Sender, lim limiter.AttemptLimiter, log logging.Logger, opts ResetOptions) *PasswordResetService {
	if lim == nil {
		lim = limiter.Noop{}
	}
	lifetime := opts.Lifetime
	if lifetime <= 0 {
		lifetime = defaultResetLifetime
	}
	return &PasswordResetService{
		store:     newStore(db, m, opts.StoreTimeout, log),
		hasher:    hasher,
		sender:    sender,
		limiter:   lim,
		lifetime:  lifetime,
		urlBase:   opts.URLBase,
		logTokens: opts.LogTokens,
	}
}

// Request starts a reset for email. The returned message is the same
// whether or not the account exists; only store failures are reported.
func (s *PasswordResetService) Request(ctx context.Context, email string) (msg string, err error) {
	ctx, span := startSpan(ctx, "PasswordResetService.Request")
	defer func() { endSpan(span, err) }()

	email = common.NormalizeEmail(email)

	if err := s.limiter.Check(ctx, limiter.PurposeReset, email); err != nil {
		s.log.Warn(ctx, "password reset throttled", "email", logging.Redact(email))
		return common.ResetRequestedMessage, nil
	}
	// every request counts, the limiter only bounds how many emails go out
	s.limiter.RecordFailure(ctx, limiter.PurposeReset, email)

	user, err := s.lookup(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return common.ResetRequestedMessage, nil
	}

	token, err := common.MakeRandHexString(resetTokenBytes)
	if err != nil {
		return "", storeError(err)
	}

	if err := s.issue(ctx, user.ID, token); err != nil {
		return "", storeError(err)
	}

	if s.logTokens {
		s.log.Info(ctx, "password reset token issued", "user_id", user.ID, "token", token)
	} else {
		s.log.Info(ctx, "password reset token issued", "user_id", user.ID)
	}

	if s.sender != nil {
		if err := s.sender.SendPasswordResetEmail(ctx, user.Email, s.link(token)); err != nil {
			s.log.Error(ctx, "password reset email failed", "user_id", user.ID, "error", err)
		}
	}

	return common.ResetRequestedMessage, nil
}

// issue replaces the user's unused tokens with token. The store allows one
// unused token per user, so a request racing another one for the same user
// conflicts on insert; the retry then deletes the winner's row and the
// latest request keeps the only live token.
func (s *PasswordResetService) issue(ctx context.Context, userID, token string) error {
	var err error
	for attempt := 0; attempt < resetIssueAttempts; attempt++ {
		now := s.clock()
		err = s.tx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
			repo := s.repomanager.ResetTokens(tx)
			if _, err := repo.DeleteUnusedByUser(ctx, userID); err != nil {
				return err
			}
			return repo.Create(ctx, &models.PasswordResetToken{
				UserID:    userID,
				Token:     token,
				ExpiresAt: now.Add(s.lifetime),
				CreatedAt: now,
			})
		})
		if !errors.Is(err, common.ErrorAlreadyExists) {
			return err
		}
		s.log.Debug(ctx, "password reset issuance conflicted, retrying", "user_id", userID, "attempt", attempt+1)
	}
	return err
}

func (s *PasswordResetService) link(token string) string {
	return s.urlBase + "?token=" + url.QueryEscape(token)
}

func (s *PasswordResetService) lookup(ctx context.Context, email string) (*models.User, error) {
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

// Reset redeems token: the password changes, the token is marked used and
// every session of the user is revoked, all in one transaction.
func (s *PasswordResetService) Reset(ctx context.Context, token, newPassword string) (err error) {
	ctx, span := startSpan(ctx, "PasswordResetService.Reset")
	defer func() { endSpan(span, err) }()

	row, err := s.find(ctx, token)
	if err != nil {
		return err
	}
	if row.Used {
		return common.ErrTokenAlreadyUsed
	}
	now := s.clock()
	if row.Expired(now) {
		return common.ErrTokenExpired
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return hashError("newPassword", err)
	}

	err = s.tx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).UpdatePasswordHash(ctx, row.UserID, hash, now); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidToken
			}
			return err
		}
		if err := s.repomanager.ResetTokens(tx).MarkUsed(ctx, row.ID, now); err != nil {
			return err
		}
		_, err := s.repomanager.RefreshTokens(tx).DeleteByUser(ctx, row.UserID)
		return err
	})
	if err != nil {
		return storeError(err)
	}

	s.log.Info(ctx, "password reset completed", "user_id", row.UserID)
	return nil
}

func (s *PasswordResetService) find(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	ctx, cancel := s.call(ctx)
	defer cancel()

	row, err := s.repomanager.ResetTokens(s.db).Find(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, storeError(err)
	}
	return row, nil
}

// PurgeExpired deletes reset tokens past their expiry.
func (s *PasswordResetService) PurgeExpired(ctx context.Context) (n int64, err error) {
	ctx, span := startSpan(ctx, "PasswordResetService.PurgeExpired")
	defer func() { endSpan(span, err) }()

	ctx, cancel := s.call(ctx)
	defer cancel()

	n, err = s.repomanager.ResetTokens(s.db).DeleteExpired(ctx, s.clock())
	if err != nil {
		return 0, storeError(err)
	}
	return n, nil
}
