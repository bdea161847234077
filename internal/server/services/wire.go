package services

import (
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/commpro-auth/internal/cryptox"
	"github.com/dmitrijs2005/commpro-auth/internal/logging"
	"github.com/dmitrijs2005/commpro-auth/internal/server/auth"
	"github.com/dmitrijs2005/commpro-auth/internal/server/config"
	"github.com/dmitrijs2005/commpro-auth/internal/server/limiter"
	"github.com/dmitrijs2005/commpro-auth/internal/server/notify"
	"github.com/dmitrijs2005/commpro-auth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/commpro-auth/internal/server/totp"
	"github.com/dmitrijs2005/commpro-auth/internal/timex"
)

// FromConfig assembles the full service graph from server configuration.
func FromConfig(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, sender notify.Sender,
	lim limiter.AttemptLimiter, log logging.Logger) (*UserService, *auth.TokenIssuer, error) {

	issuer, err := auth.NewTokenIssuer(auth.Config{
		AccessSecret:    cfg.AccessTokenSecret,
		RefreshSecret:   cfg.RefreshTokenSecret,
		AccessLifetime:  cfg.AccessTokenLifetime,
		RefreshLifetime: cfg.RefreshTokenLifetime,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("token issuer: %w", err)
	}

	resetLifetime, err := timex.ParseLifetime(cfg.ResetTokenLifetime)
	if err != nil {
		return nil, nil, fmt.Errorf("reset token lifetime: %w", err)
	}

	hasher := cryptox.NewPasswordHasher(cfg.BcryptCost)

	sessions := NewSessionRegistry(db, m, issuer, log, SessionOptions{
		StoreTimeout:           cfg.StoreTimeout,
		SingleSessionPerDevice: cfg.SingleSessionPerDevice,
	})
	twoFactor := NewTwoFactorService(db, m, totp.New(cfg.TOTPIssuer), hasher, lim, log, TwoFactorOptions{
		StoreTimeout: cfg.StoreTimeout,
		Window:       cfg.TOTPWindow,
	})
	resets := NewPasswordResetService(db, m, hasher, sender, lim, log, ResetOptions{
		StoreTimeout: cfg.StoreTimeout,
		Lifetime:     resetLifetime,
		URLBase:      cfg.ResetURLBase,
		LogTokens:    cfg.IsDevelopment(),
	})

	svc := NewUserService(db, m, Deps{
		Sessions:  sessions,
		TwoFactor: twoFactor,
		Resets:    resets,
		Hasher:    hasher,
		Limiter:   lim,
		Log:       log,
	}, cfg.StoreTimeout)

	return svc, issuer, nil
}
