// Package auth issues and verifies the HS256 access and refresh tokens.
// Access and refresh tokens are signed with distinct secrets so a leaked
// access secret cannot mint refresh tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
	"github.com/dmitrijs2005/commpro-auth/internal/server/models"
	"github.com/dmitrijs2005/commpro-auth/internal/timex"
)

// AccessClaims are carried by access tokens.
type AccessClaims struct {
	jwt.RegisteredClaims
	UserID string      `json:"userId"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
}

// RefreshClaims are carried by refresh tokens. The registered ID (jti)
// keeps two tokens minted in the same second distinct.
type RefreshClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// TokenPair is what a successful authentication hands back.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Config configures a TokenIssuer. Lifetimes use the "<n><unit>" format.
type Config struct {
	AccessSecret    string
	RefreshSecret   string
	AccessLifetime  string
	RefreshLifetime string
}

// TokenIssuer signs and verifies tokens. It holds no mutable state and is
// safe for concurrent use.
type TokenIssuer struct {
	accessSecret    []byte
	refreshSecret   []byte
	accessLifetime  time.Duration
	refreshLifetime time.Duration
	now             func() time.Time
}

// NewTokenIssuer validates cfg and builds an issuer.
func NewTokenIssuer(cfg Config) (*TokenIssuer, error) {
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, errors.New("token secrets must not be empty")
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		return nil, errors.New("access and refresh secrets must differ")
	}

	access, err := timex.ParseLifetime(cfg.AccessLifetime)
	if err != nil {
		return nil, fmt.Errorf("access lifetime: %w", err)
	}
	refresh, err := timex.ParseLifetime(cfg.RefreshLifetime)
	if err != nil {
		return nil, fmt.Errorf("refresh lifetime: %w", err)
	}

	return &TokenIssuer{
		accessSecret:    []byte(cfg.AccessSecret),
		refreshSecret:   []byte(cfg.RefreshSecret),
		accessLifetime:  access,
		refreshLifetime: refresh,
		now:             time.Now,
	}, nil
}

// WithClock returns a copy of the issuer that reads time from now.
func (i *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	c := *i
	c.now = now
	return &c
}

func (i *TokenIssuer) registered(lifetime time.Duration) jwt.RegisteredClaims {
	now := i.now()
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
	}
}

// IssueAccessToken signs an access token for the given identity.
func (i *TokenIssuer) IssueAccessToken(userID, email string, role models.Role) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AccessClaims{
		RegisteredClaims: i.registered(i.accessLifetime),
		UserID:           userID,
		Email:            email,
		Role:             role,
	})
	return token.SignedString(i.accessSecret)
}

// IssueRefreshToken signs a refresh token for userID.
func (i *TokenIssuer) IssueRefreshToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, RefreshClaims{
		RegisteredClaims: i.registered(i.refreshLifetime),
		UserID:           userID,
	})
	return token.SignedString(i.refreshSecret)
}

// IssuePair signs a fresh access and refresh token.
func (i *TokenIssuer) IssuePair(user *models.User) (*TokenPair, error) {
	access, err := i.IssueAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := i.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccessToken checks signature, algorithm and expiry.
func (i *TokenIssuer) VerifyAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := i.parse(tokenString, claims, i.accessSecret); err != nil {
		return nil, err
	}
	if claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

// VerifyRefreshToken checks signature, algorithm and expiry.
func (i *TokenIssuer) VerifyRefreshToken(tokenString string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := i.parse(tokenString, claims, i.refreshSecret); err != nil {
		return nil, err
	}
	if claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

// parse returns common.ErrInvalidToken for every failure. An expired but
// otherwise valid token additionally matches common.ErrTokenExpired.
func (i *TokenIssuer) parse(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return fmt.Errorf("%w: %w", common.ErrInvalidToken, common.ErrTokenExpired)
		}
		return common.ErrInvalidToken
	}
	if !token.Valid {
		return common.ErrInvalidToken
	}
	return nil
}

// AccessExpiry and RefreshExpiry return the expiry instant of a token
// issued now.
func (i *TokenIssuer) AccessExpiry() time.Time  { return i.now().Add(i.accessLifetime) }
func (i *TokenIssuer) RefreshExpiry() time.Time { return i.now().Add(i.refreshLifetime) }

// ExpiryDate converts a lifetime expression into an absolute instant.
func (i *TokenIssuer) ExpiryDate(lifetime string) (time.Time, error) {
	return timex.ExpiryDate(i.now(), lifetime)
}
