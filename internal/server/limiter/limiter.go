// Package limiter throttles repeated credential failures per subject
// (email or user id) using Redis counters with a cooldown TTL.
package limiter

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
	"github.com/dmitrijs2005/commpro-auth/internal/logging"
)

// Purpose namespaces counters so a burst of bad 2FA codes does not lock
// out password login and vice versa.
type Purpose string

const (
	PurposeLogin Purpose = "login"
	PurposeTwoFA Purpose = "2fa"
	PurposeReset Purpose = "reset"
)

// AttemptLimiter is consulted before credentials are checked. Check fails
// with common.ErrTooManyAttempts once a subject used up its attempts.
type AttemptLimiter interface {
	Check(ctx context.Context, purpose Purpose, subject string) error
	RecordFailure(ctx context.Context, purpose Purpose, subject string)
	Reset(ctx context.Context, purpose Purpose, subject string)
}

// Config holds the thresholds. Zero values fall back to 5 attempts per
// 15 minutes.
type Config struct {
	MaxAttempts int
	Cooldown    time.Duration
}

// RedisLimiter implements AttemptLimiter. Redis failures are logged and
// treated as "not limited".
type RedisLimiter struct {
	redis       redis.UniversalClient
	maxAttempts int64
	cooldown    time.Duration
	log         logging.Logger
}

// NewRedisLimiter builds a limiter over client.
func NewRedisLimiter(client redis.UniversalClient, cfg Config, log logging.Logger) *RedisLimiter {
	max := cfg.MaxAttempts
	if max <= 0 {
		max = 5
	}
	cd := cfg.Cooldown
	if cd <= 0 {
		cd = 15 * time.Minute
	}
	return &RedisLimiter{redis: client, maxAttempts: int64(max), cooldown: cd, log: log}
}

func key(purpose Purpose, subject string) string {
	return "att:" + string(purpose) + ":" + subject
}

func (l *RedisLimiter) Check(ctx context.Context, purpose Purpose, subject string) error {
	count, err := l.redis.Get(ctx, key(purpose, subject)).Int64()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			l.log.Warn(ctx, "attempt limiter unavailable", "purpose", purpose, "error", err)
		}
		return nil
	}
	if count >= l.maxAttempts {
		return common.ErrTooManyAttempts
	}
	return nil
}

// RecordFailure bumps the counter and starts its cooldown in one MULTI.
// ExpireNX anchors the window at the first failure.
func (l *RedisLimiter) RecordFailure(ctx context.Context, purpose Purpose, subject string) {
	k := key(purpose, subject)

	_, err := l.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, l.cooldown)
		return nil
	})
	if err != nil {
		l.log.Warn(ctx, "attempt limiter unavailable", "purpose", purpose, "error", err)
	}
}

func (l *RedisLimiter) Reset(ctx context.Context, purpose Purpose, subject string) {
	if err := l.redis.Del(ctx, key(purpose, subject)).Err(); err != nil {
		l.log.Warn(ctx, "attempt limiter reset failed", "purpose", purpose, "error", err)
	}
}

// Noop never limits. Used when no Redis address is configured.
type Noop struct{}

func (Noop) Check(context.Context, Purpose, string) error   { return nil }
func (Noop) RecordFailure(context.Context, Purpose, string) {}
func (Noop) Reset(context.Context, Purpose, string)         {}

// New returns a RedisLimiter when addr is set and Noop otherwise, along
// with a close function for the client.
func New(addr, password string, db int, cfg Config, log logging.Logger) (AttemptLimiter, func() error) {
	if addr == "" {
		return Noop{}, func() error { return nil }
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	return NewRedisLimiter(client, cfg, log), client.Close
}
