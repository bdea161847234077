package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
	"github.com/dmitrijs2005/commpro-auth/internal/dbx"
	"github.com/dmitrijs2005/commpro-auth/internal/logging"
	"github.com/dmitrijs2005/commpro-auth/internal/server/repositories/repomanager"
)

const tracerName = "github.com/dmitrijs2005/commpro-auth/internal/server/services"

const defaultStoreTimeout = 5 * time.Second

// store bundles what every service needs to reach the database: the pool,
// the repository factory, a per-call timeout and the clock.
type store struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	timeout     time.Duration
	now         func() time.Time
	log         logging.Logger
}

func newStore(db *sql.DB, m repomanager.RepositoryManager, timeout time.Duration, log logging.Logger) store {
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	if log == nil {
		log = logging.Nop{}
	}
	return store{db: db, repomanager: m, timeout: timeout, now: time.Now, log: log}
}

// call bounds a store operation by the configured timeout.
func (s *store) call(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// tx runs fn in one transaction bounded by the store timeout.
func (s *store) tx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	ctx, cancel := s.call(ctx)
	defer cancel()
	return dbx.WithTx(ctx, s.db, nil, fn)
}

// clock returns the current time in UTC.
func (s *store) clock() time.Time {
	return s.now().UTC()
}

// storeError passes sentinel errors through and folds anything else into
// ErrTransientStore or ErrorInternal.
func storeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrTransientStore),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", common.ErrTransientStore, err)
	case isDomainError(err):
		return err
	default:
		return fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
}

var domainErrors = []error{
	common.ErrValidation,
	common.ErrInvalidCredentials,
	common.ErrAccountDisabled,
	common.ErrEmailAlreadyRegistered,
	common.ErrTooManyAttempts,
	common.ErrInvalidToken,
	common.ErrTokenExpired,
	common.ErrTokenAlreadyUsed,
	common.ErrTokenNotFound,
	common.ErrAlreadyEnabled,
	common.ErrNotEnabled,
	common.ErrNoPendingSecret,
	common.ErrInvalidCode,
	common.ErrorNotFound,
	common.ErrorInternal,
	common.ErrorUnauthorized,
}

func isDomainError(err error) bool {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// startSpan opens a span named after the operation. end records err on it.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
