// Package notify delivers out-of-band messages to users. Only a logging
// sender ships; real delivery plugs in behind Sender.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/commpro-auth/internal/logging"
)

// Sender delivers a password reset link to email.
type Sender interface {
	SendPasswordResetEmail(ctx context.Context, email, link string) error
}

// LogSender records that a reset email would have been sent. The link is
// only written out when Verbose is set (development).
type LogSender struct {
	Log     logging.Logger
	Verbose bool
}

func (s *LogSender) SendPasswordResetEmail(ctx context.Context, email, link string) error {
	if s.Verbose {
		s.Log.Info(ctx, "password reset email", "email", email, "link", link)
		return nil
	}
	s.Log.Info(ctx, "password reset email", "email", logging.Redact(email))
	return nil
}

// Async hands messages to the wrapped Sender on a background goroutine so
// the caller's latency does not depend on delivery. Failures are logged.
type Async struct {
	next    Sender
	log     logging.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewAsync wraps next. Each delivery gets its own timeout, detached from
// the request context.
func NewAsync(next Sender, log logging.Logger, timeout time.Duration) *Async {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Async{next: next, log: log, timeout: timeout}
}

// SendPasswordResetEmail always returns nil; the result is only logged.
func (a *Async) SendPasswordResetEmail(ctx context.Context, email, link string) error {
	ctx = context.WithoutCancel(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		ctx, cancel := context.WithTimeout(ctx, a.timeout)
		defer cancel()

		if err := a.next.SendPasswordResetEmail(ctx, email, link); err != nil {
			a.log.Error(ctx, "password reset email failed", "email", logging.Redact(email), "error", err)
		}
	}()
	return nil
}

// Wait blocks until every pending delivery finished.
func (a *Async) Wait() {
	a.wg.Wait()
}
