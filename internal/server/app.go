// Package server wires configuration, storage and services together and
// runs the gRPC and HTTP transports with the background cleanup worker
// until the process is signalled.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/commpro-auth/internal/logging"
	"github.com/dmitrijs2005/commpro-auth/internal/server/auth"
	"github.com/dmitrijs2005/commpro-auth/internal/server/config"
	"github.com/dmitrijs2005/commpro-auth/internal/server/limiter"
	"github.com/dmitrijs2005/commpro-auth/internal/server/notify"
	"github.com/dmitrijs2005/commpro-auth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/commpro-auth/internal/server/services"
	"github.com/dmitrijs2005/commpro-auth/internal/telemetry"

	gs "github.com/dmitrijs2005/commpro-auth/internal/server/grpc"
	hs "github.com/dmitrijs2005/commpro-auth/internal/server/http"
)

const serviceName = "auth-service"

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
	issuer      *auth.TokenIssuer
	telemetry   *telemetry.Provider
	sender      *notify.Async
	closers     []func() error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogFormat, os.Stdout, c.Debug)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	tp, err := telemetry.New(ctx, c.TelemetryEndpoint, serviceName, logger)
	if err != nil {
		return nil, fmt.Errorf("telemetry init error: %w", err)
	}

	db, m, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	lim, closeLimiter := limiter.New(c.RedisAddr, c.RedisPassword, c.RedisDB, limiter.Config{
		MaxAttempts: c.LimiterMaxAttempts,
		Cooldown:    c.LimiterCooldown,
	}, logger.With("module", "limiter"))

	sender := notify.NewAsync(&notify.LogSender{Log: logger.With("module", "mailer"), Verbose: c.IsDevelopment()}, logger, 0)

	us, issuer, err := services.FromConfig(db, m, c, sender, lim, logger)
	if err != nil {
		_ = closeLimiter()
		_ = db.Close()
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("services init error: %w", err)
	}

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		userService: us,
		issuer:      issuer,
		telemetry:   tp,
		sender:      sender,
		closers:     []func() error{closeLimiter, db.Close},
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context) error {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.issuer)
	return s.Run(ctx)
}

func (app *App) startHTTPServer(ctx context.Context) error {
	if app.config.EndpointAddrHTTP == "" {
		return nil
	}
	rl := hs.NewRateLimiter(app.config.HTTPRateLimitRPM)
	s := hs.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.issuer, rl)
	return s.Run(ctx)
}

// runCleanup purges expired sessions and reset tokens every interval.
func (app *App) runCleanup(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			app.purge(ctx)
		}
	}
}

func (app *App) purge(ctx context.Context) {
	sessions, err := app.userService.Sessions().PurgeExpired(ctx)
	if err != nil {
		app.logger.Error(ctx, "session cleanup failed", "error", err)
	}
	resets, err := app.userService.Resets().PurgeExpired(ctx)
	if err != nil {
		app.logger.Error(ctx, "reset token cleanup failed", "error", err)
	}
	if sessions > 0 || resets > 0 {
		app.logger.Info(ctx, "Expired tokens purged", "sessions", sessions, "reset_tokens", resets)
	}
}

// Run blocks until a signal arrives or one of the servers fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.startGRPCServer(gctx) })
	g.Go(func() error { return app.startHTTPServer(gctx) })
	g.Go(func() error { return app.runCleanup(gctx, app.config.CleanupInterval) })

	err := g.Wait()
	app.shutdown()
	return err
}

func (app *App) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	app.sender.Wait()
	if err := app.telemetry.Shutdown(ctx); err != nil {
		app.logger.Error(ctx, "telemetry shutdown", "error", err)
	}
	for _, c := range app.closers {
		if err := c(); err != nil {
			app.logger.Error(ctx, "close", "error", err)
		}
	}
	app.logger.Info(ctx, "App stopped")
}
