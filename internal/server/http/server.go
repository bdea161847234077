// Package http is the REST gateway over the auth services. Routes live
// under /api/auth and share the service layer with the gRPC transport.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/dmitrijs2005/commpro-auth/internal/logging"
	"github.com/dmitrijs2005/commpro-auth/internal/server/auth"
	"github.com/dmitrijs2005/commpro-auth/internal/server/services"
)

const (
	serviceName     = "auth-service"
	shutdownTimeout = 10 * time.Second
)

type HTTPServer struct {
	address string
	users   *services.UserService
	issuer  *auth.TokenIssuer
	limiter *RateLimiter
	logger  logging.Logger
	started time.Time
}

func NewHTTPServer(a string, l logging.Logger, us *services.UserService, issuer *auth.TokenIssuer, rl *RateLimiter) *HTTPServer {
	return &HTTPServer{
		address: a,
		users:   us,
		issuer:  issuer,
		limiter: rl,
		logger:  l.With("module", "http_server"),
		started: time.Now(),
	}
}

// Router builds the gin engine with middleware and all routes.
func (s *HTTPServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.logger))
	r.Use(otelgin.Middleware(serviceName))

	r.GET("/health", s.health)

	api := r.Group("/api/auth")
	api.Use(s.limiter.Handler())
	{
		api.POST("/register", s.register)
		api.POST("/login", s.login)
		api.POST("/refresh", s.refresh)
		api.POST("/forgot-password", s.forgotPassword)
		api.POST("/reset-password", s.resetPassword)
		api.POST("/2fa/verify", s.verify2FA)

		authed := api.Group("", bearerAuth(s.issuer))
		authed.GET("/me", s.me)
		authed.POST("/logout", s.logout)
		authed.PUT("/change-password", s.changePassword)
		authed.PUT("/profile", s.updateProfile)
		authed.POST("/2fa/enable", s.enable2FA)
		authed.POST("/2fa/confirm", s.confirm2FA)
		authed.POST("/2fa/disable", s.disable2FA)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": "Route " + c.Request.Method + " " + c.Request.URL.Path + " not found",
		})
	})

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

// Serve handles requests on lis until ctx is cancelled, then drains
// in-flight requests.
func (s *HTTPServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "http shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
