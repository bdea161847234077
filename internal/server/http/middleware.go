package http

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
	"github.com/dmitrijs2005/commpro-auth/internal/logging"
	"github.com/dmitrijs2005/commpro-auth/internal/server/auth"
)

const (
	userIDKey    = "userID"
	requestIDKey = "requestID"
)

// requestLogger logs every request with status, latency and a request id.
func requestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := strings.TrimSpace(c.GetHeader("X-Request-ID"))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"request_id", requestID,
			"status", status,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}

		ctx := c.Request.Context()
		switch {
		case status >= 500:
			log.Error(ctx, "http request", args...)
		case status >= 400:
			log.Warn(ctx, "http request", args...)
		default:
			log.Info(ctx, "http request", args...)
		}
	}
}

// RateLimiter throttles requests per client IP with a token bucket.
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	window  time.Duration
	now     func() time.Time
	mu      sync.Mutex
	clients map[string]*clientLimiter
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows requestsPerMinute per IP. A non-positive budget
// returns nil, which disables throttling.
func NewRateLimiter(requestsPerMinute int) *RateLimiter {
	if requestsPerMinute <= 0 {
		return nil
	}
	burst := requestsPerMinute / 10
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit:   rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:   burst,
		window:  5 * time.Minute,
		now:     time.Now,
		clients: make(map[string]*clientLimiter),
	}
}

func (r *RateLimiter) Handler() gin.HandlerFunc {
	if r == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if !r.get(c.ClientIP()).Allow() {
			abortWith(c, http.StatusTooManyRequests, "rate_limited", "Too many requests, please try again later.", nil)
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) get(key string) *rate.Limiter {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.clients[key]; ok {
		entry.lastSeen = now
		return entry.limiter
	}

	l := rate.NewLimiter(r.limit, r.burst)
	r.clients[key] = &clientLimiter{limiter: l, lastSeen: now}
	for k, entry := range r.clients {
		if now.Sub(entry.lastSeen) > r.window {
			delete(r.clients, k)
		}
	}
	return l
}

// bearerAuth validates the Authorization header and stores the user id.
func bearerAuth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			abortWith(c, http.StatusUnauthorized, "unauthorized", "No token provided", nil)
			return
		}
		token = strings.TrimSpace(token)
		if token == "" {
			abortWith(c, http.StatusUnauthorized, "unauthorized", "Invalid token format", nil)
			return
		}

		claims, err := issuer.VerifyAccessToken(token)
		if errors.Is(err, common.ErrTokenExpired) {
			abortWith(c, http.StatusUnauthorized, "token_expired", "Invalid or expired token", nil)
			return
		}
		if err != nil {
			abortWith(c, http.StatusUnauthorized, "invalid_token", "Invalid or expired token", nil)
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}
