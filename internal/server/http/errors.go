package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
)

type errorBody struct {
	Message    string            `json:"message"`
	StatusCode int               `json:"statusCode"`
	Code       string            `json:"code"`
	Fields     map[string]string `json:"fields,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// httpErrors maps sentinel errors to a status and a stable machine code.
// The first match wins.
var httpErrors = []struct {
	err    error
	status int
	code   string
}{
	{common.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{common.ErrorUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{common.ErrTokenExpired, http.StatusUnauthorized, "token_expired"},
	{common.ErrInvalidToken, http.StatusUnauthorized, "invalid_token"},
	{common.ErrTokenNotFound, http.StatusUnauthorized, "token_not_found"},
	{common.ErrAccountDisabled, http.StatusForbidden, "account_disabled"},
	{common.ErrEmailAlreadyRegistered, http.StatusConflict, "email_already_registered"},
	{common.ErrTooManyAttempts, http.StatusTooManyRequests, "too_many_attempts"},
	{common.ErrTokenAlreadyUsed, http.StatusBadRequest, "token_already_used"},
	{common.ErrAlreadyEnabled, http.StatusConflict, "two_factor_already_enabled"},
	{common.ErrNotEnabled, http.StatusBadRequest, "two_factor_not_enabled"},
	{common.ErrNoPendingSecret, http.StatusBadRequest, "no_pending_secret"},
	{common.ErrInvalidCode, http.StatusBadRequest, "invalid_code"},
	{common.ErrTransientStore, http.StatusServiceUnavailable, "unavailable"},
}

func abortWith(c *gin.Context, status int, code, message string, fields map[string]string) {
	c.AbortWithStatusJSON(status, errorEnvelope{Error: errorBody{
		Message:    message,
		StatusCode: status,
		Code:       code,
		Fields:     fields,
	}})
}

// writeError renders err in the error envelope.
func (s *HTTPServer) writeError(c *gin.Context, err error) {
	var verr *common.ValidationError
	if errors.As(err, &verr) {
		abortWith(c, http.StatusBadRequest, "validation_error", verr.Error(), verr.Fields)
		return
	}

	for _, m := range httpErrors {
		if errors.Is(err, m.err) {
			if m.status == http.StatusServiceUnavailable {
				s.logger.Warn(c.Request.Context(), "store unavailable", "error", err)
			}
			abortWith(c, m.status, m.code, m.err.Error(), nil)
			return
		}
	}

	s.logger.Error(c.Request.Context(), "request failed", "error", err, "path", c.FullPath())
	abortWith(c, http.StatusInternalServerError, "internal_error", "Internal Server Error", nil)
}

// writeResetError reports reset-token problems as bad input.
func (s *HTTPServer) writeResetError(c *gin.Context, err error) {
	for _, m := range []struct {
		err  error
		code string
	}{
		{common.ErrTokenExpired, "token_expired"},
		{common.ErrTokenAlreadyUsed, "token_already_used"},
		{common.ErrInvalidToken, "invalid_token"},
	} {
		if errors.Is(err, m.err) {
			abortWith(c, http.StatusBadRequest, m.code, m.err.Error(), nil)
			return
		}
	}
	s.writeError(c, err)
}
