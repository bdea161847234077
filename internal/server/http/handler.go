package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
	"github.com/dmitrijs2005/commpro-auth/internal/server/services"
)

func (s *HTTPServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"service":   serviceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(s.started).Seconds(),
	})
}

// bind decodes the JSON body. Field rules are checked by the services.
func (s *HTTPServer) bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		abortWith(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return false
	}
	return true
}

func requestMeta(c *gin.Context, deviceID, deviceName string) services.RequestMeta {
	meta := services.RequestMeta{
		DeviceID:   c.GetHeader("X-Device-Id"),
		DeviceName: c.GetHeader("X-Device-Name"),
		IPAddress:  c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	}
	if deviceID != "" {
		meta.DeviceID = deviceID
	}
	if deviceName != "" {
		meta.DeviceName = deviceName
	}
	return meta
}

func (s *HTTPServer) userID(c *gin.Context) (string, bool) {
	id := c.GetString(userIDKey)
	if id == "" {
		s.writeError(c, common.ErrorUnauthorized)
		return "", false
	}
	return id, true
}

func authBody(message string, res *services.AuthResult) gin.H {
	body := gin.H{
		"message":     message,
		"requires2FA": res.Requires2FA,
	}
	if res.User != nil {
		body["user"] = res.User
	}
	if res.Tokens != nil {
		body["accessToken"] = res.Tokens.AccessToken
		body["refreshToken"] = res.Tokens.RefreshToken
	}
	if res.Email != "" {
		body["email"] = res.Email
	}
	return body
}

func (s *HTTPServer) register(c *gin.Context) {
	var in services.RegisterInput
	if !s.bind(c, &in) {
		return
	}

	res, err := s.users.Register(c.Request.Context(), in, requestMeta(c, "", ""))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, authBody("User registered successfully", res))
}

func (s *HTTPServer) login(c *gin.Context) {
	var in services.LoginInput
	if !s.bind(c, &in) {
		return
	}

	res, err := s.users.Login(c.Request.Context(), in, requestMeta(c, in.DeviceID, in.DeviceName))
	if err != nil {
		s.writeError(c, err)
		return
	}

	msg := "Login successful"
	if res.Requires2FA {
		msg = "Two-factor authentication required"
	}
	c.JSON(http.StatusOK, authBody(msg, res))
}

func (s *HTTPServer) verify2FA(c *gin.Context) {
	var in services.Verify2FAInput
	if !s.bind(c, &in) {
		return
	}

	res, err := s.users.Verify2FA(c.Request.Context(), in, requestMeta(c, in.DeviceID, in.DeviceName))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, authBody("Login successful", res))
}

func (s *HTTPServer) refresh(c *gin.Context) {
	var in services.RefreshInput
	if !s.bind(c, &in) {
		return
	}

	pair, err := s.users.Refresh(c.Request.Context(), in, requestMeta(c, "", ""))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Token refreshed",
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

func (s *HTTPServer) logout(c *gin.Context) {
	var in services.RefreshInput
	if !s.bind(c, &in) {
		return
	}

	if err := s.users.Logout(c.Request.Context(), in); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (s *HTTPServer) me(c *gin.Context) {
	id, ok := s.userID(c)
	if !ok {
		return
	}

	user, err := s.users.Me(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (s *HTTPServer) changePassword(c *gin.Context) {
	id, ok := s.userID(c)
	if !ok {
		return
	}
	var in services.ChangePasswordInput
	if !s.bind(c, &in) {
		return
	}

	if err := s.users.ChangePassword(c.Request.Context(), id, in); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

func (s *HTTPServer) updateProfile(c *gin.Context) {
	id, ok := s.userID(c)
	if !ok {
		return
	}
	var in services.UpdateProfileInput
	if !s.bind(c, &in) {
		return
	}

	user, err := s.users.UpdateProfile(c.Request.Context(), id, in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": user})
}

func (s *HTTPServer) forgotPassword(c *gin.Context) {
	var in services.ForgotPasswordInput
	if !s.bind(c, &in) {
		return
	}

	msg, err := s.users.ForgotPassword(c.Request.Context(), in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (s *HTTPServer) resetPassword(c *gin.Context) {
	var in services.ResetPasswordInput
	if !s.bind(c, &in) {
		return
	}

	if err := s.users.ResetPassword(c.Request.Context(), in); err != nil {
		s.writeResetError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

func (s *HTTPServer) enable2FA(c *gin.Context) {
	id, ok := s.userID(c)
	if !ok {
		return
	}

	enr, err := s.users.Enable2FA(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Scan the QR code and confirm with a code from your authenticator app",
		"secret":     enr.Secret,
		"otpauthUrl": enr.OTPAuthURL,
		"qrCode":     enr.QRCode,
	})
}

func (s *HTTPServer) confirm2FA(c *gin.Context) {
	id, ok := s.userID(c)
	if !ok {
		return
	}
	var in services.TwoFactorCodeInput
	if !s.bind(c, &in) {
		return
	}

	if err := s.users.Confirm2FA(c.Request.Context(), id, in); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Two-factor authentication enabled"})
}

func (s *HTTPServer) disable2FA(c *gin.Context) {
	id, ok := s.userID(c)
	if !ok {
		return
	}
	var in services.DisableTwoFactorInput
	if !s.bind(c, &in) {
		return
	}

	if err := s.users.Disable2FA(c.Request.Context(), id, in); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Two-factor authentication disabled"})
}
