package handler

import (
	"net/http"

	"github.com/avinashrk/billpoint-api/internal/application/service"
	"github.com/avinashrk/billpoint-api/internal/config"
	"github.com/avinashrk/billpoint-api/internal/presentation/http/dto/request"
	"github.com/avinashrk/billpoint-api/internal/presentation/http/dto/response"
	"github.com/avinashrk/billpoint-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler handles sign-in and the PIN step
type AuthHandler struct {
	authService *service.AuthService
	jwtCfg      config.JWTConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{authService: authService, jwtCfg: jwtCfg}
}

// setSessionCookie writes the HttpOnly session cookie the console rides on.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		utils.SessionCookieName,
		token,
		int(h.jwtCfg.SessionExpiry.Seconds()),
		"/",
		h.jwtCfg.CookieDomain,
		h.jwtCfg.CookieSecure,
		true, // HttpOnly
	)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(utils.SessionCookieName, "", -1, "/", h.jwtCfg.CookieDomain, h.jwtCfg.CookieSecure, true)
}

// GoogleLogin handles POST /auth/google-login
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req request.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Token is required")
		return
	}

	result, err := h.authService.GoogleLogin(c.Request.Context(), req.Token)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	response.OK(c, "Signed in", gin.H{
		"user":        result.User,
		"pinRequired": result.PinRequired,
		"pinSet":      result.User.HasPin(),
	})
}

// GoogleAuthURL handles GET /auth/google (redirect code flow)
func (h *AuthHandler) GoogleAuthURL(c *gin.Context) {
	state := uuid.New().String()
	url, err := h.authService.GoogleAuthURL(state)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback handles GET /auth/google/callback
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		response.BadRequest(c, "Missing authorization code")
		return
	}

	result, err := h.authService.GoogleCallback(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	response.OK(c, "Signed in", gin.H{
		"user":        result.User,
		"pinRequired": result.PinRequired,
		"pinSet":      result.User.HasPin(),
	})
}

// SetPin handles POST /auth/pin
func (h *AuthHandler) SetPin(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SetPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "PIN must be 4 to 8 digits")
		return
	}

	if err := h.authService.SetPin(c.Request.Context(), *userID, req.Pin); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "PIN set", nil)
}

// VerifyPin handles POST /auth/pin/verify. On success the session cookie is
// reissued with the PIN step marked as passed.
func (h *AuthHandler) VerifyPin(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.VerifyPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "PIN is required")
		return
	}

	result, err := h.authService.VerifyPin(c.Request.Context(), *userID, req.Pin)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	response.OK(c, "PIN verified", gin.H{"user": result.User})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	user, err := h.authService.Me(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Profile", gin.H{
		"user":   user,
		"pinSet": user.HasPin(),
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	response.OK(c, "Signed out", nil)
}
