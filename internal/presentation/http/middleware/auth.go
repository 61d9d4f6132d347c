package middleware

import (
	"strings"

	"github.com/avinashrk/billpoint-api/internal/presentation/http/dto/response"
	"github.com/avinashrk/billpoint-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware authenticates the request. The console sends the session
// cookie; a Bearer token is accepted as a fallback for scripted access.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := sessionToken(c)
		if tokenString == "" {
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateSessionToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired session")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_name", claims.Name)
		c.Set("pin_verified", claims.PinVerified)

		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(utils.SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}
	return ""
}

// RequirePin gates billing endpoints until the session has passed the PIN
// step. Must run after AuthMiddleware.
func RequirePin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("pin_verified") {
			response.Forbidden(c, "PIN verification required")
			c.Abort()
			return
		}
		c.Next()
	}
}
