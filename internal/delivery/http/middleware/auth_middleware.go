package middleware

import (
	"net/http"
	"strings"

	"go-jobhunt-backend/internal/delivery/http/response"
	"go-jobhunt-backend/internal/domain"
	"go-jobhunt-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token to a user id. Verification
// is stateless; a tampered and an expired token get the same rejection.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), userID)
		c.Next()
	}
}
