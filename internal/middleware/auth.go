package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/traqbank/backoffice/internal/utils"
)

// AuthMiddleware creates a Gin middleware handler that validates the session
// token. The token is read from the Authorization header first; the session
// cookie is the fallback so browser clients stay signed in after login.
func AuthMiddleware(jwtSecret string, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				logger.Warn("Authorization header format invalid")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
				return
			}
			tokenString = parts[1]
		} else if cookie, err := c.Cookie(cookieName); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			logger.Warn("No session token provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		// Parse and validate the token
		claims, err := utils.ParseAndValidateJWT(tokenString, jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		username := claims.Subject
		if username == "" {
			logger.Error("Username (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		// Store the principal in the context (using standard context)
		ctxWithUser := context.WithValue(c.Request.Context(), usernameKey, username)

		// Add the principal to the logger
		enrichedLogger := logger.With(slog.String("username", username))
		ctxWithLoggerAndUser := context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger)

		// Update the request context
		c.Request = c.Request.WithContext(ctxWithLoggerAndUser)

		c.Next()
	}
}
