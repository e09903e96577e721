// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/dryfruits-storefront/internal/pkg/auth"
)

const (
	// SessionIDKey is the gin context key holding the token's session ID
	SessionIDKey = "session_id"
	// UserEmailKey is the gin context key holding the session email
	UserEmailKey = "user_email"
	// IsAdminKey is the gin context key holding the admin flag
	IsAdminKey = "is_admin"
)

// SessionSource reports the ID of the active login
type SessionSource interface {
	SessionID() string
}

// AuthMiddleware validates the bearer token and checks that it belongs to
// the active session. Tokens issued before a logout are rejected.
func AuthMiddleware(jwtManager *auth.JWTManager, sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortLoginRequired(c, "Authorization header required")
			return
		}

		// Extract token from header
		tokenString := auth.ExtractTokenFromHeader(authHeader)
		if tokenString == "" {
			abortLoginRequired(c, "Invalid authorization header format")
			return
		}

		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			abortLoginRequired(c, "Invalid or expired token")
			return
		}

		if current := sessions.SessionID(); current == "" || current != claims.SessionID {
			abortLoginRequired(c, "Session has ended, please log in again")
			return
		}

		// Store session information in context
		c.Set(SessionIDKey, claims.SessionID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(IsAdminKey, claims.IsAdmin)

		c.Next()
	}
}

// AdminMiddleware ensures the session belongs to the admin
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserEmailFromContext(c); !ok {
			abortLoginRequired(c, "Authentication required")
			return
		}

		if !IsAdminFromContext(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			return
		}

		c.Next()
	}
}

func abortLoginRequired(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":          message,
		"login_required": true,
	})
}

// GetUserEmailFromContext extracts the session email from gin context
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	s, ok := email.(string)
	return s, ok
}

// IsAdminFromContext checks if the session is the admin's
func IsAdminFromContext(c *gin.Context) bool {
	isAdmin, exists := c.Get(IsAdminKey)
	if !exists {
		return false
	}
	admin, _ := isAdmin.(bool)
	return admin
}
