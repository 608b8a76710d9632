package middleware

import (
	"net/http"
	"strings"

	"mealmarket-be/internal/auth"

	"github.com/gin-gonic/gin"
)

// Keys under which the authenticated identity is stored in the gin context.
const (
	UserIDKey = "userID"
	RoleKey   = "userRole"
)

// Identity returns the authenticated user id and role, if any.
func Identity(c *gin.Context) (userID, role string) {
	return c.GetString(UserIDKey), c.GetString(RoleKey)
}

// OptionalAuth parses a bearer token when present and stores the identity
// in the context. Invalid or absent tokens leave the request anonymous.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		claims, err := auth.ParseJWT(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.Next()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// RequireAuth rejects requests that do not carry a valid bearer token.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header is missing"})
			return
		}

		claims, err := auth.ParseJWT(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(RoleKey) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
		c.Next()
	}
}
