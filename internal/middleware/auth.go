package middleware

import (
	"net/http"
	"strings"

	"project-management-api/internal/auth"
	"project-management-api/internal/models"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token in the Authorization header
// and stores the caller's identity and role in the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := ""
		if authHeader != "" {
			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
		// Fallback for WebSocket/browser where custom headers cannot be set: allow token in query param
		if tokenString == "" {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization token is required",
			})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil || claims.Refresh {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// CallerID returns the authenticated user's id from the context.
func CallerID(c *gin.Context) uint {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CallerRole returns the authenticated user's role from the context.
func CallerRole(c *gin.Context) models.Role {
	if v, ok := c.Get("role"); ok {
		if role, ok := v.(models.Role); ok {
			return role
		}
	}
	return ""
}
