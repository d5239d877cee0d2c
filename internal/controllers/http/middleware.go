package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/raamveerrr/pos/internal/auth"
)

// Context keys set by the auth middleware.
const (
	ctxUserID       = "uid"
	ctxRestaurantID = "restaurant_id"
	ctxRole         = "role"
)

// authMiddleware validates the bearer token and pins the caller's identity
// and tenant on the gin context. Everything downstream trusts these keys
// instead of client-supplied ids.
func authMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "no authorization header provided"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid authorization format"})
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "token is invalid"})
			return
		}

		c.Set(ctxUserID, claims.Uid)
		c.Set(ctxRestaurantID, claims.RestaurantID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// corsMiddleware answers preflights for the browser-based terminals. Any
// origin is allowed; the bearer token is the actual gate.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
