package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const UserKey = "userID"

// TokenPropagation binds the inbound Authorization header to the request
// context so every outbound call made while handling this request can carry
// the caller's identity. Malformed headers are ignored, not rejected.
func TokenPropagation() gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			ctx := WithToken(c.Request.Context(), header)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// RequireUser rejects requests that carry no resolved caller identity.
// The gateway injects X-User-ID after validating the JWT.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(UserKey, userID)
		c.Next()
	}
}

// GetUserID returns the caller ID set by RequireUser.
func GetUserID(c *gin.Context) string {
	if val, exists := c.Get(UserKey); exists {
		return val.(string)
	}
	return ""
}
