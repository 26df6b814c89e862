package middleware

import (
	"net/http"
	"strings"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/auth"
	"github.com/gin-gonic/gin"
)

// JWTAuth validates the Bearer token on every /api request and stamps the
// resolved identity onto the request as X-User-ID / X-User-Role headers for
// downstream services. The Authorization header itself is left untouched so
// the forwarder can propagate it verbatim.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, auth.BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or malformed Authorization header"})
			return
		}

		claims, err := auth.ParseAndValidateToken(strings.TrimPrefix(header, auth.BearerPrefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		userID, _ := claims["user_id"].(string)
		role, _ := claims["role"].(string)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token carries no user identity"})
			return
		}

		c.Request.Header.Set("X-User-ID", userID)
		c.Request.Header.Set("X-User-Role", role)
		c.Set(auth.UserKey, userID)
		c.Next()
	}
}
