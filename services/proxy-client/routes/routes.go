package routes

import (
	"net/http"
	"strings"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/proxy-client/controllers"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/proxy-client/middleware"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/proxy-client/utils"
	"github.com/gin-gonic/gin"
)

// RegisterGatewayRoutes wires the public surface: the login endpoint and the
// authenticated, rate-limited /api forwarder.
func RegisterGatewayRoutes(r *gin.Engine, ac *controllers.AuthController, serviceURLs map[string]string) {
	r.POST("/app/authenticate", ac.Authenticate)

	api := r.Group("/api")
	api.Use(middleware.RateLimit())
	api.Use(middleware.JWTAuth())
	api.Any("/*path", func(c *gin.Context) {
		segment := firstSegment(c.Param("path"))
		target, ok := serviceURLs[segment]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown service"})
			return
		}
		utils.ForwardRequest(c, target)
	})
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.Index(path, "/"); i >= 0 {
		return path[:i]
	}
	return path
}
