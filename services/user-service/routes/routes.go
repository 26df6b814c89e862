package routes

import (
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/user-service/controllers"
	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(r *gin.Engine, uc *controllers.UserController) {
	users := r.Group("/users")
	users.POST("", uc.CreateUser)
	users.GET("", uc.ListUsers)
	users.GET("/:id", uc.GetUser)
	users.PUT("/:id", uc.UpdateUser)
	users.DELETE("/:id", uc.DeleteUser)
	users.GET("/username/:username", uc.GetCredential)
}
