package routes

import (
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/favourite-service/controllers"
	"github.com/gin-gonic/gin"
)

func RegisterFavouriteRoutes(r *gin.Engine, fc *controllers.FavouriteController) {
	favourites := r.Group("/favourites")
	favourites.POST("", fc.CreateFavourite)
	favourites.GET("", fc.ListFavourites)
	favourites.GET("/find", fc.FindFavourite)
	favourites.DELETE("/delete", fc.DeleteFavourite)
	favourites.GET("/user/:userId", fc.ListUserFavourites)
}
