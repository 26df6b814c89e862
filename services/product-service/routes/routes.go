package routes

import (
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/product-service/controllers"
	"github.com/gin-gonic/gin"
)

func RegisterProductRoutes(r *gin.Engine, pc *controllers.ProductController) {
	products := r.Group("/products")
	products.POST("", pc.CreateProduct)
	products.GET("", pc.ListProducts)
	products.GET("/:id", pc.GetProduct)
	products.PUT("/:id", pc.UpdateProduct)
	products.DELETE("/:id", pc.DeleteProduct)
}
