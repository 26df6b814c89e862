package routes

import (
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/shipping-service/controllers"
	"github.com/gin-gonic/gin"
)

func RegisterShippingRoutes(r *gin.Engine, sc *controllers.ShippingController) {
	shippings := r.Group("/shippings")
	shippings.POST("", sc.CreateOrderItem)
	shippings.GET("", sc.ListOrderItems)
	shippings.GET("/item", sc.GetOrderItem)
	shippings.PUT("/item", sc.UpdateOrderedQuantity)
	shippings.DELETE("/item", sc.DeleteOrderItem)
}
