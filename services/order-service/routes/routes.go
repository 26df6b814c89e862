package routes

import (
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/order-service/controllers"
	"github.com/gin-gonic/gin"
)

func RegisterOrderRoutes(r *gin.Engine, oc *controllers.OrderController, cc *controllers.CartController) {
	orders := r.Group("/orders")
	orders.POST("", oc.CreateOrder)
	orders.GET("", oc.ListOrders)
	orders.GET("/:id", oc.GetOrder)
	orders.PUT("/:id", oc.UpdateOrder)
	orders.DELETE("/:id", oc.DeleteOrder)

	carts := r.Group("/carts")
	carts.POST("", cc.CreateCart)
	carts.GET("", cc.ListCarts)
	carts.GET("/:id", cc.GetCart)
	carts.DELETE("/:id", cc.DeleteCart)
}
