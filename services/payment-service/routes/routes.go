package routes

import (
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/payment-service/controllers"
	"github.com/gin-gonic/gin"
)

func RegisterPaymentRoutes(r *gin.Engine, pc *controllers.PaymentController) {
	payments := r.Group("/payments")
	payments.POST("", pc.CreatePayment)
	payments.GET("", pc.ListPayments)
	payments.GET("/:id", pc.GetPayment)
	payments.PUT("/:id/status", pc.UpdatePaymentStatus)
	payments.DELETE("/:id", pc.DeletePayment)
}
