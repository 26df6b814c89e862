package controllers

import (
	"errors"
	"net/http"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/logger"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/order-service/models"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/order-service/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderController struct {
	Repo repository.OrderRepository
}

func NewOrderController(repo repository.OrderRepository) *OrderController {
	return &OrderController{Repo: repo}
}

func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		CartID    uuid.UUID `json:"cartId" binding:"required"`
		OrderDesc string    `json:"orderDesc"`
		OrderFee  float64   `json:"orderFee" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	order := models.Order{
		CartID:    req.CartID,
		OrderDesc: req.OrderDesc,
		OrderFee:  req.OrderFee,
		Status:    "pending",
	}
	if err := oc.Repo.CreateOrder(c.Request.Context(), &order); err != nil {
		logger.Error(c, "failed to create order", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (oc *OrderController) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := oc.Repo.GetOrderByID(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	} else if err != nil {
		logger.Error(c, "failed to load order", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) ListOrders(c *gin.Context) {
	orders, err := oc.Repo.ListOrders(c.Request.Context())
	if err != nil {
		logger.Error(c, "failed to list orders", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req struct {
		OrderDesc *string  `json:"orderDesc"`
		OrderFee  *float64 `json:"orderFee"`
		Status    *string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	order, err := oc.Repo.GetOrderByID(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	} else if err != nil {
		logger.Error(c, "failed to load order", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if req.OrderDesc != nil {
		order.OrderDesc = *req.OrderDesc
	}
	if req.OrderFee != nil {
		order.OrderFee = *req.OrderFee
	}
	if req.Status != nil {
		order.Status = *req.Status
	}

	if err := oc.Repo.UpdateOrder(c.Request.Context(), order); err != nil {
		logger.Error(c, "failed to update order", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	err = oc.Repo.DeleteOrder(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	} else if err != nil {
		logger.Error(c, "failed to delete order", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
