package controllers

import (
	"errors"
	"net/http"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/logger"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/shipping-service/clients"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/shipping-service/models"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/shipping-service/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShippingController struct {
	Repo     repository.OrderItemRepository
	Products *clients.ProductClient
	Orders   *clients.OrderClient
}

func NewShippingController(repo repository.OrderItemRepository, products *clients.ProductClient, orders *clients.OrderClient) *ShippingController {
	return &ShippingController{Repo: repo, Products: products, Orders: orders}
}

// keyFromQuery parses the full (orderId, productId) tuple from query
// parameters. Both members must be present and valid; a partial key is
// rejected before the store is touched.
func keyFromQuery(c *gin.Context) (models.OrderItemKey, bool) {
	orderID, err := uuid.Parse(c.Query("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid orderId"})
		return models.OrderItemKey{}, false
	}
	productID, err := uuid.Parse(c.Query("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid productId"})
		return models.OrderItemKey{}, false
	}
	return models.NewOrderItemKey(orderID, productID), true
}

func (sc *ShippingController) CreateOrderItem(c *gin.Context) {
	var req struct {
		OrderID         uuid.UUID `json:"orderId" binding:"required"`
		ProductID       uuid.UUID `json:"productId" binding:"required"`
		OrderedQuantity int       `json:"orderedQuantity" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	item := models.OrderItem{
		OrderID:         req.OrderID,
		ProductID:       req.ProductID,
		OrderedQuantity: req.OrderedQuantity,
	}
	err := sc.Repo.CreateOrderItem(c.Request.Context(), &item)
	if errors.Is(err, repository.ErrDuplicateItem) {
		c.JSON(http.StatusConflict, gin.H{"error": "Order item already exists"})
		return
	} else if err != nil {
		logger.Error(c, "failed to create order item", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetOrderItem looks up a single item by its full key and embeds the
// referenced product and order best-effort.
func (sc *ShippingController) GetOrderItem(c *gin.Context) {
	key, ok := keyFromQuery(c)
	if !ok {
		return
	}

	item, err := sc.Repo.GetOrderItem(c.Request.Context(), key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
		return
	} else if err != nil {
		logger.Error(c, "failed to load order item", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, sc.enrich(c, *item))
}

func (sc *ShippingController) ListOrderItems(c *gin.Context) {
	items, err := sc.Repo.ListOrderItems(c.Request.Context())
	if err != nil {
		logger.Error(c, "failed to list order items", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	responses := make([]models.OrderItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, sc.enrich(c, item))
	}

	c.JSON(http.StatusOK, gin.H{"orderItems": responses})
}

func (sc *ShippingController) UpdateOrderedQuantity(c *gin.Context) {
	key, ok := keyFromQuery(c)
	if !ok {
		return
	}

	var req struct {
		OrderedQuantity int `json:"orderedQuantity" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	err := sc.Repo.UpdateOrderedQuantity(c.Request.Context(), key, req.OrderedQuantity)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
		return
	} else if err != nil {
		logger.Error(c, "failed to update order item", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order item"})
		return
	}

	item, err := sc.Repo.GetOrderItem(c.Request.Context(), key)
	if err != nil {
		logger.Error(c, "failed to reload order item", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (sc *ShippingController) DeleteOrderItem(c *gin.Context) {
	key, ok := keyFromQuery(c)
	if !ok {
		return
	}

	err := sc.Repo.DeleteOrderItem(c.Request.Context(), key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
		return
	} else if err != nil {
		logger.Error(c, "failed to delete order item", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order item deleted"})
}

func (sc *ShippingController) enrich(c *gin.Context, item models.OrderItem) models.OrderItemResponse {
	product := sc.Products.GetProduct(c.Request.Context(), item.ProductID)
	order := sc.Orders.GetOrder(c.Request.Context(), item.OrderID)
	return models.OrderItemResponse{
		OrderItem:     item,
		Product:       product.Value,
		ProductStatus: product.Status,
		Order:         order.Value,
		OrderStatus:   order.Status,
	}
}
