package models

import (
	"time"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/client"
	"github.com/google/uuid"
)

// OrderItemKey identifies an order item. Both fields together form the
// identity; neither is meaningful alone.
type OrderItemKey struct {
	OrderID   uuid.UUID `json:"orderId"`
	ProductID uuid.UUID `json:"productId"`
}

func NewOrderItemKey(orderID, productID uuid.UUID) OrderItemKey {
	return OrderItemKey{OrderID: orderID, ProductID: productID}
}

func (k OrderItemKey) Equal(other OrderItemKey) bool {
	return k.OrderID == other.OrderID && k.ProductID == other.ProductID
}

type OrderItem struct {
	OrderID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"orderId"`
	ProductID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"productId"`
	OrderedQuantity int       `gorm:"not null" json:"orderedQuantity"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (i OrderItem) Key() OrderItemKey {
	return NewOrderItemKey(i.OrderID, i.ProductID)
}

// ProductDTO mirrors the product record served by product-service.
type ProductDTO struct {
	ProductID     uuid.UUID `json:"productId"`
	Title         string    `json:"productTitle"`
	SKU           string    `json:"sku"`
	PriceUnit     float64   `json:"priceUnit"`
	Quantity      int       `json:"quantity"`
	CategoryTitle string    `json:"categoryTitle"`
}

// OrderDTO mirrors the order record served by order-service.
type OrderDTO struct {
	OrderID   uuid.UUID `json:"orderId"`
	CartID    uuid.UUID `json:"cartId"`
	OrderDesc string    `json:"orderDesc"`
	OrderFee  float64   `json:"orderFee"`
	Status    string    `json:"status"`
	OrderDate time.Time `json:"orderDate"`
}

// OrderItemResponse is the read shape: the local record plus best-effort
// sections for the referenced product and order, each with its own outcome
// tag.
type OrderItemResponse struct {
	OrderItem
	Product       *ProductDTO         `json:"product"`
	ProductStatus client.RemoteStatus `json:"productStatus"`
	Order         *OrderDTO           `json:"order"`
	OrderStatus   client.RemoteStatus `json:"orderStatus"`
}
