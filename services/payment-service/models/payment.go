package models

import (
	"time"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/client"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Payment struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"paymentId"`
	OrderID   uuid.UUID      `gorm:"type:uuid;index;not null" json:"orderId"`
	IsPayed   bool           `gorm:"not null;default:false" json:"isPayed"`
	Status    string         `gorm:"type:varchar(30);not null;default:not_started" json:"paymentStatus"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Payment status values
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// OrderDTO is the slice of the order-service representation a payment read
// embeds. The order is owned by order-service; nothing here is persisted.
type OrderDTO struct {
	OrderID   uuid.UUID `json:"orderId"`
	CartID    uuid.UUID `json:"cartId"`
	OrderDesc string    `json:"orderDesc"`
	OrderFee  float64   `json:"orderFee"`
	Status    string    `json:"status"`
	OrderDate time.Time `json:"orderDate"`
}

// PaymentResponse is a payment plus its best-effort order section. Order is
// nil unless OrderStatus is "fetched"; a degraded fetch never zero-fills it.
type PaymentResponse struct {
	Payment
	Order       *OrderDTO           `json:"order"`
	OrderStatus client.RemoteStatus `json:"orderStatus"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Payment{})
}
