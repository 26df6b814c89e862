package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"orderId"`
	CartID    uuid.UUID      `gorm:"type:uuid;index;not null" json:"cartId"`
	OrderDesc string         `gorm:"type:varchar(255)" json:"orderDesc"`
	OrderFee  float64        `gorm:"not null" json:"orderFee"`
	Status    string         `gorm:"type:varchar(30);not null;default:pending" json:"status"`
	OrderDate time.Time      `gorm:"autoCreateTime" json:"orderDate"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Order{})
}
