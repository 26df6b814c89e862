package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID            uuid.UUID  `json:"productId" bson:"_id"`
	Title         string     `json:"productTitle" bson:"title"`
	SKU           string     `json:"sku" bson:"sku"`
	PriceUnit     float64    `json:"priceUnit" bson:"price_unit"`
	Quantity      int        `json:"quantity" bson:"quantity"`
	ImageURL      *string    `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
	CategoryTitle string     `json:"categoryTitle" bson:"category_title"`
	CreatedAt     time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" bson:"updated_at"`
	DeletedAt     *time.Time `json:"-" bson:"deleted_at,omitempty"`
}
