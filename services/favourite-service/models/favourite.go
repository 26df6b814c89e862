package models

import (
	"time"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/client"
	"github.com/google/uuid"
)

// FavouriteKey identifies a favourite. The like timestamp is part of the
// identity, so the same user can favourite the same product again at a
// different instant.
//
// LikeDate is normalized to UTC at microsecond precision so that a key
// built from a parsed query parameter compares equal to one loaded from
// postgres, whose timestamp columns carry microseconds.
type FavouriteKey struct {
	UserID    uuid.UUID `json:"userId"`
	ProductID uuid.UUID `json:"productId"`
	LikeDate  time.Time `json:"likeDate"`
}

func NewFavouriteKey(userID, productID uuid.UUID, likeDate time.Time) FavouriteKey {
	return FavouriteKey{
		UserID:    userID,
		ProductID: productID,
		LikeDate:  likeDate.UTC().Truncate(time.Microsecond),
	}
}

func (k FavouriteKey) Equal(other FavouriteKey) bool {
	return k.UserID == other.UserID &&
		k.ProductID == other.ProductID &&
		k.LikeDate.Equal(other.LikeDate)
}

type Favourite struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"userId"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey" json:"productId"`
	LikeDate  time.Time `gorm:"primaryKey" json:"likeDate"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (f Favourite) Key() FavouriteKey {
	return NewFavouriteKey(f.UserID, f.ProductID, f.LikeDate)
}

// UserDTO mirrors the user record served by user-service.
type UserDTO struct {
	UserID    uuid.UUID `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
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

// FavouriteResponse is the read shape: the local record plus best-effort
// sections for the owning user and the liked product.
type FavouriteResponse struct {
	Favourite
	User          *UserDTO            `json:"user"`
	UserStatus    client.RemoteStatus `json:"userStatus"`
	Product       *ProductDTO         `json:"product"`
	ProductStatus client.RemoteStatus `json:"productStatus"`
}
