package models

import (
	"time"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/client"
	"github.com/google/uuid"
)

// Cart lives in redis, keyed by its ID. It only references the owning user;
// the user record itself belongs to user-service.
type Cart struct {
	CartID    uuid.UUID `json:"cartId"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserDTO is the slice of the user-service representation a cart read embeds.
type UserDTO struct {
	UserID    uuid.UUID `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
}

// CartResponse is a cart plus its best-effort user section. User is nil
// unless UserStatus is "fetched".
type CartResponse struct {
	Cart
	User       *UserDTO            `json:"user"`
	UserStatus client.RemoteStatus `json:"userStatus"`
}
