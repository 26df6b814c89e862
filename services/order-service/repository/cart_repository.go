package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/order-service/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrCartNotFound reports a missing cart without leaking redis internals.
var ErrCartNotFound = fmt.Errorf("cart not found")

type CartStore interface {
	GetCart(ctx context.Context, cartID uuid.UUID) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, cartID uuid.UUID) error
	ListCarts(ctx context.Context) ([]models.Cart, error)
}

type CartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartRepository(client *redis.Client, ttl time.Duration) *CartRepository {
	return &CartRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *CartRepository) getKey(cartID uuid.UUID) string {
	return fmt.Sprintf("cart:%s", cartID)
}

func (r *CartRepository) GetCart(ctx context.Context, cartID uuid.UUID) (*models.Cart, error) {
	data, err := r.client.Get(ctx, r.getKey(cartID)).Result()
	if err == redis.Nil {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepository) SaveCart(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()

	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, r.getKey(cart.CartID), data, r.ttl).Err()
}

func (r *CartRepository) DeleteCart(ctx context.Context, cartID uuid.UUID) error {
	deleted, err := r.client.Del(ctx, r.getKey(cartID)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrCartNotFound
	}
	return nil
}

func (r *CartRepository) ListCarts(ctx context.Context) ([]models.Cart, error) {
	var carts []models.Cart

	iter := r.client.Scan(ctx, 0, "cart:*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := r.client.Get(ctx, iter.Val()).Result()
		if err == redis.Nil {
			continue // expired between SCAN and GET
		}
		if err != nil {
			return nil, err
		}
		var cart models.Cart
		if err := json.Unmarshal([]byte(data), &cart); err != nil {
			continue
		}
		carts = append(carts, cart)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return carts, nil
}
