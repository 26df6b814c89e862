package repository

import (
	"context"
	"errors"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/shipping-service/models"
	"gorm.io/gorm"
)

// ErrDuplicateItem is returned when an order item with the same
// (orderId, productId) tuple already exists.
var ErrDuplicateItem = errors.New("order item already exists")

type OrderItemRepository interface {
	CreateOrderItem(ctx context.Context, item *models.OrderItem) error
	GetOrderItem(ctx context.Context, key models.OrderItemKey) (*models.OrderItem, error)
	ListOrderItems(ctx context.Context) ([]models.OrderItem, error)
	UpdateOrderedQuantity(ctx context.Context, key models.OrderItemKey, quantity int) error
	DeleteOrderItem(ctx context.Context, key models.OrderItemKey) error
}

type gormOrderItemRepo struct {
	db *gorm.DB
}

func NewGormOrderItemRepo(db *gorm.DB) OrderItemRepository {
	return &gormOrderItemRepo{db: db}
}

func (r *gormOrderItemRepo) CreateOrderItem(ctx context.Context, item *models.OrderItem) error {
	// the composite primary key enforces tuple uniqueness; concurrent
	// creates of the same tuple lose at the constraint, not at a read
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return translateCreateError(err)
	}
	return nil
}

func translateCreateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateItem
	}
	return err
}

func (r *gormOrderItemRepo) GetOrderItem(ctx context.Context, key models.OrderItemKey) (*models.OrderItem, error) {
	var item models.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", key.OrderID, key.ProductID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *gormOrderItemRepo) ListOrderItems(ctx context.Context) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *gormOrderItemRepo) UpdateOrderedQuantity(ctx context.Context, key models.OrderItemKey, quantity int) error {
	res := r.db.WithContext(ctx).Model(&models.OrderItem{}).
		Where("order_id = ? AND product_id = ?", key.OrderID, key.ProductID).
		Update("ordered_quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormOrderItemRepo) DeleteOrderItem(ctx context.Context, key models.OrderItemKey) error {
	res := r.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", key.OrderID, key.ProductID).
		Delete(&models.OrderItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
