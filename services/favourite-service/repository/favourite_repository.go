package repository

import (
	"context"
	"errors"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/favourite-service/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrDuplicateFavourite is returned when the full (userId, productId,
// likeDate) tuple already exists.
var ErrDuplicateFavourite = errors.New("favourite already exists")

type FavouriteRepository interface {
	CreateFavourite(ctx context.Context, favourite *models.Favourite) error
	GetFavourite(ctx context.Context, key models.FavouriteKey) (*models.Favourite, error)
	ListFavourites(ctx context.Context) ([]models.Favourite, error)
	ListFavouritesByUser(ctx context.Context, userID uuid.UUID) ([]models.Favourite, error)
	DeleteFavourite(ctx context.Context, key models.FavouriteKey) error
}

type gormFavouriteRepo struct {
	db *gorm.DB
}

func NewGormFavouriteRepo(db *gorm.DB) FavouriteRepository {
	return &gormFavouriteRepo{db: db}
}

func (r *gormFavouriteRepo) CreateFavourite(ctx context.Context, favourite *models.Favourite) error {
	favourite.LikeDate = favourite.Key().LikeDate

	// the composite primary key enforces tuple uniqueness; concurrent
	// creates of the same tuple lose at the constraint, not at a read
	if err := r.db.WithContext(ctx).Create(favourite).Error; err != nil {
		return translateCreateError(err)
	}
	return nil
}

func translateCreateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateFavourite
	}
	return err
}

func (r *gormFavouriteRepo) GetFavourite(ctx context.Context, key models.FavouriteKey) (*models.Favourite, error) {
	var favourite models.Favourite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND like_date = ?", key.UserID, key.ProductID, key.LikeDate).
		First(&favourite).Error
	if err != nil {
		return nil, err
	}
	return &favourite, nil
}

func (r *gormFavouriteRepo) ListFavourites(ctx context.Context) ([]models.Favourite, error) {
	var favourites []models.Favourite
	err := r.db.WithContext(ctx).
		Order("like_date ASC").
		Find(&favourites).Error
	return favourites, err
}

func (r *gormFavouriteRepo) ListFavouritesByUser(ctx context.Context, userID uuid.UUID) ([]models.Favourite, error) {
	var favourites []models.Favourite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("like_date ASC").
		Find(&favourites).Error
	return favourites, err
}

func (r *gormFavouriteRepo) DeleteFavourite(ctx context.Context, key models.FavouriteKey) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND like_date = ?", key.UserID, key.ProductID, key.LikeDate).
		Delete(&models.Favourite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
