package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/logger"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/favourite-service/clients"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/favourite-service/models"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/favourite-service/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FavouriteController struct {
	Repo     repository.FavouriteRepository
	Users    *clients.UserClient
	Products *clients.ProductClient
}

func NewFavouriteController(repo repository.FavouriteRepository, users *clients.UserClient, products *clients.ProductClient) *FavouriteController {
	return &FavouriteController{Repo: repo, Users: users, Products: products}
}

// keyFromQuery parses the full (userId, productId, likeDate) tuple from
// query parameters. likeDate is RFC 3339. All three members must be present
// and valid; a partial key is rejected before the store is touched.
func keyFromQuery(c *gin.Context) (models.FavouriteKey, bool) {
	userID, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid userId"})
		return models.FavouriteKey{}, false
	}
	productID, err := uuid.Parse(c.Query("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid productId"})
		return models.FavouriteKey{}, false
	}
	likeDate, err := time.Parse(time.RFC3339Nano, c.Query("likeDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid likeDate, expected RFC 3339"})
		return models.FavouriteKey{}, false
	}
	return models.NewFavouriteKey(userID, productID, likeDate), true
}

func (fc *FavouriteController) CreateFavourite(c *gin.Context) {
	var req struct {
		UserID    uuid.UUID  `json:"userId" binding:"required"`
		ProductID uuid.UUID  `json:"productId" binding:"required"`
		LikeDate  *time.Time `json:"likeDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	likeDate := time.Now()
	if req.LikeDate != nil {
		likeDate = *req.LikeDate
	}
	key := models.NewFavouriteKey(req.UserID, req.ProductID, likeDate)

	favourite := models.Favourite{
		UserID:    key.UserID,
		ProductID: key.ProductID,
		LikeDate:  key.LikeDate,
	}
	err := fc.Repo.CreateFavourite(c.Request.Context(), &favourite)
	if errors.Is(err, repository.ErrDuplicateFavourite) {
		c.JSON(http.StatusConflict, gin.H{"error": "Favourite already exists"})
		return
	} else if err != nil {
		logger.Error(c, "failed to create favourite", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create favourite"})
		return
	}

	c.JSON(http.StatusCreated, favourite)
}

// FindFavourite looks up a single favourite by its full key and embeds the
// owning user and the liked product best-effort.
func (fc *FavouriteController) FindFavourite(c *gin.Context) {
	key, ok := keyFromQuery(c)
	if !ok {
		return
	}

	favourite, err := fc.Repo.GetFavourite(c.Request.Context(), key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favourite not found"})
		return
	} else if err != nil {
		logger.Error(c, "failed to load favourite", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, fc.enrich(c, *favourite))
}

func (fc *FavouriteController) ListFavourites(c *gin.Context) {
	favourites, err := fc.Repo.ListFavourites(c.Request.Context())
	if err != nil {
		logger.Error(c, "failed to list favourites", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	responses := make([]models.FavouriteResponse, 0, len(favourites))
	for _, favourite := range favourites {
		responses = append(responses, fc.enrich(c, favourite))
	}

	c.JSON(http.StatusOK, gin.H{"favourites": responses})
}

// ListUserFavourites is the one lookup that takes a key prefix: all
// favourites of a user, regardless of product or timestamp.
func (fc *FavouriteController) ListUserFavourites(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	favourites, err := fc.Repo.ListFavouritesByUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error(c, "failed to list user favourites", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	responses := make([]models.FavouriteResponse, 0, len(favourites))
	for _, favourite := range favourites {
		responses = append(responses, fc.enrich(c, favourite))
	}

	c.JSON(http.StatusOK, gin.H{"favourites": responses})
}

func (fc *FavouriteController) DeleteFavourite(c *gin.Context) {
	key, ok := keyFromQuery(c)
	if !ok {
		return
	}

	err := fc.Repo.DeleteFavourite(c.Request.Context(), key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favourite not found"})
		return
	} else if err != nil {
		logger.Error(c, "failed to delete favourite", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete favourite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favourite deleted"})
}

func (fc *FavouriteController) enrich(c *gin.Context, favourite models.Favourite) models.FavouriteResponse {
	user := fc.Users.GetUser(c.Request.Context(), favourite.UserID)
	product := fc.Products.GetProduct(c.Request.Context(), favourite.ProductID)
	return models.FavouriteResponse{
		Favourite:     favourite,
		User:          user.Value,
		UserStatus:    user.Status,
		Product:       product.Value,
		ProductStatus: product.Status,
	}
}
