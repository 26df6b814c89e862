package controllers

import (
	"errors"
	"net/http"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/logger"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/product-service/models"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/product-service/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductController struct {
	Repo repository.ProductRepository
}

func NewProductController(repo repository.ProductRepository) *ProductController {
	return &ProductController{Repo: repo}
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req struct {
		Title         string  `json:"productTitle" binding:"required"`
		SKU           string  `json:"sku" binding:"required"`
		PriceUnit     float64 `json:"priceUnit" binding:"required,min=0"`
		Quantity      int     `json:"quantity" binding:"min=0"`
		ImageURL      *string `json:"imageUrl"`
		CategoryTitle string  `json:"categoryTitle"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	product := models.Product{
		ID:            uuid.New(),
		Title:         req.Title,
		SKU:           req.SKU,
		PriceUnit:     req.PriceUnit,
		Quantity:      req.Quantity,
		ImageURL:      req.ImageURL,
		CategoryTitle: req.CategoryTitle,
	}
	if err := pc.Repo.Create(c.Request.Context(), &product); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "SKU already exists"})
			return
		}
		logger.Error(c, "failed to create product", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (pc *ProductController) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product, err := pc.Repo.FindByID(c.Request.Context(), id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	} else if err != nil {
		logger.Error(c, "failed to load product", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) ListProducts(c *gin.Context) {
	products, err := pc.Repo.FindAll(c.Request.Context())
	if err != nil {
		logger.Error(c, "failed to list products", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var req struct {
		Title         *string  `json:"productTitle"`
		PriceUnit     *float64 `json:"priceUnit"`
		Quantity      *int     `json:"quantity"`
		ImageURL      *string  `json:"imageUrl"`
		CategoryTitle *string  `json:"categoryTitle"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	updates := bson.M{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.PriceUnit != nil {
		updates["price_unit"] = *req.PriceUnit
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.CategoryTitle != nil {
		updates["category_title"] = *req.CategoryTitle
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	matched, err := pc.Repo.Update(c.Request.Context(), id, updates)
	if err != nil {
		logger.Error(c, "failed to update product", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	if matched == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	matched, err := pc.Repo.Delete(c.Request.Context(), id)
	if err != nil {
		logger.Error(c, "failed to delete product", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if matched == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
