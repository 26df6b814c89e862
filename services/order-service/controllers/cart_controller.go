package controllers

import (
	"errors"
	"net/http"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/logger"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/order-service/clients"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/order-service/models"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/order-service/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartController struct {
	Repo  repository.CartStore
	Users *clients.UserClient
}

func NewCartController(repo repository.CartStore, users *clients.UserClient) *CartController {
	return &CartController{Repo: repo, Users: users}
}

func (cc *CartController) CreateCart(c *gin.Context) {
	var req struct {
		UserID uuid.UUID `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	cart := models.Cart{
		CartID: uuid.New(),
		UserID: req.UserID,
	}
	if err := cc.Repo.SaveCart(c.Request.Context(), &cart); err != nil {
		logger.Error(c, "failed to save cart", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusCreated, cart)
}

// GetCart returns the cart with its owning user embedded. The user fetch is
// best-effort: user-service being down degrades the user section, never the
// cart itself.
func (cc *CartController) GetCart(c *gin.Context) {
	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart id"})
		return
	}

	cart, err := cc.Repo.GetCart(c.Request.Context(), cartID)
	if errors.Is(err, repository.ErrCartNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	} else if err != nil {
		logger.Error(c, "failed to load cart", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, cc.enrich(c, *cart))
}

func (cc *CartController) ListCarts(c *gin.Context) {
	carts, err := cc.Repo.ListCarts(c.Request.Context())
	if err != nil {
		logger.Error(c, "failed to list carts", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	// One user fetch per cart, output in input order.
	responses := make([]models.CartResponse, 0, len(carts))
	for _, cart := range carts {
		responses = append(responses, cc.enrich(c, cart))
	}

	c.JSON(http.StatusOK, gin.H{"carts": responses})
}

func (cc *CartController) DeleteCart(c *gin.Context) {
	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart id"})
		return
	}

	err = cc.Repo.DeleteCart(c.Request.Context(), cartID)
	if errors.Is(err, repository.ErrCartNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	} else if err != nil {
		logger.Error(c, "failed to delete cart", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart deleted"})
}

func (cc *CartController) enrich(c *gin.Context, cart models.Cart) models.CartResponse {
	remote := cc.Users.GetUser(c.Request.Context(), cart.UserID)
	return models.CartResponse{
		Cart:       cart,
		User:       remote.Value,
		UserStatus: remote.Status,
	}
}
