package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/logger"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/payment-service/clients"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/payment-service/kafka"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/payment-service/models"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/payment-service/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentController struct {
	Repo   repository.PaymentRepository
	Orders *clients.OrderClient
	Events kafka.EventPublisher
}

func NewPaymentController(repo repository.PaymentRepository, orders *clients.OrderClient, events kafka.EventPublisher) *PaymentController {
	return &PaymentController{Repo: repo, Orders: orders, Events: events}
}

func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var req struct {
		OrderID uuid.UUID `json:"orderId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	payment := models.Payment{
		OrderID: req.OrderID,
		Status:  models.StatusNotStarted,
	}
	if err := pc.Repo.CreatePayment(c.Request.Context(), &payment); err != nil {
		logger.Error(c, "failed to create payment", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GetPayment returns the payment with its referenced order embedded. The
// order fetch is best-effort: order-service being down or the order being
// gone degrades the order section, it never fails the payment read.
func (pc *PaymentController) GetPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment id"})
		return
	}

	payment, err := pc.Repo.GetPaymentByID(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	} else if err != nil {
		logger.Error(c, "failed to load payment", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, pc.enrich(c, *payment))
}

func (pc *PaymentController) ListPayments(c *gin.Context) {
	payments, err := pc.Repo.ListPayments(c.Request.Context())
	if err != nil {
		logger.Error(c, "failed to list payments", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	// One order fetch per payment; a failing element degrades alone and the
	// output keeps the input order.
	responses := make([]models.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		responses = append(responses, pc.enrich(c, payment))
	}

	c.JSON(http.StatusOK, gin.H{"payments": responses})
}

func (pc *PaymentController) UpdatePaymentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment id"})
		return
	}

	var req struct {
		Status  string `json:"paymentStatus" binding:"required,oneof=not_started in_progress completed"`
		IsPayed bool   `json:"isPayed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	err = pc.Repo.UpdatePaymentStatus(c.Request.Context(), id, req.Status, req.IsPayed)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	} else if err != nil {
		logger.Error(c, "failed to update payment", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		return
	}

	payment, err := pc.Repo.GetPaymentByID(c.Request.Context(), id)
	if err != nil {
		logger.Error(c, "failed to reload payment", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if pc.Events != nil {
		event := models.PaymentEvent{
			Type:      "payment_" + req.Status,
			PaymentID: payment.ID.String(),
			OrderID:   payment.OrderID.String(),
			IsPayed:   payment.IsPayed,
			Status:    payment.Status,
			Timestamp: time.Now().UTC(),
		}
		if err := pc.Events.SendPaymentEvent(c.Request.Context(), event); err != nil {
			// event delivery is not part of the update contract
			logger.Warn(c, "payment event publish failed")
		}
	}

	c.JSON(http.StatusOK, payment)
}

func (pc *PaymentController) DeletePayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment id"})
		return
	}

	err = pc.Repo.DeletePayment(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	} else if err != nil {
		logger.Error(c, "failed to delete payment", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted"})
}

func (pc *PaymentController) enrich(c *gin.Context, payment models.Payment) models.PaymentResponse {
	remote := pc.Orders.GetOrder(c.Request.Context(), payment.OrderID)
	return models.PaymentResponse{
		Payment:     payment,
		Order:       remote.Value,
		OrderStatus: remote.Status,
	}
}
