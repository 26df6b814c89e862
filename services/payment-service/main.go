package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/auth"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/client"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/errors"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/logger"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/payment-service/clients"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/payment-service/config"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/payment-service/controllers"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/payment-service/database"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/payment-service/kafka"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/payment-service/models"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/payment-service/repository"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/payment-service/routes"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if err := database.Connect(&models.Payment{}); err != nil {
		logger.Log.Fatal("Database connection failed", zap.Error(err))
	}

	producer := kafka.NewPaymentEventProducer(cfg.KafkaBrokers, cfg.PaymentTopic)
	defer producer.Close()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(errors.ErrorMiddleware())
	r.Use(auth.TokenPropagation())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	peerClient := client.New(client.DefaultTimeout)
	pc := controllers.NewPaymentController(
		repository.NewGormPaymentRepo(database.DB),
		clients.NewOrderClient(cfg.OrderServiceURL, peerClient),
		producer,
	)
	routes.RegisterPaymentRoutes(r, pc)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Log.Info("Payment Service started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Log.Info("Server exited cleanly")
}
