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
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/order-service/clients"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/order-service/config"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/order-service/controllers"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/order-service/database"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/order-service/models"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/order-service/repository"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/order-service/routes"
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

	if err := database.Connect(&models.Order{}); err != nil {
		logger.Log.Fatal("Database connection failed", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		logger.Log.Fatal("Redis connection failed", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(errors.ErrorMiddleware())
	r.Use(auth.TokenPropagation())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	peerClient := client.New(client.DefaultTimeout)
	oc := controllers.NewOrderController(repository.NewGormOrderRepo(database.DB))
	cc := controllers.NewCartController(
		repository.NewCartRepository(redisClient, 0), // carts do not expire
		clients.NewUserClient(cfg.UserServiceURL, peerClient),
	)
	routes.RegisterOrderRoutes(r, oc, cc)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Log.Info("Order Service started", zap.String("port", cfg.Port))
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
