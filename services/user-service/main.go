package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/errors"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/logger"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/user-service/config"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/user-service/controllers"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/user-service/database"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/user-service/models"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/user-service/repository"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/user-service/routes"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if err := database.Connect(&models.User{}); err != nil {
		logger.Log.Fatal("Database connection failed", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(errors.ErrorMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	uc := controllers.NewUserController(repository.NewGormUserRepo(database.DB))
	routes.RegisterUserRoutes(r, uc)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Log.Info("User Service started", zap.String("port", cfg.Port))
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
