package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-api/controllers"
	"storefront-api/database"
	"storefront-api/middleware"
	"storefront-api/repository"
	"storefront-api/routes"
	servicepkg "storefront-api/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var logger *zap.Logger
	if cfg.AppEnv == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := database.Connect(logger); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close() //nolint:errcheck

	// DI chain
	userRepo := repository.NewGormUserRepository(database.DB)
	productRepo := repository.NewGormProductRepository(database.DB)
	reviewRepo := repository.NewGormReviewRepository(database.DB)
	orderRepo := repository.NewGormOrderRepository(database.DB)

	userService := servicepkg.NewUserService(userRepo, logger)
	productService := servicepkg.NewProductService(productRepo, userRepo, logger)
	reviewService := servicepkg.NewReviewService(reviewRepo, userRepo, productRepo, logger)
	orderService := servicepkg.NewOrderService(orderRepo, userRepo, productRepo, logger)

	userController := controllers.NewUserController(userService)
	productController := controllers.NewProductController(productService)
	reviewController := controllers.NewReviewController(reviewService)
	orderController := controllers.NewOrderController(orderService)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Recovery(logger, cfg.AppEnv))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	routes.RegisterRoutes(r, userController, productController, reviewController, orderController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("Storefront API started", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
