// File: caterly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"caterly/config"
	"caterly/database"
	cartRepoPkg "caterly/database/repository/cart"
	catalogRepoPkg "caterly/database/repository/catalog"
	orderRepoPkg "caterly/database/repository/order"
	"caterly/handlers"
	"caterly/middleware"
	"caterly/routes"
	"caterly/services/cart"
	"caterly/services/catalog"
	"caterly/services/order"
	"caterly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCartCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	remoteCartRepo := cartRepoPkg.NewMongoCartRepo()
	localCartRepo := cartRepoPkg.NewRedisCartRepo(
		utils.GetCartCacheClient(),
		time.Duration(config.AppConfig.GuestCartTTLDays)*24*time.Hour,
	)
	orderRepo := orderRepoPkg.NewMongoOrderRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo: catalogRepo,
	}

	cartService := cart.NewDefaultCartService(localCartRepo, remoteCartRepo, catalogService)

	orderService := &order.DefaultOrderService{
		Repo: orderRepo,
		Cart: cartService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Catalog: handlers.NewCatalogHandler(catalogService),
		Cart:    handlers.NewCartHandler(cartService),
		Order:   handlers.NewOrderHandler(orderService),
		Admin:   handlers.NewAdminHandler(catalogService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
