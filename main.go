package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nivelfit/config"
	"nivelfit/cron"
	"nivelfit/database"
	"nivelfit/database/repository"
	"nivelfit/handlers"
	"nivelfit/middleware"
	"nivelfit/resolvers"
	"nivelfit/routes"
	"nivelfit/services/booking"
	"nivelfit/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// Store and repositories.
	store := repository.NewMongoStore()
	if err := store.Initialize(); err != nil {
		logger.Sugar().Fatalf("main: failed to seed store: %v", err)
	}

	// Services.
	bookingService := booking.NewDefaultBookingService(store)

	bookingResolver := &resolvers.Resolver{
		BookingSvc:  bookingService,
		CacheClient: utils.GetSessionCacheClient(),
	}

	// Handlers.
	trainerHandler := handlers.NewTrainerHandler(bookingService, utils.GetCacheClient())
	bookingHandler := handlers.NewBookingHandler(bookingService, bookingResolver)
	storeHandler := handlers.NewStoreHandler(store, utils.GetCacheClient())

	routes.RegisterRoutes(router, trainerHandler, bookingHandler, storeHandler)

	// Background retention worker and dependency health checks.
	cron.InitRetentionWorker(store.Bookings)
	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetSessionCacheClient(), database.MongoClient)

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
