// File: handymatch/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"handymatch/config"
	"handymatch/handlers"
	"handymatch/middleware"
	"handymatch/routes"
	"handymatch/services/booking"
	"handymatch/services/directory"
	ai "handymatch/services/intelligence"
	"handymatch/services/professional"
	"handymatch/services/session"
	"handymatch/services/view"
	"handymatch/utils"
)

const (
	flowSessionTTL = 30 * time.Minute
	paymentDelay   = 1500 * time.Millisecond
	lookupDelay    = 1500 * time.Millisecond
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	utils.StartHealthMonitor(utils.GetSessionCacheClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Shared state: the in-memory directory and the Redis-backed flow sessions.
	directoryStore := directory.NewStore(directory.SeedProfessionals())
	sessionStore := session.NewRedisStore(utils.GetSessionCacheClient())

	// services.
	analysisService := ai.NewGeminiAnalysisService(
		config.AppConfig.GeminiAPIKey,
		time.Duration(config.AppConfig.AnalysisTimeoutSeconds)*time.Second,
		logger,
	)
	viewService := view.NewService(sessionStore, flowSessionTTL)
	paymentProcessor := booking.NewSimulatedProcessor(paymentDelay, logger)
	bookingService := booking.NewSessionService(directoryStore, sessionStore, paymentProcessor, flowSessionTTL)
	registrationService := professional.NewRegistrationService(directoryStore, logger)
	deletionService := professional.NewDeletionService(directoryStore, sessionStore, lookupDelay, flowSessionTTL, logger)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Analysis:     handlers.NewAnalysisHandler(analysisService, viewService, config.AppConfig.MaxImageBytes),
		Directory:    handlers.NewDirectoryHandler(directoryStore),
		Booking:      handlers.NewBookingHandler(bookingService, logger),
		Professional: handlers.NewProfessionalHandler(registrationService, deletionService),
		View:         handlers.NewViewHandler(viewService),
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
