// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mpesa-gateway/config"
	"mpesa-gateway/internal/handler"
	"mpesa-gateway/internal/provider/mpesa"
	"mpesa-gateway/internal/router"
	"mpesa-gateway/internal/usecase"

	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("starting mpesa gateway")

	// Load configuration
	cfg := config.Load(logger)

	logger.Info("configuration loaded",
		zap.String("environment", cfg.Server.Env),
		zap.String("mpesa_environment", cfg.Mpesa.Environment),
		zap.String("port", cfg.Server.Port))

	// Initialize provider
	mpesaClient := mpesa.NewClient(cfg.Mpesa, logger)

	// Initialize usecases
	paymentUC := usecase.NewPaymentUsecase(mpesaClient, logger)

	// Initialize handlers
	paymentHandler := handler.NewPaymentHandler(paymentUC, logger)
	callbackHandler := handler.NewCallbackHandler(cfg.Server.Env, logger)
	healthHandler := handler.NewHealthHandler(cfg.Server.Env)

	// Setup routes
	r := router.SetupRoutes(paymentHandler, callbackHandler, healthHandler, cfg.AllowedOrigins, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
