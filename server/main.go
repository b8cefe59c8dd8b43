package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phambaophuc/pdf-watermarking/internal/config"
	"github.com/phambaophuc/pdf-watermarking/internal/http/handlers"
	"github.com/phambaophuc/pdf-watermarking/internal/http/routes"
	"github.com/phambaophuc/pdf-watermarking/internal/services/fonts"
	"github.com/phambaophuc/pdf-watermarking/internal/services/processor"
	"github.com/phambaophuc/pdf-watermarking/internal/services/queue"
	"github.com/phambaophuc/pdf-watermarking/internal/services/storage"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize services
	fontLoader := fonts.NewLoader(cfg.Font.Path)
	if _, err := fontLoader.Ensure(); err != nil {
		// The loader retries on the next request, a cold start is not fatal
		logger.Warn("Watermark font not loaded yet", zap.Error(err))
	}
	documentProcessor := processor.NewDocumentProcessor(fontLoader)

	storageService, err := storage.NewStorageService(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage service", zap.Error(err))
	}

	queueService, err := queue.NewQueueService(cfg.RabbitMQ.URL, documentProcessor, storageService, logger)
	if err != nil {
		logger.Warn("Failed to initialize queue service", zap.Error(err))
		// Continue without queue service for basic functionality
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start background workers
	if queueService != nil {
		defer queueService.Close()

		for i := 1; i <= cfg.Queue.Workers; i++ {
			if err := queueService.StartWorker(ctx, i); err != nil {
				logger.Error("Failed to start worker",
					zap.Int("worker_id", i),
					zap.Error(err))
			}
		}
	}

	// Periodic cache cleanup
	go func() {
		ticker := time.NewTicker(cfg.Watermark.CacheDuration)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := storageService.CleanupCache(context.Background()); err != nil {
					logger.Warn("Cache cleanup failed", zap.Error(err))
				}
			}
		}
	}()

	// Initialize handlers
	watermarkHandler := handlers.NewWatermarkHandler(documentProcessor, storageService, queueService, logger, cfg)

	router := routes.NewRouter(watermarkHandler, logger, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.SetupRoutes(),
	}

	// Start server
	go func() {
		logger.Info("Starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
