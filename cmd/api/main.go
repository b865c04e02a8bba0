package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SandyBridge101/AudiophileEcommerce/internal/cart"
	"github.com/SandyBridge101/AudiophileEcommerce/internal/catalog"
	"github.com/SandyBridge101/AudiophileEcommerce/internal/config"
	"github.com/SandyBridge101/AudiophileEcommerce/internal/database"
	"github.com/SandyBridge101/AudiophileEcommerce/internal/handler"
	"github.com/SandyBridge101/AudiophileEcommerce/internal/repository"
	"github.com/SandyBridge101/AudiophileEcommerce/internal/router"
	"github.com/SandyBridge101/AudiophileEcommerce/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting audiophile API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize repositories over the configured store backend
	var (
		productRepo repository.ProductRepository
		orderRepo   repository.OrderRepository
	)

	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		if err := database.EnsureSchema(ctx, pool); err != nil {
			return fmt.Errorf("failed to ensure database schema: %w", err)
		}

		pgProductRepo := repository.NewProductRepository(pool, logger)
		if err := pgProductRepo.SeedProducts(ctx, catalog.Products()); err != nil {
			return fmt.Errorf("failed to seed product catalog: %w", err)
		}

		productRepo = pgProductRepo
		orderRepo = repository.NewOrderRepository(pool, logger)

	default:
		logger.Info().Msg("using in-memory store seeded from the built-in catalog")
		productRepo = repository.NewMemoryProductStore(catalog.Products(), logger)
		orderRepo = repository.NewMemoryOrderStore(logger)
	}

	// Initialize cart slot storage with S3 and local fallback
	var storageFactory cart.StorageFactory

	if cfg.Cart.Backend == config.CartBackendS3 {
		s3Client, err := cart.NewS3Client(ctx, cfg.Cart.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 cart storage, falling back to local file system")
			storageFactory = func(sessionID string) cart.Storage {
				return cart.NewFileStorage(cfg.Cart.Dir, sessionID, logger)
			}
		} else {
			storageFactory = func(sessionID string) cart.Storage {
				return cart.NewS3Storage(s3Client, cfg.Cart.Bucket, cfg.Cart.Prefix, sessionID, logger)
			}
		}
	} else {
		storageFactory = func(sessionID string) cart.Storage {
			return cart.NewFileStorage(cfg.Cart.Dir, sessionID, logger)
		}
		logger.Info().Str("dir", cfg.Cart.Dir).Msg("using local file system for cart slots")
	}

	cartRegistry := cart.NewRegistry(storageFactory, logger)

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	orderService := service.NewOrderService(orderRepo, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	cartHandler := handler.NewCartHandler(cartRegistry, logger)

	// Initialize router
	mux := router.New(productHandler, orderHandler, cartHandler, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
