package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	httpapi "github.com/solarchallenge/climate-explorer/internal/api/http"
	"github.com/solarchallenge/climate-explorer/internal/climate"
	"github.com/solarchallenge/climate-explorer/internal/config"
	"github.com/solarchallenge/climate-explorer/internal/scheduler"
	"github.com/solarchallenge/climate-explorer/internal/source"
	"github.com/solarchallenge/climate-explorer/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Pick the data source: remote when configured, local CSV dir otherwise.
	var src climate.Source
	if cfg.DataBaseURL != "" || len(cfg.CountryURLs) > 0 {
		httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
		src = source.NewHTTP(httpClient, cfg.DataBaseURL, cfg.CountryURLs)
		log.Printf("INFO: loading country data from remote source")
	} else {
		src = source.NewDir(cfg.DataDir)
		log.Printf("INFO: loading country data from %s", cfg.DataDir)
	}

	// Dataset cache with configured validity.
	cache := store.New(cfg.CacheTTL)

	// Core service running the load-merge-preprocess pipeline.
	service := climate.NewService(src, cfg.Countries, cache)

	// Build the session dataset up front; an empty dataset is fatal.
	startCtx, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := service.Reload(startCtx); err != nil {
		cancelStart()
		log.Fatalf("failed to build dataset: %v", err)
	}
	cancelStart()

	// Scheduler that periodically rebuilds the dataset.
	sched := scheduler.New(cfg.RefreshInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "climate-explorer",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "climate-explorer",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	// Start server with graceful shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
