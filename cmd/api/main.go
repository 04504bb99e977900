/**
 * @description
 * Main entry point for the PaintCompare backend API.
 * Initializes the Fiber web server, loads configuration, and sets up routes.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2: Web framework
 * - backend/internal/config: Config loader
 * - backend/internal/db: Redis connection
 * - backend/internal/store: In-memory record store
 *
 * @notes
 * - The record store lives in memory and is seeded with the sample catalog;
 *   durability comes only from the JSONBin backup routes.
 */

package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/paintcompare/backend/internal/api"
	"github.com/paintcompare/backend/internal/config"
	"github.com/paintcompare/backend/internal/db"
	"github.com/paintcompare/backend/internal/jsonbin"
	"github.com/paintcompare/backend/internal/services"
	"github.com/paintcompare/backend/internal/store"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Redis (analytics cache)
	redisClient, err := db.ConnectRedis(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// 3. Record store, seeded so the dashboard is non-empty on first run
	memStore := store.NewSeeded()

	// 4. Services
	analyticsSvc := services.NewAnalyticsService(memStore, redisClient)
	backupSvc := services.NewBackupService(memStore, jsonbin.NewClient(cfg), analyticsSvc, cfg.JSONBin.BinID)

	// 5. Initialize Fiber App
	app := fiber.New(fiber.Config{
		AppName:       "PaintCompare Dashboard",
		StrictRouting: false,
		CaseSensitive: true,
	})

	// 6. Global Middleware
	app.Use(recover.New()) // Panic recovery
	app.Use(logger.New())  // Request logging
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// 7. Routes
	api.SetupRoutes(app, memStore, analyticsSvc, backupSvc)

	// 8. Start Server
	log.Printf("🚀 Starting PaintCompare backend on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
