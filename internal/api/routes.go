/**
 * @description
 * API Route definitions.
 * Sets up the router groups and assigns handlers.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2
 * - backend/internal/api/handlers
 * - backend/internal/services
 * - backend/internal/store
 */

package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paintcompare/backend/internal/api/handlers"
	"github.com/paintcompare/backend/internal/services"
	"github.com/paintcompare/backend/internal/store"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, st *store.MemStore, analyticsSvc *services.AnalyticsService, backupSvc *services.BackupService) {
	productHandler := handlers.NewProductHandler(st, analyticsSvc)
	competitorHandler := handlers.NewCompetitorHandler(st, analyticsSvc)
	priceHandler := handlers.NewPriceHandler(st, analyticsSvc)
	dashboardHandler := handlers.NewDashboardHandler(analyticsSvc)
	backupHandler := handlers.NewBackupHandler(backupSvc)

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Products; the analytics route registers before /:id to avoid a collision
	products := api.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Get("/with-prices", productHandler.ListProductsWithPrices)
	products.Get("/:id", productHandler.GetProduct)
	products.Post("/", productHandler.CreateProduct)
	products.Put("/:id", productHandler.UpdateProduct)
	products.Delete("/:id", productHandler.DeleteProduct)

	competitors := api.Group("/competitors")
	competitors.Get("/", competitorHandler.ListCompetitors)
	competitors.Get("/:id", competitorHandler.GetCompetitor)
	competitors.Post("/", competitorHandler.CreateCompetitor)
	competitors.Put("/:id", competitorHandler.UpdateCompetitor)
	competitors.Delete("/:id", competitorHandler.DeleteCompetitor)

	competitorPrices := api.Group("/competitor-prices")
	competitorPrices.Get("/", priceHandler.ListCompetitorPrices)
	competitorPrices.Post("/", priceHandler.CreateCompetitorPrice)
	competitorPrices.Put("/:id", priceHandler.UpdateCompetitorPrice)

	priceHistory := api.Group("/price-history")
	priceHistory.Get("/:productId", priceHandler.GetPriceHistory)
	priceHistory.Post("/", priceHandler.CreatePriceHistory)
	priceHistory.Put("/:id", priceHandler.UpdatePriceHistory)
	priceHistory.Delete("/:id", priceHandler.DeletePriceHistory)

	api.Get("/dashboard/kpis", dashboardHandler.GetKPIs)

	backup := api.Group("/jsonbin")
	backup.Get("/test", backupHandler.TestConnection)
	backup.Post("/backup", backupHandler.CreateBackup)
	backup.Post("/sync", backupHandler.Sync)
	backup.Get("/backups", backupHandler.ListBackups)
	backup.Post("/restore/:binId", backupHandler.Restore)
	backup.Delete("/backup/:binId", backupHandler.DeleteBackup)
}
