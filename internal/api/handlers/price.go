/**
 * @description
 * Price API Handlers.
 * Competitor price rows and the append-only price history log.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2
 * - backend/internal/services
 * - backend/internal/store
 *
 * @notes
 * - Reference validation happens here, not in the store: a create that names
 *   a missing product or competitor is rejected with 400 so no orphaned row
 *   enters the collections through the API.
 */

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paintcompare/backend/internal/models"
	"github.com/paintcompare/backend/internal/services"
	"github.com/paintcompare/backend/internal/store"
)

// PriceHandler handles competitor-price and price-history requests
type PriceHandler struct {
	Store     *store.MemStore
	Analytics *services.AnalyticsService
}

// NewPriceHandler creates a new PriceHandler
func NewPriceHandler(st *store.MemStore, analytics *services.AnalyticsService) *PriceHandler {
	return &PriceHandler{
		Store:     st,
		Analytics: analytics,
	}
}

// ListCompetitorPrices returns competitor price rows, optionally filtered
// GET /api/competitor-prices?productId=...
func (h *PriceHandler) ListCompetitorPrices(c *fiber.Ctx) error {
	return c.JSON(h.Store.CompetitorPrices(c.Query("productId")))
}

// CreateCompetitorPrice records a competitor price for a product
// POST /api/competitor-prices
func (h *PriceHandler) CreateCompetitorPrice(c *fiber.Ctx) error {
	var in models.InsertCompetitorPrice
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !in.Price.Positive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Price must be greater than zero"})
	}
	if _, ok := h.Store.Product(in.ProductID); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown product id"})
	}
	if _, ok := h.Store.Competitor(in.CompetitorID); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown competitor id"})
	}

	price := h.Store.CreateCompetitorPrice(in)
	h.Analytics.InvalidateCache(c.Context())
	return c.Status(fiber.StatusCreated).JSON(price)
}

// UpdateCompetitorPrice merges a partial payload onto an existing row
// PUT /api/competitor-prices/:id
func (h *PriceHandler) UpdateCompetitorPrice(c *fiber.Ctx) error {
	var patch models.CompetitorPricePatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if patch.Price != nil && !patch.Price.Positive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Price must be greater than zero"})
	}

	price, ok := h.Store.UpdateCompetitorPrice(c.Params("id"), patch)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Competitor price not found"})
	}
	h.Analytics.InvalidateCache(c.Context())
	return c.JSON(price)
}

// GetPriceHistory returns the price observations for a product
// GET /api/price-history/:productId
func (h *PriceHandler) GetPriceHistory(c *fiber.Ctx) error {
	return c.JSON(h.Store.PriceHistory(c.Params("productId")))
}

// CreatePriceHistory appends a price observation
// POST /api/price-history
func (h *PriceHandler) CreatePriceHistory(c *fiber.Ctx) error {
	var in models.InsertPriceHistory
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !in.Price.Positive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Price must be greater than zero"})
	}
	if _, ok := h.Store.Product(in.ProductID); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown product id"})
	}
	if in.CompetitorID != nil {
		if _, ok := h.Store.Competitor(*in.CompetitorID); !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown competitor id"})
		}
	}

	entry := h.Store.CreatePriceHistory(in)
	h.Analytics.InvalidateCache(c.Context())
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// UpdatePriceHistoryRequest carries the new price for a history entry
type UpdatePriceHistoryRequest struct {
	Price *models.Money `json:"price"`
}

// UpdatePriceHistory replaces the price of an entry and refreshes its timestamp
// PUT /api/price-history/:id
func (h *PriceHandler) UpdatePriceHistory(c *fiber.Ctx) error {
	var req UpdatePriceHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Price == nil || !req.Price.Positive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Valid price is required"})
	}

	entry, ok := h.Store.UpdatePriceHistoryPrice(c.Params("id"), *req.Price)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Price history entry not found"})
	}
	h.Analytics.InvalidateCache(c.Context())
	return c.JSON(entry)
}

// DeletePriceHistory removes one history entry
// DELETE /api/price-history/:id
func (h *PriceHandler) DeletePriceHistory(c *fiber.Ctx) error {
	if !h.Store.DeletePriceHistory(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Price history entry not found"})
	}
	h.Analytics.InvalidateCache(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}
