/**
 * @description
 * Product API Handlers.
 * CRUD over the product catalog plus the derived comparison listing.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2
 * - backend/internal/services
 * - backend/internal/store
 */

package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/paintcompare/backend/internal/models"
	"github.com/paintcompare/backend/internal/services"
	"github.com/paintcompare/backend/internal/store"
)

// ProductHandler handles product-related requests
type ProductHandler struct {
	Store     *store.MemStore
	Analytics *services.AnalyticsService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(st *store.MemStore, analytics *services.AnalyticsService) *ProductHandler {
	return &ProductHandler{
		Store:     st,
		Analytics: analytics,
	}
}

// ListProducts returns the whole catalog
// GET /api/products
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	return c.JSON(h.Store.Products())
}

// ListProductsWithPrices returns the catalog with joined competitor prices
// and derived competitiveness fields
// GET /api/products/with-prices
func (h *ProductHandler) ListProductsWithPrices(c *fiber.Ctx) error {
	return c.JSON(h.Analytics.ProductComparisons(c.Context()))
}

// GetProduct returns one product by id
// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	p, ok := h.Store.Product(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	return c.JSON(p)
}

// CreateProduct stores a new product
// POST /api/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var in models.InsertProduct
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := validateInsertProduct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	product := h.Store.CreateProduct(in)
	h.Analytics.InvalidateCache(c.Context())
	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct merges a partial payload onto an existing product
// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	var patch models.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if patch.Price != nil && !patch.Price.Positive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Price must be greater than zero"})
	}

	product, ok := h.Store.UpdateProduct(c.Params("id"), patch)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	h.Analytics.InvalidateCache(c.Context())
	return c.JSON(product)
}

// DeleteProduct removes a product and its dependent price rows
// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	if !h.Store.DeleteProduct(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	h.Analytics.InvalidateCache(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}

func validateInsertProduct(in models.InsertProduct) string {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", in.Name},
		{"brand", in.Brand},
		{"type", in.Type},
		{"size", in.Size},
		{"color", in.Color},
	} {
		if strings.TrimSpace(field.value) == "" {
			return "Field '" + field.name + "' is required"
		}
	}
	if !in.Price.Positive() {
		return "Price must be greater than zero"
	}
	return ""
}
