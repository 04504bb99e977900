/**
 * @description
 * Competitor API Handlers.
 * CRUD over tracked competitors.
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

// CompetitorHandler handles competitor-related requests
type CompetitorHandler struct {
	Store     *store.MemStore
	Analytics *services.AnalyticsService
}

// NewCompetitorHandler creates a new CompetitorHandler
func NewCompetitorHandler(st *store.MemStore, analytics *services.AnalyticsService) *CompetitorHandler {
	return &CompetitorHandler{
		Store:     st,
		Analytics: analytics,
	}
}

// ListCompetitors returns all tracked competitors
// GET /api/competitors
func (h *CompetitorHandler) ListCompetitors(c *fiber.Ctx) error {
	return c.JSON(h.Store.Competitors())
}

// GetCompetitor returns one competitor by id
// GET /api/competitors/:id
func (h *CompetitorHandler) GetCompetitor(c *fiber.Ctx) error {
	competitor, ok := h.Store.Competitor(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Competitor not found"})
	}
	return c.JSON(competitor)
}

// CreateCompetitor stores a new competitor
// POST /api/competitors
func (h *CompetitorHandler) CreateCompetitor(c *fiber.Ctx) error {
	var in models.InsertCompetitor
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(in.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Field 'name' is required"})
	}

	competitor := h.Store.CreateCompetitor(in)
	h.Analytics.InvalidateCache(c.Context())
	return c.Status(fiber.StatusCreated).JSON(competitor)
}

// UpdateCompetitor merges a partial payload onto an existing competitor
// PUT /api/competitors/:id
func (h *CompetitorHandler) UpdateCompetitor(c *fiber.Ctx) error {
	var patch models.CompetitorPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Field 'name' must not be empty"})
	}

	competitor, ok := h.Store.UpdateCompetitor(c.Params("id"), patch)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Competitor not found"})
	}
	h.Analytics.InvalidateCache(c.Context())
	return c.JSON(competitor)
}

// DeleteCompetitor removes a competitor and its price rows
// DELETE /api/competitors/:id
func (h *CompetitorHandler) DeleteCompetitor(c *fiber.Ctx) error {
	if !h.Store.DeleteCompetitor(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Competitor not found"})
	}
	h.Analytics.InvalidateCache(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}
