/**
 * @description
 * Dashboard API Handlers.
 * Exposes the aggregated KPI record.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2
 * - backend/internal/services
 */

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paintcompare/backend/internal/services"
)

// DashboardHandler handles dashboard requests
type DashboardHandler struct {
	Analytics *services.AnalyticsService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(analytics *services.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{Analytics: analytics}
}

// GetKPIs returns the catalog-wide KPI record
// GET /api/dashboard/kpis
func (h *DashboardHandler) GetKPIs(c *fiber.Ctx) error {
	return c.JSON(h.Analytics.DashboardKPIs(c.Context()))
}
