package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/bike-ledgers/internal/application/analytics"
)

// DashboardHandler maneja el resumen del panel principal.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve ventas, stock bajo y las series por día y categoría.
// GET /api/dashboard
//
// La lista low_stock_alerts solo se llena si la empresa tiene las alertas
// activas; low_stock_count siempre viene.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary(GetProfile(c).LowStockAlertsEnabled))
}
