package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bike-ledgers/internal/application/dto"
	"github.com/jhoicas/bike-ledgers/internal/application/inventory"
)

// InventoryHandler maneja ajustes de stock, historial y reposición.
type InventoryHandler struct {
	uc            *inventory.InventoryUseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase, replenishment *inventory.ReplenishmentUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, replenishment: replenishment}
}

// UpdateStock fija la cantidad en existencia; el historial guarda la diferencia.
// PUT /api/products/:id/stock
func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStock(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// StockLog devuelve el historial de movimientos, más reciente primero.
// GET /api/stock-log
func (h *InventoryHandler) StockLog(c *fiber.Ctx) error {
	return c.JSON(h.uc.StockLog())
}

// Replenishment lista los productos en stock bajo con la cantidad sugerida a pedir.
// GET /api/products/replenishment
func (h *InventoryHandler) Replenishment(c *fiber.Ctx) error {
	return c.JSON(h.replenishment.GenerateReplenishmentList())
}
