package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bike-ledgers/internal/application/billing"
	"github.com/jhoicas/bike-ledgers/internal/application/dto"
)

// InvoiceHandler maneja el borrador, la emisión y el historial de facturas (protegido).
type InvoiceHandler struct {
	uc  *billing.BillingUseCase
	pdf *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.BillingUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf}
}

// DraftLine devuelve una línea de borrador; con product_id copia nombre,
// precio y GST del catálogo.
// POST /api/bills/lines
func (h *InvoiceHandler) DraftLine(c *fiber.Ctx) error {
	var in dto.DraftLineRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	line, err := h.uc.DraftLine(GetProfile(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(line)
}

// Create godoc
// @Summary      Emitir factura
// @Description  Compone la factura con las líneas del borrador, la registra y descuenta stock.
// @Tags         bills
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBillRequest  true  "cliente y líneas"
// @Success      201   {object}  dto.BillResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bills [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBillRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateBill(GetProfile(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devuelve el historial ordenado por fecha descendente.
// GET /api/bills
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListBills())
}

// GetByID obtiene una factura.
// GET /api/bills/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetBill(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF devuelve la factura imprimible.
// GET /api/bills/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.pdf.DownloadBillPDF(c.UserContext(), GetProfile(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	return c.Send(pdf)
}

// Delete borra la factura del historial. El stock no se restaura.
// DELETE /api/bills/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteBill(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
