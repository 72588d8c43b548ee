package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DraftLineRequest pide una línea de borrador. Sin ProductID devuelve una
// línea vacía con la tarifa GST por defecto de la empresa.
type DraftLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// BillLine línea de factura tal como la envía el cliente. Name, Price y
// GSTRate son la copia tomada al seleccionar el producto; si Name llega
// vacío se copian del catálogo en el momento de la facturación.
type BillLine struct {
	ID        string           `json:"id"`
	ProductID string           `json:"product_id"`
	Name      string           `json:"name"`
	Price     decimal.Decimal  `json:"price"`
	GSTRate   *decimal.Decimal `json:"gst_rate"`
	Quantity  int              `json:"quantity"`
}

// CreateBillRequest borrador de factura.
type CreateBillRequest struct {
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	Items         []BillLine `json:"items"`
}

// BillItemResponse línea de una factura cerrada.
type BillItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	GSTRate   decimal.Decimal `json:"gst_rate"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
}

// BillResponse salida de una factura.
type BillResponse struct {
	ID            string             `json:"id"`
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	Date          time.Time          `json:"date"`
	Items         []BillItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	GSTTotal      decimal.Decimal    `json:"gst_total"`
	Total         decimal.Decimal    `json:"total"`
}

// BillListResponse historial de facturas, más recientes primero.
type BillListResponse struct {
	Items []BillResponse `json:"items"`
	Total int            `json:"total"`
}
