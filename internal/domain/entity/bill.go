package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillItem es una línea de factura. Name, Price y TaxRate se copian del
// producto al seleccionarlo y no se recalculan si el producto cambia después.
type BillItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	TaxRate   decimal.Decimal `json:"gst_rate"`
	Quantity  int             `json:"quantity"`
}

// LineTotal devuelve price × quantity.
func (i BillItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// LineTax devuelve price × quantity × rate / 100.
func (i BillItem) LineTax() decimal.Decimal {
	return i.LineTotal().Mul(i.TaxRate).Div(decimal.NewFromInt(100))
}

// Bill es una factura cerrada; no se modifica después de componerse.
type Bill struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Date          time.Time       `json:"date"`
	Items         []BillItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxTotal      decimal.Decimal `json:"gst_total"`
	GrandTotal    decimal.Decimal `json:"total"`
}

// Clone devuelve una copia con su propio slice de líneas.
func (b Bill) Clone() Bill {
	out := b
	out.Items = append([]BillItem(nil), b.Items...)
	return out
}

// ItemCount suma las cantidades de todas las líneas.
func (b Bill) ItemCount() int {
	n := 0
	for _, it := range b.Items {
		n += it.Quantity
	}
	return n
}
