// Package billing contiene el cálculo de facturas (servicio de dominio puro).
package billing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bike-ledgers/internal/domain"
	"github.com/jhoicas/bike-ledgers/internal/domain/entity"
)

// FallbackPrefix se usa cuando la empresa no tiene prefijo configurado.
const FallbackPrefix = "BL-"

// BillID arma el identificador: prefijo + últimos 6 dígitos del epoch en milisegundos.
// La unicidad es de mejor esfuerzo: dos facturas separadas por 10^6 ms exactos colisionan.
func BillID(prefix string, now time.Time) string {
	if prefix == "" {
		prefix = FallbackPrefix
	}
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return prefix + ms
}

// ComposeBill convierte un borrador (cliente + líneas) en una factura cerrada.
// Orden del cálculo: subtotal = Σ price×qty, impuesto = Σ price×qty×rate/100,
// total = subtotal + impuesto. No toca el ledger; el llamador registra la factura.
func ComposeBill(customerName, customerPhone string, items []entity.BillItem, invoicePrefix string, now time.Time) (entity.Bill, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return entity.Bill{}, fmt.Errorf("%w: nombre del cliente requerido", domain.ErrInvalidInput)
	}
	if len(items) == 0 {
		return entity.Bill{}, fmt.Errorf("%w: la factura no tiene líneas", domain.ErrInvalidInput)
	}
	for i, it := range items {
		if it.Quantity <= 0 {
			return entity.Bill{}, fmt.Errorf("%w: línea %d con cantidad %d", domain.ErrInvalidInput, i+1, it.Quantity)
		}
		if it.Price.IsNegative() {
			return entity.Bill{}, fmt.Errorf("%w: línea %d con precio negativo", domain.ErrInvalidInput, i+1)
		}
	}

	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.LineTotal())
	}
	taxTotal := decimal.Zero
	for _, it := range items {
		taxTotal = taxTotal.Add(it.LineTax())
	}

	return entity.Bill{
		ID:            BillID(invoicePrefix, now),
		CustomerName:  customerName,
		CustomerPhone: strings.TrimSpace(customerPhone),
		Date:          now.UTC(),
		Items:         append([]entity.BillItem(nil), items...),
		Subtotal:      subtotal,
		TaxTotal:      taxTotal,
		GrandTotal:    subtotal.Add(taxTotal),
	}, nil
}
