package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bike-ledgers/internal/domain"
	"github.com/jhoicas/bike-ledgers/internal/domain/billing"
	"github.com/jhoicas/bike-ledgers/internal/domain/entity"
)

var fixedNow = time.Date(2024, 5, 16, 14, 45, 0, 0, time.UTC)

func line(productID string, price, rate int64, qty int) entity.BillItem {
	return entity.BillItem{
		ID:        productID + "-line",
		ProductID: productID,
		Name:      "Repuesto " + productID,
		Price:     decimal.NewFromInt(price),
		TaxRate:   decimal.NewFromInt(rate),
		Quantity:  qty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Totales
// ──────────────────────────────────────────────────────────────────────────────

// Pastillas de freno (320, 12%) x2 + bujía (120, 18%) x1 → 760 / 98.4 / 858.4.
func TestComposeBill_FacturaDeEjemplo(t *testing.T) {
	bill, err := billing.ComposeBill("Amit Patel", "9898989898",
		[]entity.BillItem{line("2", 320, 12, 2), line("6", 120, 18, 1)}, "INV-", fixedNow)
	require.NoError(t, err)

	assert.True(t, bill.Subtotal.Equal(decimal.NewFromInt(760)), "subtotal: %s", bill.Subtotal)
	assert.True(t, bill.TaxTotal.Equal(decimal.RequireFromString("98.4")), "impuesto: %s", bill.TaxTotal)
	assert.True(t, bill.GrandTotal.Equal(decimal.RequireFromString("858.4")), "total: %s", bill.GrandTotal)
}

func TestComposeBill_TotalEsSubtotalMasImpuesto(t *testing.T) {
	cases := [][]entity.BillItem{
		{line("a", 0, 5, 1)},
		{line("a", 999, 28, 7), line("b", 1, 5, 3)},
		{line("a", 850, 18, 1), line("b", 320, 12, 4), line("c", 650, 28, 2)},
	}
	for _, items := range cases {
		bill, err := billing.ComposeBill("Cliente", "", items, "BL-", fixedNow)
		require.NoError(t, err)

		sum := decimal.Zero
		for _, it := range items {
			sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		assert.True(t, bill.Subtotal.Equal(sum))
		assert.True(t, bill.GrandTotal.Equal(bill.Subtotal.Add(bill.TaxTotal)))
	}
}

func TestComposeBill_CopiaLasLineasEnOrden(t *testing.T) {
	items := []entity.BillItem{line("x", 10, 5, 1), line("y", 20, 5, 1)}
	bill, err := billing.ComposeBill("Cliente", "", items, "BL-", fixedNow)
	require.NoError(t, err)

	items[0].Name = "modificado"
	require.Len(t, bill.Items, 2)
	assert.Equal(t, "x", bill.Items[0].ProductID)
	assert.Equal(t, "y", bill.Items[1].ProductID)
	assert.NotEqual(t, "modificado", bill.Items[0].Name, "la factura no comparte memoria con el borrador")
}

// ──────────────────────────────────────────────────────────────────────────────
// Identificador y fecha
// ──────────────────────────────────────────────────────────────────────────────

func TestComposeBill_IDConPrefijoYSufijoDeReloj(t *testing.T) {
	now := time.UnixMilli(1715855100123)
	bill, err := billing.ComposeBill("Cliente", "", []entity.BillItem{line("a", 10, 5, 1)}, "INV-", now)
	require.NoError(t, err)

	assert.Equal(t, "INV-100123", bill.ID)
	assert.Equal(t, now.UTC(), bill.Date)
}

func TestBillID_PrefijoPorDefecto(t *testing.T) {
	assert.Equal(t, "BL-100123", billing.BillID("", time.UnixMilli(1715855100123)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Precondiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestComposeBill_RechazaBorradorIncompleto(t *testing.T) {
	_, err := billing.ComposeBill("  ", "", []entity.BillItem{line("a", 10, 5, 1)}, "BL-", fixedNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cliente vacío")

	_, err = billing.ComposeBill("Cliente", "", nil, "BL-", fixedNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas")

	_, err = billing.ComposeBill("Cliente", "", []entity.BillItem{line("a", 10, 5, 0)}, "BL-", fixedNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")
}
