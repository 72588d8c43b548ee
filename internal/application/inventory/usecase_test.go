package inventory_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bike-ledgers/internal/application/dto"
	appinventory "github.com/jhoicas/bike-ledgers/internal/application/inventory"
	"github.com/jhoicas/bike-ledgers/internal/application/ledger"
	"github.com/jhoicas/bike-ledgers/internal/domain"
	"github.com/jhoicas/bike-ledgers/pkg/logger"
)

func newUseCase() (*appinventory.InventoryUseCase, *ledger.State) {
	state := ledger.NewState(ledger.SampleProducts(), ledger.SampleBills())
	return appinventory.NewInventoryUseCase(state, logger.Nop()), state
}

func intPtr(n int) *int { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AplicaValoresPorDefecto(t *testing.T) {
	uc, state := newUseCase()

	out, err := uc.Create(dto.CreateProductRequest{Name: "Clutch Cable", Price: decimal.NewFromInt(210), Stock: 3})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "General", out.Category)
	assert.Equal(t, 5, out.MinThreshold)
	assert.True(t, out.TaxRate.Equal(decimal.NewFromInt(18)))
	assert.True(t, out.LowStock, "3 <= 5")

	log := state.StockLog()
	require.Len(t, log, 1)
	assert.Equal(t, 3, log[0].Change)
}

func TestCreate_LogEtiquetadoUnaSolaVez(t *testing.T) {
	var buf bytes.Buffer
	state := ledger.NewState(nil, nil)
	uc := appinventory.NewInventoryUseCase(state, logger.NewWriter(&buf, "debug"))

	_, err := uc.Create(dto.CreateProductRequest{Name: "Clutch Cable", Price: decimal.NewFromInt(210)})
	require.NoError(t, err)

	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, `"component":"inventory"`)
	assert.Equal(t, 1, strings.Count(line, `"component"`))
}

func TestCreate_Validaciones(t *testing.T) {
	uc, state := newUseCase()
	bad := decimal.NewFromInt(15)

	cases := map[string]dto.CreateProductRequest{
		"sin nombre":      {Name: " ", Price: decimal.NewFromInt(10)},
		"precio cero":     {Name: "X", Price: decimal.Zero},
		"precio negativo": {Name: "X", Price: decimal.NewFromInt(-1)},
		"gst invalido":    {Name: "X", Price: decimal.NewFromInt(10), TaxRate: &bad},
		"minimo negativo": {Name: "X", Price: decimal.NewFromInt(10), MinThreshold: intPtr(-1)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Len(t, state.Products(), 6, "ninguna alta inválida llega al ledger")
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltraYMarcaStockBajo(t *testing.T) {
	uc, _ := newUseCase()

	out := uc.List(dto.ProductFilter{Category: "Electrical"})
	require.Equal(t, 2, out.Total)
	assert.Equal(t, "LED Headlamp Bulb", out.Items[0].Name)
	assert.True(t, out.Items[0].LowStock)
	assert.False(t, out.Items[1].LowStock)
}

func TestCategories_IncluyeAll(t *testing.T) {
	uc, _ := newUseCase()
	cats := uc.Categories()
	assert.Equal(t, "All", cats[0])
	assert.Len(t, cats, 6)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock y borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStock(t *testing.T) {
	uc, state := newUseCase()

	out, err := uc.UpdateStock("1", dto.UpdateStockRequest{Stock: intPtr(30)})
	require.NoError(t, err)
	assert.Equal(t, 30, out.Stock)

	_, err = uc.UpdateStock("nope", dto.UpdateStockRequest{Stock: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.UpdateStock("1", dto.UpdateStockRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Len(t, state.StockLog(), 1)
}

func TestDeleteYStockLog(t *testing.T) {
	uc, _ := newUseCase()

	require.NoError(t, uc.Delete("5"))
	assert.ErrorIs(t, uc.Delete("5"), domain.ErrNotFound)

	log := uc.StockLog()
	require.Len(t, log, 2, "el borrado se registra incluso si el ID ya no existe")
	assert.Equal(t, "deletion", log[0].Type)
	assert.Empty(t, log[0].ProductName, "el producto ya no existe")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reposición
// ──────────────────────────────────────────────────────────────────────────────

func TestReplenishment_SoloStockBajoConCantidadSugerida(t *testing.T) {
	state := ledger.NewState(ledger.SampleProducts(), ledger.SampleBills())
	state.UpdateStock("2", 1) // Brake Pad: mínimo 5, vendidas 2 en las facturas de ejemplo
	uc := appinventory.NewReplenishmentUseCase(state)

	list := uc.GenerateReplenishmentList()
	require.Len(t, list, 2)

	assert.Equal(t, "2", list[0].ProductID, "más unidades vendidas primero")
	assert.Equal(t, 1, list[0].Priority)
	assert.Equal(t, 8, list[0].IdealStock, "ceil(1.5 × 5)")
	assert.Equal(t, 7, list[0].SuggestedOrderQty)
	assert.True(t, list[0].EstimatedCost.Equal(decimal.NewFromInt(2240)))

	assert.Equal(t, "4", list[1].ProductID)
	assert.Equal(t, 15, list[1].IdealStock)
	assert.Equal(t, 11, list[1].SuggestedOrderQty)
}
