package billing_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bike-ledgers/internal/application/billing"
	"github.com/jhoicas/bike-ledgers/internal/application/dto"
	"github.com/jhoicas/bike-ledgers/internal/application/ledger"
	"github.com/jhoicas/bike-ledgers/internal/domain"
	"github.com/jhoicas/bike-ledgers/internal/domain/entity"
	"github.com/jhoicas/bike-ledgers/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func company() entity.CompanyProfile {
	return entity.CompanyProfile{
		Email:          "owner@motoparts.in",
		CompanyName:    "Moto Parts",
		DefaultTaxRate: decimal.NewFromInt(28),
		InvoicePrefix:  "MP-",
	}
}

func newBilling() (*billing.BillingUseCase, *ledger.State) {
	state := ledger.NewState(ledger.SampleProducts(), ledger.SampleBills())
	return billing.NewBillingUseCase(state, logger.Nop()), state
}

func rate(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrador
// ──────────────────────────────────────────────────────────────────────────────

func TestDraftLine_SinProductoUsaTarifaDeLaEmpresa(t *testing.T) {
	uc, _ := newBilling()

	line, err := uc.DraftLine(company(), dto.DraftLineRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, line.ID)
	assert.Equal(t, 1, line.Quantity)
	require.NotNil(t, line.GSTRate)
	assert.True(t, line.GSTRate.Equal(decimal.NewFromInt(28)))
}

func TestDraftLine_CopiaDatosDelProducto(t *testing.T) {
	uc, _ := newBilling()

	line, err := uc.DraftLine(company(), dto.DraftLineRequest{ProductID: "2", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, "Brake Pad Set (Front)", line.Name)
	assert.True(t, line.Price.Equal(decimal.NewFromInt(320)))
	assert.True(t, line.GSTRate.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, 2, line.Quantity)

	_, err = uc.DraftLine(company(), dto.DraftLineRequest{ProductID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateBill
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateBill_ComponeYDescuentaStock(t *testing.T) {
	uc, state := newBilling()

	out, err := uc.CreateBill(company(), dto.CreateBillRequest{
		CustomerName:  "Amit Patel",
		CustomerPhone: "9898989898",
		Items: []dto.BillLine{
			{ProductID: "2", Name: "Brake Pad Set (Front)", Price: decimal.NewFromInt(320), GSTRate: rate(12), Quantity: 2},
			{ProductID: "6", Quantity: 1}, // sin snapshot: se copia del catálogo
		},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.ID, "MP-"))
	assert.Len(t, out.ID, len("MP-")+6)
	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(760)))
	assert.True(t, out.GSTTotal.Equal(decimal.RequireFromString("98.4")))
	assert.True(t, out.Total.Equal(decimal.RequireFromString("858.4")))
	assert.Equal(t, "Spark Plug (NGK)", out.Items[1].Name)
	assert.NotEqual(t, out.Items[0].ID, out.Items[1].ID)

	p, _ := state.Product("2")
	assert.Equal(t, 13, p.Stock)
	assert.Len(t, state.StockLog(), 2)
}

func TestCreateBill_CuentaSinPrefijoUsaBL(t *testing.T) {
	uc, _ := newBilling()
	fresh := entity.CompanyProfile{Email: "nuevo@motoparts.in", CompanyName: "Nuevo"}

	out, err := uc.CreateBill(fresh, dto.CreateBillRequest{
		CustomerName: "Cliente",
		Items:        []dto.BillLine{{ProductID: "6", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.ID, "BL-"), out.ID)
	assert.Len(t, out.ID, len("BL-")+6)
}

func TestCreateBill_ConservaPrecioCapturado(t *testing.T) {
	uc, _ := newBilling()

	out, err := uc.CreateBill(company(), dto.CreateBillRequest{
		CustomerName: "Cliente",
		Items:        []dto.BillLine{{ProductID: "1", Name: "Engine Oil 1L (Syntix)", Price: decimal.NewFromInt(800), GSTRate: rate(18), Quantity: 1}},
	})
	require.NoError(t, err)
	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(800)), "el precio de la línea manda sobre el catálogo")
}

func TestCreateBill_Rechazos(t *testing.T) {
	uc, state := newBilling()

	cases := map[string]dto.CreateBillRequest{
		"sin cliente":          {Items: []dto.BillLine{{ProductID: "1", Quantity: 1}}},
		"sin lineas":           {CustomerName: "Cliente"},
		"producto inexistente": {CustomerName: "Cliente", Items: []dto.BillLine{{ProductID: "x", Quantity: 1}}},
		"gst invalido":         {CustomerName: "Cliente", Items: []dto.BillLine{{Name: "Libre", Price: decimal.NewFromInt(10), GSTRate: rate(7), Quantity: 1}}},
		"cantidad cero":        {CustomerName: "Cliente", Items: []dto.BillLine{{ProductID: "1", Quantity: 0}}},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.CreateBill(company(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Len(t, state.Bills(), 2)
	assert.Empty(t, state.StockLog())
}

// ──────────────────────────────────────────────────────────────────────────────
// Historial
// ──────────────────────────────────────────────────────────────────────────────

func TestListBills_OrdenadoPorFechaDescendente(t *testing.T) {
	uc, _ := newBilling()

	list := uc.ListBills()
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "B-1002", list.Items[0].ID)
	assert.Equal(t, "B-1001", list.Items[1].ID)
}

func TestGetYDeleteBill(t *testing.T) {
	uc, state := newBilling()

	got, err := uc.GetBill("B-1001")
	require.NoError(t, err)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(1003)))

	require.NoError(t, uc.DeleteBill("B-1001"))
	_, err = uc.GetBill("B-1001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.DeleteBill("B-1001"), domain.ErrNotFound)

	p, _ := state.Product("1")
	assert.Equal(t, 25, p.Stock, "borrar la factura no repone stock")
}

// ──────────────────────────────────────────────────────────────────────────────
// PDF
// ──────────────────────────────────────────────────────────────────────────────

type fakePDF struct {
	gotBill    entity.Bill
	gotCompany entity.CompanyProfile
	err        error
}

func (f *fakePDF) GenerateBillPDF(_ context.Context, bill entity.Bill, c entity.CompanyProfile) ([]byte, error) {
	f.gotBill, f.gotCompany = bill, c
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3"), nil
}

func TestDownloadBillPDF(t *testing.T) {
	state := ledger.NewState(nil, ledger.SampleBills())
	gen := &fakePDF{}
	uc := billing.NewPDFUseCase(state, gen)

	pdf, name, err := uc.DownloadBillPDF(context.Background(), entity.CompanyProfile{CompanyName: "Moto Parts"}, "B-1002")
	require.NoError(t, err)
	assert.Equal(t, "factura-B-1002.pdf", name)
	assert.Equal(t, []byte("%PDF-1.3"), pdf)
	assert.Equal(t, "B-1002", gen.gotBill.ID)
	assert.True(t, gen.gotCompany.DefaultTaxRate.Equal(decimal.NewFromInt(18)), "se aplican los valores por defecto del perfil")

	_, _, err = uc.DownloadBillPDF(context.Background(), entity.CompanyProfile{}, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	gen.err = errors.New("fuente no disponible")
	_, _, err = uc.DownloadBillPDF(context.Background(), entity.CompanyProfile{}, "B-1002")
	assert.Error(t, err)
}
