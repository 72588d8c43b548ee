package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/bike-ledgers/internal/application/ledger"
	"github.com/jhoicas/bike-ledgers/internal/domain"
	"github.com/jhoicas/bike-ledgers/internal/domain/entity"
)

// InvoicePDFGenerator puerto de salida que renderiza la factura imprimible.
type InvoicePDFGenerator interface {
	GenerateBillPDF(ctx context.Context, bill entity.Bill, company entity.CompanyProfile) ([]byte, error)
}

// PDFUseCase genera la factura imprimible a partir de una factura registrada.
// Es una proyección de solo lectura.
type PDFUseCase struct {
	state     *ledger.State
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(state *ledger.State, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{state: state, generator: generator}
}

// DownloadBillPDF devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *PDFUseCase) DownloadBillPDF(ctx context.Context, company entity.CompanyProfile, billID string) ([]byte, string, error) {
	bill, ok := uc.state.Bill(billID)
	if !ok {
		return nil, "", domain.ErrNotFound
	}
	company.ApplyDefaults()
	pdf, err := uc.generator.GenerateBillPDF(ctx, bill, company)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar factura %s: %w", billID, err)
	}
	return pdf, fmt.Sprintf("factura-%s.pdf", bill.ID), nil
}
