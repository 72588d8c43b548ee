package billing

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bike-ledgers/internal/application/dto"
	"github.com/jhoicas/bike-ledgers/internal/application/ledger"
	"github.com/jhoicas/bike-ledgers/internal/domain"
	domainbilling "github.com/jhoicas/bike-ledgers/internal/domain/billing"
	"github.com/jhoicas/bike-ledgers/internal/domain/entity"
	"github.com/jhoicas/bike-ledgers/pkg/logger"
)

// BillingUseCase arma borradores, cierra facturas contra el ledger y expone el historial.
type BillingUseCase struct {
	state *ledger.State
	log   *logger.Logger
	now   func() time.Time
}

// NewBillingUseCase construye el caso de uso.
func NewBillingUseCase(state *ledger.State, log *logger.Logger) *BillingUseCase {
	return &BillingUseCase{state: state, log: log.Component("billing"), now: time.Now}
}

// DraftLine devuelve una línea de borrador. Sin producto, la línea lleva la
// tarifa GST por defecto de la empresa; con producto, copia nombre, precio y
// tarifa del catálogo en este momento.
func (uc *BillingUseCase) DraftLine(company entity.CompanyProfile, in dto.DraftLineRequest) (dto.BillLine, error) {
	company.ApplyDefaults()
	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}
	rate := company.DefaultTaxRate
	line := dto.BillLine{ID: uuid.NewString(), GSTRate: &rate, Quantity: qty}
	if in.ProductID == "" {
		return line, nil
	}
	p, ok := uc.state.Product(in.ProductID)
	if !ok {
		return dto.BillLine{}, domain.ErrNotFound
	}
	line.ProductID = p.ID
	line.Name = p.Name
	line.Price = p.Price
	pr := p.TaxRate
	line.GSTRate = &pr
	return line, nil
}

// CreateBill compone la factura con el prefijo de la empresa y la registra en el ledger.
func (uc *BillingUseCase) CreateBill(company entity.CompanyProfile, in dto.CreateBillRequest) (*dto.BillResponse, error) {
	company.ApplyDefaults()
	items, err := uc.resolveItems(company, in.Items)
	if err != nil {
		return nil, err
	}
	bill, err := domainbilling.ComposeBill(in.CustomerName, in.CustomerPhone, items, company.InvoicePrefix, uc.now())
	if err != nil {
		return nil, err
	}
	recorded := uc.state.RecordBill(bill)
	uc.log.Info().
		Str("bill_id", recorded.ID).
		Int("items", len(recorded.Items)).
		Str("total", recorded.GrandTotal.StringFixed(2)).
		Msg("factura registrada")
	return ToBillResponse(recorded), nil
}

// resolveItems convierte las líneas del cliente en BillItem. Las líneas que
// llegan sin nombre se completan con el catálogo actual.
func (uc *BillingUseCase) resolveItems(company entity.CompanyProfile, lines []dto.BillLine) ([]entity.BillItem, error) {
	items := make([]entity.BillItem, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for i, l := range lines {
		it := entity.BillItem{
			ID:        l.ID,
			ProductID: l.ProductID,
			Name:      strings.TrimSpace(l.Name),
			Price:     l.Price,
			TaxRate:   company.DefaultTaxRate,
			Quantity:  l.Quantity,
		}
		if l.GSTRate != nil {
			it.TaxRate = *l.GSTRate
		}
		if it.Name == "" {
			if l.ProductID == "" {
				return nil, fmt.Errorf("%w: línea %d sin producto", domain.ErrInvalidInput, i+1)
			}
			p, ok := uc.state.Product(l.ProductID)
			if !ok {
				return nil, fmt.Errorf("%w: línea %d con producto inexistente", domain.ErrInvalidInput, i+1)
			}
			it.Name, it.Price, it.TaxRate = p.Name, p.Price, p.TaxRate
		}
		if !entity.IsAllowedTaxRate(it.TaxRate) {
			return nil, fmt.Errorf("%w: línea %d con gst_rate %s", domain.ErrInvalidInput, i+1, it.TaxRate)
		}
		if _, dup := seen[it.ID]; it.ID == "" || dup {
			it.ID = uuid.NewString()
		}
		seen[it.ID] = struct{}{}
		items = append(items, it)
	}
	return items, nil
}

// ListBills devuelve el historial ordenado por fecha descendente.
func (uc *BillingUseCase) ListBills() dto.BillListResponse {
	bills := uc.state.Bills()
	sort.SliceStable(bills, func(i, j int) bool { return bills[i].Date.After(bills[j].Date) })
	items := make([]dto.BillResponse, 0, len(bills))
	for _, b := range bills {
		items = append(items, *ToBillResponse(b))
	}
	return dto.BillListResponse{Items: items, Total: len(items)}
}

// GetBill busca una factura por ID.
func (uc *BillingUseCase) GetBill(id string) (*dto.BillResponse, error) {
	b, ok := uc.state.Bill(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ToBillResponse(b), nil
}

// DeleteBill quita la factura del historial. El stock descontado no se repone.
func (uc *BillingUseCase) DeleteBill(id string) error {
	if !uc.state.DeleteBill(id) {
		return domain.ErrNotFound
	}
	uc.log.Info().Str("bill_id", id).Msg("factura eliminada")
	return nil
}

// ToBillResponse mapea la factura al DTO de salida.
func ToBillResponse(b entity.Bill) *dto.BillResponse {
	items := make([]dto.BillItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, dto.BillItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			GSTRate:   it.TaxRate,
			Quantity:  it.Quantity,
			Amount:    it.LineTotal(),
		})
	}
	return &dto.BillResponse{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Date:          b.Date,
		Items:         items,
		Subtotal:      b.Subtotal,
		GSTTotal:      b.TaxTotal,
		Total:         b.GrandTotal,
	}
}
