package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bike-ledgers/internal/application/dto"
	"github.com/jhoicas/bike-ledgers/internal/application/ledger"
	"github.com/jhoicas/bike-ledgers/internal/domain"
	"github.com/jhoicas/bike-ledgers/internal/domain/entity"
	"github.com/jhoicas/bike-ledgers/internal/domain/inventory"
	"github.com/jhoicas/bike-ledgers/pkg/logger"
)

// Valores por defecto del formulario de alta.
const (
	DefaultCategory     = "General"
	DefaultMinThreshold = 5
	DefaultTaxRate      = 18
)

// InventoryUseCase casos de uso del catálogo sobre el ledger compartido.
type InventoryUseCase struct {
	state *ledger.State
	log   *logger.Logger
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(state *ledger.State, log *logger.Logger) *InventoryUseCase {
	return &InventoryUseCase{state: state, log: log.Component("inventory")}
}

// Create valida el formulario y agrega el producto al ledger.
func (uc *InventoryUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	if !in.Price.IsPositive() {
		return nil, fmt.Errorf("%w: price debe ser mayor que 0", domain.ErrInvalidInput)
	}
	p := entity.Product{
		Name:         name,
		Category:     strings.TrimSpace(in.Category),
		Price:        in.Price,
		Stock:        in.Stock,
		MinThreshold: DefaultMinThreshold,
		TaxRate:      decimal.NewFromInt(DefaultTaxRate),
	}
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if in.MinThreshold != nil {
		if *in.MinThreshold < 0 {
			return nil, fmt.Errorf("%w: min_threshold no puede ser negativo", domain.ErrInvalidInput)
		}
		p.MinThreshold = *in.MinThreshold
	}
	if in.TaxRate != nil {
		if !entity.IsAllowedTaxRate(*in.TaxRate) {
			return nil, fmt.Errorf("%w: gst_rate debe ser 5, 12, 18 o 28", domain.ErrInvalidInput)
		}
		p.TaxRate = *in.TaxRate
	}

	created := uc.state.AddProduct(p)
	uc.log.Debug().Str("product_id", created.ID).Int("stock", created.Stock).Msg("producto agregado")
	out := ToProductResponse(created)
	return &out, nil
}

// List devuelve el inventario filtrado por nombre y categoría.
func (uc *InventoryUseCase) List(f dto.ProductFilter) dto.ProductListResponse {
	products := inventory.Filter(uc.state.Products(), f.Search, f.Category)
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}
	return dto.ProductListResponse{Items: items, Total: len(items)}
}

// Categories devuelve las categorías del catálogo precedidas por "All".
func (uc *InventoryUseCase) Categories() []string {
	return append([]string{inventory.AllCategories}, inventory.Categories(uc.state.Products())...)
}

// UpdateStock fija el stock. El ledger ignora IDs desconocidos; aquí se
// reporta ErrNotFound al solicitante sin alterar ese comportamiento.
func (uc *InventoryUseCase) UpdateStock(productID string, in dto.UpdateStockRequest) (*dto.ProductResponse, error) {
	if in.Stock == nil {
		return nil, fmt.Errorf("%w: stock es obligatorio", domain.ErrInvalidInput)
	}
	p, ok := uc.state.UpdateStock(productID, *in.Stock)
	if !ok {
		return nil, domain.ErrNotFound
	}
	uc.log.Debug().Str("product_id", productID).Int("stock", p.Stock).Msg("stock actualizado")
	out := ToProductResponse(p)
	return &out, nil
}

// Delete quita el producto del catálogo.
func (uc *InventoryUseCase) Delete(productID string) error {
	if !uc.state.DeleteProduct(productID) {
		return domain.ErrNotFound
	}
	uc.log.Debug().Str("product_id", productID).Msg("producto eliminado")
	return nil
}

// StockLog devuelve el historial de stock con el nombre del producto cuando aún existe.
func (uc *InventoryUseCase) StockLog() []dto.StockLogEntryResponse {
	names := make(map[string]string)
	for _, p := range uc.state.Products() {
		names[p.ID] = p.Name
	}
	entries := uc.state.StockLog()
	out := make([]dto.StockLogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.StockLogEntryResponse{
			ID:          e.ID,
			ProductID:   e.ProductID,
			ProductName: names[e.ProductID],
			Change:      e.Change,
			Type:        string(e.Kind),
			Date:        e.Date,
		})
	}
	return out
}

// ToProductResponse mapea la entidad al DTO de salida.
func ToProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Price:        p.Price,
		Stock:        p.Stock,
		MinThreshold: p.MinThreshold,
		TaxRate:      p.TaxRate,
		LowStock:     inventory.IsLowStock(p),
	}
}
