package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bike-ledgers/internal/application/dto"
	"github.com/jhoicas/bike-ledgers/internal/application/ledger"
	"github.com/jhoicas/bike-ledgers/internal/domain/inventory"
)

// ReplenishmentUseCase genera la lista de reposición para los productos con stock bajo.
type ReplenishmentUseCase struct {
	state *ledger.State
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(state *ledger.State) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{state: state}
}

// GenerateReplenishmentList devuelve los productos en alerta con la cantidad
// sugerida para llegar a 1.5 × mínimo, priorizados por unidades vendidas y
// luego por déficit frente al mínimo.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList() []dto.ReplenishmentSuggestionDTO {
	sold := make(map[string]int)
	for _, b := range uc.state.Bills() {
		for _, it := range b.Items {
			sold[it.ProductID] += it.Quantity
		}
	}

	low := inventory.LowStock(uc.state.Products())
	out := make([]dto.ReplenishmentSuggestionDTO, 0, len(low))
	for _, p := range low {
		ideal := (p.MinThreshold*3 + 1) / 2 // ceil(1.5 × mínimo)
		qty := ideal - p.Stock
		if qty < 0 {
			qty = 0
		}
		out = append(out, dto.ReplenishmentSuggestionDTO{
			ProductID:         p.ID,
			ProductName:       p.Name,
			Category:          p.Category,
			CurrentStock:      p.Stock,
			MinThreshold:      p.MinThreshold,
			IdealStock:        ideal,
			SuggestedOrderQty: qty,
			EstimatedCost:     p.Price.Mul(decimal.NewFromInt(int64(qty))),
			UnitsSold:         sold[p.ID],
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.UnitsSold != b.UnitsSold {
			return a.UnitsSold > b.UnitsSold
		}
		return a.MinThreshold-a.CurrentStock > b.MinThreshold-b.CurrentStock
	})
	for i := range out {
		out[i].Priority = i + 1
	}
	return out
}
