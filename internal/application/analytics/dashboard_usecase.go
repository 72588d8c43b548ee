// Package analytics contiene el resumen del panel principal.
package analytics

import (
	"github.com/jhoicas/bike-ledgers/internal/application/dto"
	appinventory "github.com/jhoicas/bike-ledgers/internal/application/inventory"
	"github.com/jhoicas/bike-ledgers/internal/application/ledger"
	domainanalytics "github.com/jhoicas/bike-ledgers/internal/domain/analytics"
	"github.com/jhoicas/bike-ledgers/internal/domain/inventory"
)

// DashboardUseCase arma el resumen del panel a partir del ledger.
// Todo se recalcula en cada llamada.
type DashboardUseCase struct {
	state *ledger.State
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(state *ledger.State) *DashboardUseCase {
	return &DashboardUseCase{state: state}
}

// GetSummary devuelve ventas totales, conteo de stock bajo, unidades vendidas
// y las series por día y por categoría. La lista de alertas de stock solo se
// llena si la empresa tiene las alertas activas; el conteo siempre se informa.
func (uc *DashboardUseCase) GetSummary(alertsEnabled bool) *dto.DashboardResponse {
	products := uc.state.Products()
	bills := uc.state.Bills()
	low := inventory.LowStock(products)

	out := &dto.DashboardResponse{
		TotalSales:      domainanalytics.TotalSales(bills),
		TotalBills:      len(bills),
		TotalItemsSold:  domainanalytics.TotalItemsSold(bills),
		TotalProducts:   len(products),
		LowStockCount:   len(low),
		LowStockAlerts:  []dto.ProductResponse{},
		SalesByDay:      []dto.DailySalesDTO{},
		StockByCategory: []dto.CategoryStockDTO{},
	}
	if alertsEnabled {
		for _, p := range low {
			out.LowStockAlerts = append(out.LowStockAlerts, appinventory.ToProductResponse(p))
		}
	}
	for _, d := range domainanalytics.SalesByDay(bills) {
		out.SalesByDay = append(out.SalesByDay, dto.DailySalesDTO{Day: d.Day, Total: d.Total})
	}
	for _, c := range inventory.StockByCategory(products) {
		out.StockByCategory = append(out.StockByCategory, dto.CategoryStockDTO{Category: c.Category, Stock: c.Stock})
	}
	return out
}
