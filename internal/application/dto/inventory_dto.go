package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateStockRequest fija la cantidad en stock de un producto.
type UpdateStockRequest struct {
	Stock *int `json:"stock"`
}

// StockLogEntryResponse entrada del historial de stock.
type StockLogEntryResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	Change      int       `json:"change"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
}

// ReplenishmentSuggestionDTO sugerencia de pedido para un producto con stock bajo.
type ReplenishmentSuggestionDTO struct {
	Priority          int             `json:"priority"`
	ProductID         string          `json:"product_id"`
	ProductName       string          `json:"product_name"`
	Category          string          `json:"category"`
	CurrentStock      int             `json:"current_stock"`
	MinThreshold      int             `json:"min_threshold"`
	IdealStock        int             `json:"ideal_stock"`
	SuggestedOrderQty int             `json:"suggested_order_qty"`
	EstimatedCost     decimal.Decimal `json:"estimated_cost"`
	UnitsSold         int             `json:"units_sold"`
}
