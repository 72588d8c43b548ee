package dto

import "github.com/shopspring/decimal"

// DailySalesDTO ventas de un día calendario (YYYY-MM-DD).
type DailySalesDTO struct {
	Day   string          `json:"day"`
	Total decimal.Decimal `json:"total"`
}

// CategoryStockDTO stock total de una categoría.
type CategoryStockDTO struct {
	Category string `json:"category"`
	Stock    int    `json:"stock"`
}

// DashboardResponse resumen del panel principal.
type DashboardResponse struct {
	TotalSales      decimal.Decimal    `json:"total_sales"`
	TotalBills      int                `json:"total_bills"`
	TotalItemsSold  int                `json:"total_items_sold"`
	TotalProducts   int                `json:"total_products"`
	LowStockCount   int                `json:"low_stock_count"`
	LowStockAlerts  []ProductResponse  `json:"low_stock_alerts"`
	SalesByDay      []DailySalesDTO    `json:"sales_by_day"`
	StockByCategory []CategoryStockDTO `json:"stock_by_category"`
}
