package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. Los campos vacíos toman
// los valores por defecto del formulario (categoría General, mínimo 5, GST 18).
type CreateProductRequest struct {
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	Price        decimal.Decimal  `json:"price"`
	Stock        int              `json:"stock"`
	MinThreshold *int             `json:"min_threshold"`
	TaxRate      *decimal.Decimal `json:"gst_rate"`
}

// ProductFilter filtros del listado de inventario.
type ProductFilter struct {
	Search   string `query:"search"`
	Category string `query:"category"`
}

// ProductResponse salida de un producto con su indicador de stock bajo.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	MinThreshold int             `json:"min_threshold"`
	TaxRate      decimal.Decimal `json:"gst_rate"`
	LowStock     bool            `json:"low_stock"`
}

// ProductListResponse listado filtrado del inventario.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
