package entity

import "github.com/shopspring/decimal"

// Tarifas de GST admitidas (porcentaje).
var AllowedTaxRates = []int64{5, 12, 18, 28}

// Product representa un repuesto vendible.
// Stock puede quedar negativo: las ventas no se validan contra existencias.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	MinThreshold int             `json:"min_threshold"`
	TaxRate      decimal.Decimal `json:"gst_rate"` // porcentaje: 5, 12, 18 o 28
}

// IsAllowedTaxRate indica si rate pertenece al conjunto de tarifas GST.
func IsAllowedTaxRate(rate decimal.Decimal) bool {
	for _, r := range AllowedTaxRates {
		if rate.Equal(decimal.NewFromInt(r)) {
			return true
		}
	}
	return false
}
