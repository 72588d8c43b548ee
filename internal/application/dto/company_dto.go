package dto

import "github.com/shopspring/decimal"

// UpdateSettingsRequest guarda la configuración de la empresa. Los campos nil
// no se modifican.
type UpdateSettingsRequest struct {
	CompanyName           *string          `json:"company_name"`
	CompanyLocation       *string          `json:"company_location"`
	GSTIN                 *string          `json:"gstin"`
	DefaultGSTRate        *decimal.Decimal `json:"default_gst_rate"`
	InvoicePrefix         *string          `json:"invoice_prefix"`
	LowStockAlertsEnabled *bool            `json:"low_stock_alerts_enabled"`
}
