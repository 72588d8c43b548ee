package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Valores por defecto de la configuración de facturación. DefaultInvoicePrefix
// es solo lo que muestra la configuración mientras la cuenta no guarde uno;
// las facturas de una cuenta sin prefijo usan el de respaldo del compositor.
const (
	DefaultInvoicePrefix = "INV-"
	DefaultTaxRate       = 18
)

// CompanyProfile es la cuenta de la tienda: credenciales de acceso más la
// configuración de facturación. Se persiste como JSON en el almacén de cuentas.
type CompanyProfile struct {
	Email                 string          `json:"email"`
	PasswordHash          string          `json:"password_hash"`
	CompanyName           string          `json:"company_name"`
	CompanyLocation       string          `json:"company_location"`
	GSTIN                 string          `json:"gstin,omitempty"`
	DefaultTaxRate        decimal.Decimal `json:"default_gst_rate"`
	InvoicePrefix         string          `json:"invoice_prefix"`
	LowStockAlertsEnabled bool            `json:"low_stock_alerts_enabled"`
}

// ApplyDefaults completa la tarifa GST vacía y normaliza el GSTIN. El prefijo
// de factura queda como está.
func (p *CompanyProfile) ApplyDefaults() {
	if p.DefaultTaxRate.IsZero() {
		p.DefaultTaxRate = decimal.NewFromInt(DefaultTaxRate)
	}
	p.GSTIN = strings.ToUpper(strings.TrimSpace(p.GSTIN))
}
