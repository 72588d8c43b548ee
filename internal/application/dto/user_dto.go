package dto

import "github.com/shopspring/decimal"

// RegisterRequest alta de una cuenta de empresa.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	CompanyName     string `json:"company_name"`
	CompanyLocation string `json:"company_location"`
	GSTIN           string `json:"gstin"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest solicitud de restablecimiento.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ProfileResponse cuenta sin credenciales.
type ProfileResponse struct {
	Email                 string          `json:"email"`
	CompanyName           string          `json:"company_name"`
	CompanyLocation       string          `json:"company_location"`
	GSTIN                 string          `json:"gstin"`
	DefaultGSTRate        decimal.Decimal `json:"default_gst_rate"`
	InvoicePrefix         string          `json:"invoice_prefix"`
	LowStockAlertsEnabled bool            `json:"low_stock_alerts_enabled"`
}

// LoginResponse token de sesión más el perfil.
type LoginResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}
