package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Asistente IA: solicitud ───────────────────────────────────────────────────

// AnalyzeRequest pregunta libre al asistente (opcional).
type AnalyzeRequest struct {
	Question string `json:"question"`
}

// AuditProfile perfil de empresa que acompaña la solicitud.
type AuditProfile struct {
	Email                 string          `json:"email"`
	CompanyName           string          `json:"company"`
	Location              string          `json:"location"`
	GSTIN                 string          `json:"gstin"`
	DefaultGSTRate        decimal.Decimal `json:"default_gst"`
	InvoicePrefix         string          `json:"prefix"`
	LowStockAlertsEnabled bool            `json:"alerts"`
}

// AuditProduct producto reducido a nombre, stock y mínimo.
type AuditProduct struct {
	Name         string `json:"name"`
	Stock        int    `json:"stock"`
	MinThreshold int    `json:"min"`
}

// AuditBill resumen de una factura para el modelo.
type AuditBill struct {
	ID       string          `json:"id,omitempty"`
	Date     *time.Time      `json:"date,omitempty"`
	Items    int             `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	GST      decimal.Decimal `json:"gst"`
	Total    decimal.Decimal `json:"total"`
}

// AuditStockChange entrada del historial de stock para el modelo.
type AuditStockChange struct {
	ProductID string    `json:"product_id"`
	Change    int       `json:"change"`
	Type      string    `json:"type"`
	Date      time.Time `json:"date"`
}

// AuditRequest instantánea del negocio enviada al servicio de IA.
type AuditRequest struct {
	Question       string             `json:"userQuestion"`
	Profile        AuditProfile       `json:"userProfile"`
	Products       []AuditProduct     `json:"productStockData"`
	CurrentBill    AuditBill          `json:"currentBill"`
	BillingHistory []AuditBill        `json:"billingHistory"`
	StockHistory   []AuditStockChange `json:"stockHistory"`
}

// ── Asistente IA: respuesta ───────────────────────────────────────────────────

// AuditReport son los campos narrativos que devuelve el modelo. Son texto
// libre; no se interpretan más allá del nombre del campo.
type AuditReport struct {
	BillingValidation         string `json:"billingValidation"`
	StockStatus               string `json:"stockStatus"`
	LowStockAlerts            string `json:"lowStockAlerts"`
	RestockingRecommendations string `json:"restockingRecommendations"`
	SalesAnalysis             string `json:"salesAnalysis"`
	SalesPrediction           string `json:"salesPrediction"`
	GSTGuidance               string `json:"gstGuidance"`
	ChatbotResponse           string `json:"chatbotResponse"`
	InvoiceSummary            string `json:"invoiceSummary"`
	LoginValidationStatus     string `json:"loginValidationStatus"`
	UIAuditStatus             string `json:"uiAuditStatus"`
	RegistrationStatus        string `json:"registrationStatus"`
	UserDataStorageStatus     string `json:"userDataStorageStatus"`
	SettingsStatus            string `json:"settingsStatus"`
}

// ChatMessage turno de la conversación con el asistente.
type ChatMessage struct {
	Role string    `json:"role"` // "user" | "bot"
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// AnalyzeResponse resultado de un análisis. Available=false cuando el
// servicio falló; en ese caso Report es nil.
type AnalyzeResponse struct {
	Available bool          `json:"available"`
	Message   string        `json:"message,omitempty"`
	Report    *AuditReport  `json:"report,omitempty"`
	Chat      []ChatMessage `json:"chat"`
}
