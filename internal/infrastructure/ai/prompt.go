package ai

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/bike-ledgers/internal/application/dto"
)

// reportFields son los catorce campos narrativos, en el orden en que se piden.
var reportFields = []string{
	"billingValidation",
	"stockStatus",
	"lowStockAlerts",
	"restockingRecommendations",
	"salesAnalysis",
	"salesPrediction",
	"gstGuidance",
	"chatbotResponse",
	"invoiceSummary",
	"loginValidationStatus",
	"uiAuditStatus",
	"registrationStatus",
	"userDataStorageStatus",
	"settingsStatus",
}

// systemPrompt arma la instrucción de sistema con los datos de la empresa.
func systemPrompt(p dto.AuditProfile) string {
	return fmt.Sprintf(`You are an intelligent AI assistant for "Bike Ledgers", an Indian bike spare parts billing and stock system.

Responsibilities:
1. REGISTRATION & LOGIN: Acknowledge user lifecycle. Current company: %s.
2. SETTINGS & GSTIN: Company Name, Location and GSTIN are managed in Settings. Confirm the GSTIN is stored correctly.
3. BILLING: Validate quantities, pricing, calculation accuracy and tax norms. Check the invoice prefix (%s).
4. STOCK: Suggest restocking based on trends. Low stock alerts enabled: %t.
5. SALES: Predict revenue and identify fast and slow movers.
6. GST: Advise on the 5%%, 12%%, 18%% and 28%% slabs. Default GST from settings: %s%%.
7. SMART CHATBOT: Give actionable fix suggestions or report "Feature working as expected".

Rules:
- Language: concise, professional, Indian business context.
- Currency: INR.`, p.CompanyName, p.InvoicePrefix, p.LowStockAlertsEnabled, p.DefaultGSTRate.String())
}

// userPrompt serializa la instantánea como contexto de la pregunta.
func userPrompt(req dto.AuditRequest) (string, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("AI: serializar contexto: %w", err)
	}
	return fmt.Sprintf("Audit the current state for %s.\nUser Question: %q\nContext: %s\nProvide a comprehensive analysis in JSON format.",
		req.Profile.CompanyName, req.Question, raw), nil
}

// reportSchema es el esquema JSON del informe: catorce strings obligatorios.
func reportSchema() map[string]any {
	props := make(map[string]any, len(reportFields))
	for _, f := range reportFields {
		props[f] = map[string]string{"type": "STRING"}
	}
	return map[string]any{
		"type":       "OBJECT",
		"properties": props,
		"required":   reportFields,
	}
}

// decodeReport interpreta el JSON del modelo. Los campos ausentes quedan vacíos.
func decodeReport(raw string) (*dto.AuditReport, error) {
	var report dto.AuditReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w", err)
	}
	return &report, nil
}
