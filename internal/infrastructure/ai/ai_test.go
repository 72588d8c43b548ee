package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bike-ledgers/internal/application/dto"
	"github.com/jhoicas/bike-ledgers/internal/domain"
)

func auditRequest() dto.AuditRequest {
	return dto.AuditRequest{
		Question: "General Business Audit",
		Profile: dto.AuditProfile{
			CompanyName:           "Moto Hub",
			DefaultGSTRate:        decimal.NewFromInt(18),
			InvoicePrefix:         "INV-",
			LowStockAlertsEnabled: true,
		},
		Products: []dto.AuditProduct{{Name: "LED Headlamp Bulb", Stock: 4, MinThreshold: 10}},
	}
}

const reportJSON = `{"billingValidation":"ok","stockStatus":"bajo","chatbotResponse":"Feature working as expected","settingsStatus":"ok"}`

func TestGemini_EnviaEsquemaYDecodificaInforme(t *testing.T) {
	var got geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &got))
		resp := map[string]any{
			"candidates": []any{map[string]any{
				"content": map[string]any{"parts": []any{map[string]any{"text": reportJSON}}},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	svc := NewGeminiService("k", "gemini-test", WithBaseURL(srv.URL))
	report, err := svc.AuditBusiness(context.Background(), auditRequest())
	require.NoError(t, err)

	assert.Equal(t, "bajo", report.StockStatus)
	assert.Equal(t, "Feature working as expected", report.ChatbotResponse)
	assert.Empty(t, report.SalesPrediction)

	assert.Equal(t, "application/json", got.GenerationConfig.ResponseMIMEType)
	required, ok := got.GenerationConfig.ResponseSchema["required"].([]any)
	require.True(t, ok)
	assert.Len(t, required, 14)
	require.NotNil(t, got.SystemInstruction)
	assert.Contains(t, got.SystemInstruction.Parts[0].Text, "Moto Hub")
	assert.Contains(t, got.SystemInstruction.Parts[0].Text, "Default GST from settings: 18%")
	assert.Contains(t, got.Contents[0].Parts[0].Text, "LED Headlamp Bulb")
}

func TestGemini_ErrorDelProveedor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota"}}`))
	}))
	defer srv.Close()

	_, err := NewGeminiService("k", "m", WithBaseURL(srv.URL)).AuditBusiness(context.Background(), auditRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota")
}

func TestGemini_SinAPIKey(t *testing.T) {
	_, err := NewGeminiService("", "m").AuditBusiness(context.Background(), auditRequest())
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
}

func TestAnthropic_ExtraeJSONEnvueltoEnMarkdown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "k", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		var body anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "claude-test", body.Model)
		assert.Contains(t, body.System, "userDataStorageStatus")

		resp := map[string]any{
			"content": []any{map[string]any{"type": "text", "text": "Aquí está:\n```json\n" + reportJSON + "\n```"}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	svc := NewAnthropicService("k", "claude-test", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	report, err := svc.AuditBusiness(context.Background(), auditRequest())
	require.NoError(t, err)
	assert.Equal(t, "ok", report.BillingValidation)
}

func TestAnthropic_SinAPIKey(t *testing.T) {
	_, err := NewAnthropicService("", "m").AuditBusiness(context.Background(), auditRequest())
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, extractJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, extractJSON(`texto {"a":1} fin`))
	assert.Empty(t, extractJSON("sin json"))
}
