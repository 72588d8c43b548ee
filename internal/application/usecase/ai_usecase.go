package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jhoicas/bike-ledgers/internal/application/dto"
	"github.com/jhoicas/bike-ledgers/internal/application/ledger"
	"github.com/jhoicas/bike-ledgers/internal/application/ports"
	"github.com/jhoicas/bike-ledgers/internal/domain"
	"github.com/jhoicas/bike-ledgers/internal/domain/entity"
	"github.com/jhoicas/bike-ledgers/pkg/logger"
)

const (
	// DefaultQuestion se envía cuando el usuario no escribe nada.
	DefaultQuestion = "General Business Audit"
	// HistoryWindow es cuántas facturas y movimientos recientes se envían.
	HistoryWindow = 20
	// UnavailableMessage es lo que ve el usuario cuando el análisis falla.
	UnavailableMessage = "no hay análisis disponible"
)

// AIUseCase orquesta la auditoría asistida por IA. Solo admite una solicitud
// en vuelo; mientras tanto, las demás reciben ErrAssistantBusy. La llamada al
// modelo no tiene timeout ni reintentos.
type AIUseCase struct {
	llm      ports.LLMService
	state    *ledger.State
	log      *logger.Logger
	now      func() time.Time
	inFlight atomic.Bool

	mu   sync.Mutex
	chat []dto.ChatMessage
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(llm ports.LLMService, state *ledger.State, log *logger.Logger) *AIUseCase {
	return &AIUseCase{llm: llm, state: state, log: log.Component("assistant"), now: time.Now}
}

// Analyze toma una instantánea del ledger y pide el informe al modelo.
// Con pregunta, el turno del usuario y la respuesta del bot se agregan al
// chat. Un fallo del servicio se registra y se responde Available=false sin
// error; el único error devuelto es ErrAssistantBusy.
func (uc *AIUseCase) Analyze(ctx context.Context, company entity.CompanyProfile, in dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	if !uc.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrAssistantBusy
	}
	defer uc.inFlight.Store(false)

	question := strings.TrimSpace(in.Question)
	if question != "" {
		uc.appendChat("user", question)
	}

	req := uc.snapshot(company, question)
	// El análisis sigue aunque el cliente se desconecte.
	report, err := uc.llm.AuditBusiness(context.WithoutCancel(ctx), req)
	if err != nil {
		if errors.Is(err, domain.ErrAIUnavailable) {
			uc.log.Warn().Err(err).Msg("asistente IA sin configurar")
		} else {
			uc.log.Error().Err(err).Str("company", company.CompanyName).Msg("análisis IA fallido")
		}
		return &dto.AnalyzeResponse{Available: false, Message: UnavailableMessage, Chat: uc.Chat()}, nil
	}

	if question != "" {
		uc.appendChat("bot", report.ChatbotResponse)
	}
	return &dto.AnalyzeResponse{Available: true, Report: report, Chat: uc.Chat()}, nil
}

// Chat devuelve una copia del historial de conversación.
func (uc *AIUseCase) Chat() []dto.ChatMessage {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]dto.ChatMessage, len(uc.chat))
	copy(out, uc.chat)
	return out
}

func (uc *AIUseCase) appendChat(role, text string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.chat = append(uc.chat, dto.ChatMessage{Role: role, Text: text, At: uc.now().UTC()})
}

func (uc *AIUseCase) snapshot(company entity.CompanyProfile, question string) dto.AuditRequest {
	if question == "" {
		question = DefaultQuestion
	}
	products := uc.state.Products()
	bills := uc.state.Bills()
	logEntries := uc.state.StockLog()

	req := dto.AuditRequest{
		Question: question,
		Profile: dto.AuditProfile{
			Email:                 company.Email,
			CompanyName:           company.CompanyName,
			Location:              company.CompanyLocation,
			GSTIN:                 company.GSTIN,
			DefaultGSTRate:        company.DefaultTaxRate,
			InvoicePrefix:         company.InvoicePrefix,
			LowStockAlertsEnabled: company.LowStockAlertsEnabled,
		},
		Products:       make([]dto.AuditProduct, 0, len(products)),
		BillingHistory: []dto.AuditBill{},
		StockHistory:   []dto.AuditStockChange{},
	}
	if req.Profile.GSTIN == "" {
		req.Profile.GSTIN = "Not set"
	}
	for _, p := range products {
		req.Products = append(req.Products, dto.AuditProduct{Name: p.Name, Stock: p.Stock, MinThreshold: p.MinThreshold})
	}
	// Las colecciones ya vienen de más reciente a más antigua.
	if len(bills) > 0 {
		req.CurrentBill = auditBill(bills[0])
	}
	for i := 0; i < len(bills) && i < HistoryWindow; i++ {
		req.BillingHistory = append(req.BillingHistory, auditBill(bills[i]))
	}
	for i := 0; i < len(logEntries) && i < HistoryWindow; i++ {
		e := logEntries[i]
		req.StockHistory = append(req.StockHistory, dto.AuditStockChange{
			ProductID: e.ProductID, Change: e.Change, Type: string(e.Kind), Date: e.Date,
		})
	}
	return req
}

func auditBill(b entity.Bill) dto.AuditBill {
	date := b.Date
	return dto.AuditBill{
		ID:       b.ID,
		Date:     &date,
		Items:    b.ItemCount(),
		Subtotal: b.Subtotal,
		GST:      b.TaxTotal,
		Total:    b.GrandTotal,
	}
}
