package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bike-ledgers/internal/application/dto"
	"github.com/jhoicas/bike-ledgers/internal/application/ledger"
	"github.com/jhoicas/bike-ledgers/internal/application/usecase"
	"github.com/jhoicas/bike-ledgers/internal/domain"
	"github.com/jhoicas/bike-ledgers/internal/domain/entity"
	"github.com/jhoicas/bike-ledgers/pkg/logger"
)

type fakeLLM struct {
	got     dto.AuditRequest
	err     error
	block   chan struct{}
	started chan struct{}
}

func (f *fakeLLM) AuditBusiness(_ context.Context, req dto.AuditRequest) (*dto.AuditReport, error) {
	f.got = req
	if f.started != nil {
		close(f.started)
	}
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return &dto.AuditReport{ChatbotResponse: "Feature working as expected", StockStatus: "ok"}, nil
}

func profile() entity.CompanyProfile {
	p := entity.CompanyProfile{Email: "shop@example.com", CompanyName: "Moto Hub", LowStockAlertsEnabled: true}
	p.ApplyDefaults()
	return p
}

func newAI(llm *fakeLLM) *usecase.AIUseCase {
	state := ledger.NewState(ledger.SampleProducts(), ledger.SampleBills())
	return usecase.NewAIUseCase(llm, state, logger.Nop())
}

func TestAnalyze_SinPreguntaUsaAuditoriaGeneral(t *testing.T) {
	llm := &fakeLLM{}
	uc := newAI(llm)

	out, err := uc.Analyze(context.Background(), profile(), dto.AnalyzeRequest{})
	require.NoError(t, err)

	assert.True(t, out.Available)
	require.NotNil(t, out.Report)
	assert.Equal(t, "ok", out.Report.StockStatus)
	assert.Empty(t, out.Chat, "sin pregunta no se agregan turnos")

	assert.Equal(t, usecase.DefaultQuestion, llm.got.Question)
	assert.Equal(t, "Not set", llm.got.Profile.GSTIN)
	assert.Len(t, llm.got.Products, 6)
	assert.Equal(t, "B-1002", llm.got.CurrentBill.ID)
	assert.Equal(t, 3, llm.got.CurrentBill.Items)
	assert.Len(t, llm.got.BillingHistory, 2)
	assert.Empty(t, llm.got.StockHistory)
}

func TestAnalyze_PreguntaAgregaTurnosAlChat(t *testing.T) {
	uc := newAI(&fakeLLM{})

	out, err := uc.Analyze(context.Background(), profile(), dto.AnalyzeRequest{Question: "  ¿qué repongo?  "})
	require.NoError(t, err)

	require.Len(t, out.Chat, 2)
	assert.Equal(t, "user", out.Chat[0].Role)
	assert.Equal(t, "¿qué repongo?", out.Chat[0].Text)
	assert.Equal(t, "bot", out.Chat[1].Role)
	assert.Equal(t, "Feature working as expected", out.Chat[1].Text)
	assert.Len(t, uc.Chat(), 2)
}

func TestAnalyze_FalloDelServicioNoEsError(t *testing.T) {
	uc := newAI(&fakeLLM{err: errors.New("HTTP 500")})

	out, err := uc.Analyze(context.Background(), profile(), dto.AnalyzeRequest{Question: "hola"})
	require.NoError(t, err)

	assert.False(t, out.Available)
	assert.Nil(t, out.Report)
	assert.Equal(t, usecase.UnavailableMessage, out.Message)
	require.Len(t, out.Chat, 1, "solo queda el turno del usuario")
}

func TestAnalyze_SegundaSolicitudEnVueloEsRechazada(t *testing.T) {
	llm := &fakeLLM{block: make(chan struct{}), started: make(chan struct{})}
	uc := newAI(llm)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = uc.Analyze(context.Background(), profile(), dto.AnalyzeRequest{})
	}()
	<-llm.started

	_, err := uc.Analyze(context.Background(), profile(), dto.AnalyzeRequest{})
	assert.ErrorIs(t, err, domain.ErrAssistantBusy)

	close(llm.block)
	wg.Wait()

	llm.block, llm.started = nil, nil
	_, err = uc.Analyze(context.Background(), profile(), dto.AnalyzeRequest{})
	assert.NoError(t, err, "el cupo se libera al terminar")
}

func TestAnalyze_HistorialLimitadoALosMasRecientes(t *testing.T) {
	llm := &fakeLLM{}
	state := ledger.NewState(ledger.SampleProducts(), nil)
	for i := 0; i < 25; i++ {
		state.UpdateStock("1", i)
	}
	uc := usecase.NewAIUseCase(llm, state, logger.Nop())

	_, err := uc.Analyze(context.Background(), profile(), dto.AnalyzeRequest{})
	require.NoError(t, err)

	require.Len(t, llm.got.StockHistory, usecase.HistoryWindow)
	assert.Equal(t, 1, llm.got.StockHistory[0].Change, "la entrada más reciente va primero (24 - 23)")
	assert.True(t, llm.got.CurrentBill.Total.IsZero())
}
