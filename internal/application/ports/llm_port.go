package ports

import (
	"context"

	"github.com/jhoicas/bike-ledgers/internal/application/dto"
)

// LLMService define el puerto de salida hacia el modelo de lenguaje que
// redacta la auditoría del negocio. Cualquier adaptador (Gemini, Anthropic,
// mock) implementa esta interfaz; la aplicación solo conoce el contrato.
type LLMService interface {
	// AuditBusiness envía la instantánea del negocio y devuelve los campos
	// narrativos del informe. No se reintenta ante errores.
	AuditBusiness(ctx context.Context, req dto.AuditRequest) (*dto.AuditReport, error)
}
