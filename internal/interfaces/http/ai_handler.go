package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bike-ledgers/internal/application/dto"
	"github.com/jhoicas/bike-ledgers/internal/application/usecase"
)

// AIHandler maneja el asistente de auditoría del negocio.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Analyze godoc
// @Summary      Auditoría IA del negocio
// @Description  Envía catálogo, facturas e historial recientes al modelo. Una sola solicitud a la vez (429 si hay otra en curso); si el modelo falla responde 200 con available=false.
// @Tags         assistant
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AnalyzeRequest  false  "question (opcional)"
// @Success      200   {object}  dto.AnalyzeResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/assistant/analyze [post]
func (h *AIHandler) Analyze(c *fiber.Ctx) error {
	var in dto.AnalyzeRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	out, err := h.uc.Analyze(c.UserContext(), GetProfile(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Chat devuelve la conversación acumulada.
// GET /api/assistant/chat
func (h *AIHandler) Chat(c *fiber.Ctx) error {
	return c.JSON(h.uc.Chat())
}
