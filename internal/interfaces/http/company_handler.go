package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bike-ledgers/internal/application/auth"
	"github.com/jhoicas/bike-ledgers/internal/application/dto"
)

// CompanyHandler expone la configuración de la empresa de la sesión.
type CompanyHandler struct {
	uc *auth.AuthUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *auth.AuthUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// GetSettings devuelve el perfil con valores por defecto aplicados.
// GET /api/settings
func (h *CompanyHandler) GetSettings(c *fiber.Ctx) error {
	return c.JSON(auth.ToProfileResponse(GetProfile(c)))
}

// UpdateSettings guarda la configuración.
// PUT /api/settings
func (h *CompanyHandler) UpdateSettings(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateProfile(c.UserContext(), GetEmail(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
