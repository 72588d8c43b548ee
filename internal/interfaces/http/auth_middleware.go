package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bike-ledgers/internal/application/dto"
	"github.com/jhoicas/bike-ledgers/internal/domain/entity"
	"github.com/jhoicas/bike-ledgers/pkg/jwt"
)

// Locals keys de la sesión en Fiber.
const (
	LocalEmail   = "email"
	LocalCompany = "company"
	LocalProfile = "profile"
)

// ProfileSource resuelve la cuenta de la sesión.
type ProfileSource interface {
	Profile(email string) (entity.CompanyProfile, error)
}

// AuthMiddleware valida el Bearer Token JWT y deja email y empresa en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		email, company, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalEmail, email)
		c.Locals(LocalCompany, company)
		return c.Next()
	}
}

// LoadProfile carga la cuenta del token en c.Locals. Va después de
// AuthMiddleware; una cuenta que ya no existe responde 401.
func LoadProfile(src ProfileSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := src.Profile(GetEmail(c))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNKNOWN_ACCOUNT", Message: "la cuenta de la sesión no existe"})
		}
		c.Locals(LocalProfile, profile)
		return c.Next()
	}
}

// GetEmail devuelve el email de la sesión (después del middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}

// GetCompany devuelve el nombre de empresa del token.
func GetCompany(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalCompany).(string)
	return s
}

// GetProfile devuelve la cuenta cargada por LoadProfile.
func GetProfile(c *fiber.Ctx) entity.CompanyProfile {
	p, _ := c.Locals(LocalProfile).(entity.CompanyProfile)
	return p
}
