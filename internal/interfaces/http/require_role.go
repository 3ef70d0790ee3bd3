package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/compras-api/internal/application/dto"
)

// RequireRole devuelve un middleware Fiber que exige un rol en la empresa
// activa. Debe usarse DESPUÉS de TenantMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - 409 NO_ACTIVE_COMPANY → el usuario no tiene membresía activa.
//   - 403 Forbidden → tiene empresa activa pero otro rol.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetCompanyID(c) == "" {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "NO_ACTIVE_COMPANY",
				Message: "el usuario no tiene empresa activa",
			})
		}
		if GetRole(c) != role {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "se requiere rol '" + role + "' en la empresa activa",
			})
		}
		return c.Next()
	}
}
