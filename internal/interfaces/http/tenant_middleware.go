package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/application/tenant"
	"github.com/jhoicas/compras-api/internal/domain"
)

// TenantMiddleware resuelve la membresía activa del usuario autenticado y
// publica CompanyID y Role en c.Locals. Debe usarse DESPUÉS de AuthMiddleware.
//
// No corta la request cuando el usuario no tiene empresa activa: los casos
// de uso responden a esa condición (listas vacías en lecturas,
// ErrNoActiveCompany en escrituras). Sí corta con 503 si la consulta de
// membresías falla por infraestructura.
func TenantMiddleware(resolver *tenant.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token"})
		}
		link, err := resolver.ActiveMembership(c.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrNoActiveCompany) {
				return c.Next()
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "MEMBERSHIP_CHECK_FAILED", Message: "no se pudo resolver la empresa activa, intente más tarde"})
		}
		c.Locals(LocalCompanyID, link.CompanyID)
		c.Locals(LocalRole, link.Role)
		return c.Next()
	}
}
