package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/application/usecase"
)

// MembershipHandler maneja membresías usuario-empresa: alta, activación
// (cambio de empresa activa), revocación y listado.
type MembershipHandler struct {
	uc *usecase.MembershipUseCase
}

// NewMembershipHandler construye el handler.
func NewMembershipHandler(uc *usecase.MembershipUseCase) *MembershipHandler {
	return &MembershipHandler{uc: uc}
}

// Add godoc
// @Summary      Agregar membresía (inactiva) a un usuario en la empresa activa del invitante
// @Tags         memberships
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddMembershipRequest  true  "Usuario, empresa y rol"
// @Success      201   {object}  dto.MembershipResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/memberships [post]
func (h *MembershipHandler) Add(c *fiber.Ctx) error {
	var in dto.AddMembershipRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Add(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Activate godoc
// @Summary      Activar la membresía del usuario autenticado en una empresa
// @Description  Desactiva cualquier otra membresía activa del usuario y enciende la elegida (a lo sumo una activa).
// @Tags         memberships
// @Security     Bearer
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.MembershipResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/memberships/{companyId}/activate [post]
func (h *MembershipHandler) Activate(c *fiber.Ctx) error {
	companyID := c.Params("companyId")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "companyId es requerido"})
	}
	out, err := h.uc.Activate(c.Context(), GetUserID(c), companyID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar la membresía del usuario autenticado en una empresa
// @Tags         memberships
// @Security     Bearer
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/memberships/{companyId} [delete]
func (h *MembershipHandler) Deactivate(c *fiber.Ctx) error {
	companyID := c.Params("companyId")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "companyId es requerido"})
	}
	if err := h.uc.Deactivate(c.Context(), GetUserID(c), companyID); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar membresías del usuario autenticado
// @Tags         memberships
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MembershipResponse
// @Router       /api/memberships [get]
func (h *MembershipHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListForUser(c.Context(), GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
