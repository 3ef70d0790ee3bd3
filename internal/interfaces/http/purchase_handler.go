package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/application/purchasing"
)

// PurchaseHandler maneja notas de compra y cuentas por pagar (protegido).
type PurchaseHandler struct {
	uc       *purchasing.PurchaseUseCase
	payables *purchasing.PayableUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *purchasing.PurchaseUseCase, payables *purchasing.PayableUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc, payables: payables}
}

// Create godoc
// @Summary      Crear nota de compra (cabezal + líneas + cuotas)
// @Description  Todo entra en una sola transacción. El total del cabezal se recalcula de las líneas. El número es único por (empresa, proveedor).
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseInvoiceRequest  true  "Nota de compra"
// @Success      201   {object}  dto.PurchaseInvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener nota de compra por ID (con líneas y cuotas)
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la nota"
// @Success      200  {object}  dto.PurchaseInvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [get]
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.Context(), GetUserID(c), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar notas de compra de la empresa activa
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.PurchaseInvoiceResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.List(c.Context(), GetUserID(c), page)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Finalize godoc
// @Summary      Finalizar nota de compra
// @Description  Pasa de DRAFT a FINALIZED y alimenta el libro con un movimiento IN por línea, en una sola transacción.
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la nota"
// @Success      200  {object}  dto.PurchaseInvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id}/finalize [post]
func (h *PurchaseHandler) Finalize(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Finalize(c.Context(), GetUserID(c), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar nota de compra
// @Description  Un DRAFT se cancela sin tocar el libro. Un FINALIZED revierte sus entradas con movimientos RET_OUT (el libro nunca se edita).
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la nota"
// @Success      200  {object}  dto.PurchaseInvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id}/cancel [post]
func (h *PurchaseHandler) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Cancel(c.Context(), GetUserID(c), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListPayables godoc
// @Summary      Listar cuentas por pagar de la empresa activa
// @Tags         payables
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "PENDING | PAID | OVERDUE"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.PayableResponse
// @Router       /api/payables [get]
func (h *PurchaseHandler) ListPayables(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.payables.List(c.Context(), GetUserID(c), c.Query("status"), page)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// PayPayable godoc
// @Summary      Pagar una cuota
// @Description  Pasa la cuota de PENDING u OVERDUE a PAID con su fecha de pago (hoy si no se envía).
// @Tags         payables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cuota"
// @Param        body  body  dto.PayRequest  false  "Fecha de pago"
// @Success      200   {object}  dto.PayableResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/payables/{id}/pay [post]
func (h *PurchaseHandler) PayPayable(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.PayRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	out, err := h.payables.Pay(c.Context(), GetUserID(c), id, in.PaymentDate)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// MarkOverdue godoc
// @Summary      Marcar cuotas vencidas
// @Description  Pasa a OVERDUE toda cuota PENDING con vencimiento anterior a hoy. Devuelve cuántas cambió.
// @Tags         payables
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int64
// @Router       /api/payables/mark-overdue [post]
func (h *PurchaseHandler) MarkOverdue(c *fiber.Ctx) error {
	n, err := h.payables.MarkOverdue(c.Context(), GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"updated": n})
}
