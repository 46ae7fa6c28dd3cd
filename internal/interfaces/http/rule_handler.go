package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/usecase"
)

// PriceRuleHandler CRUD de reglas de precio (protegido).
type PriceRuleHandler struct {
	uc *usecase.PriceRuleUseCase
}

// NewPriceRuleHandler construye el handler.
func NewPriceRuleHandler(uc *usecase.PriceRuleUseCase) *PriceRuleHandler {
	return &PriceRuleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear regla de precio
// @Tags         price-rules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SavePriceRuleRequest  true  "Regla"
// @Success      201   {object}  entity.PriceRule
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/price-rules [post]
func (h *PriceRuleHandler) Create(c *fiber.Ctx) error {
	var in dto.SavePriceRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar regla de precio
// @Tags         price-rules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la regla"
// @Param        body  body  dto.SavePriceRuleRequest  true  "Regla"
// @Success      200   {object}  entity.PriceRule
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/price-rules/{id} [put]
func (h *PriceRuleHandler) Update(c *fiber.Ctx) error {
	var in dto.SavePriceRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener regla de precio
// @Tags         price-rules
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la regla"
// @Success      200  {object}  entity.PriceRule
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/price-rules/{id} [get]
func (h *PriceRuleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "regla no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar reglas de precio
// @Tags         price-rules
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.PriceRule
// @Router       /api/price-rules [get]
func (h *PriceRuleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar regla de precio
// @Tags         price-rules
// @Security     Bearer
// @Param        id  path  string  true  "ID de la regla"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/price-rules/{id} [delete]
func (h *PriceRuleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
