package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-pos/internal/application/cart"
	"github.com/jhoicas/tienda-pos/internal/application/dto"
)

// CartHandler carrito de venta (sesión única de caja).
type CartHandler struct {
	uc *cart.UseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *cart.UseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get godoc
// @Summary      Estado actual del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar producto al carrito (por id o código de barras)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddProduct(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateItem godoc
// @Summary      Modificar una línea (cantidad, descuento, precio manual, combo)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.UpdateCartLineRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/items/{productId} [put]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateCartLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateLine(c.Context(), c.Params("productId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ApplyRule godoc
// @Summary      Aplicar una regla de precio a una línea
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.ApplyRuleRequest  true  "Regla a aplicar"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/cart/items/{productId}/rule [post]
func (h *CartHandler) ApplyRule(c *fiber.Ctx) error {
	var in dto.ApplyRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ApplyRule(c.Context(), c.Params("productId"), in.RuleID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LineRules godoc
// @Summary      Reglas de precio aplicables a una línea
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {array}  entity.PriceRule
// @Router       /api/cart/items/{productId}/rules [get]
func (h *CartHandler) LineRules(c *fiber.Ctx) error {
	out, err := h.uc.RulesForLine(c.Context(), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Quitar una línea del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.uc.RemoveLine(c.Context(), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Vaciar el carrito
// @Tags         cart
// @Security     Bearer
// @Success      204
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetStore godoc
// @Summary      Cambiar la tienda activa (solo con carrito vacío)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.SetCartStoreRequest  true  "Tienda"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cart/store [put]
func (h *CartHandler) SetStore(c *fiber.Ctx) error {
	var in dto.SetCartStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetStore(c.Context(), in.StoreID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Checkout godoc
// @Summary      Cerrar la venta: descuenta stock y limpia el carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.SaleSummary
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cart/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	out, err := h.uc.Checkout(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
