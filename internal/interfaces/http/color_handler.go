package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jquiroga/tienda-api/internal/application/dto"
	"github.com/jquiroga/tienda-api/internal/application/usecase"
)

// ColorHandler maneja las peticiones HTTP para Color.
type ColorHandler struct {
	uc *usecase.ColorUseCase
}

// NewColorHandler construye el handler.
func NewColorHandler(uc *usecase.ColorUseCase) *ColorHandler {
	return &ColorHandler{uc: uc}
}

// Create godoc
// @Summary      Crear color
// @Tags         colors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateColorRequest  true  "Datos del color"
// @Success      201   {object}  dto.Response{data=dto.ColorResponse}
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/colors [post]
func (h *ColorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateColorRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", MsgInvalidBody)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return created(c, "color creado", out)
}

// GetByID godoc
// @Summary      Obtener color por ID
// @Tags         colors
// @Produce      json
// @Param        id   path  string  true  "ID del color"
// @Success      200  {object}  dto.Response{data=dto.ColorResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/colors/{id} [get]
func (h *ColorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", MsgNotFound)
	}
	return ok(c, "color", out)
}

// List godoc
// @Summary      Listar colores
// @Tags         colors
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.ColorResponse}
// @Router       /api/colors [get]
func (h *ColorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "colores", out)
}

// Update godoc
// @Summary      Actualizar color (parche parcial)
// @Tags         colors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del color"
// @Param        body  body  dto.UpdateColorRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.ColorResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/colors/{id} [put]
func (h *ColorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateColorRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", MsgInvalidBody)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "color actualizado", out)
}

// Delete godoc
// @Summary      Eliminar color (falla si algún producto lo usa)
// @Tags         colors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del color"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Router       /api/colors/{id} [delete]
func (h *ColorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return ok(c, "color eliminado", nil)
}
