package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jquiroga/tienda-api/internal/application/dto"
	"github.com/jquiroga/tienda-api/internal/application/usecase"
)

// BrandHandler maneja las peticiones HTTP para Brand.
type BrandHandler struct {
	uc *usecase.BrandUseCase
}

// NewBrandHandler construye el handler.
func NewBrandHandler(uc *usecase.BrandUseCase) *BrandHandler {
	return &BrandHandler{uc: uc}
}

// Create godoc
// @Summary      Crear marca
// @Tags         brands
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBrandRequest  true  "Datos de la marca"
// @Success      201   {object}  dto.Response{data=dto.BrandResponse}
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/brands [post]
func (h *BrandHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBrandRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", MsgInvalidBody)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return created(c, "marca creada", out)
}

// GetByID godoc
// @Summary      Obtener marca por ID
// @Tags         brands
// @Produce      json
// @Param        id   path  string  true  "ID de la marca"
// @Success      200  {object}  dto.Response{data=dto.BrandResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/brands/{id} [get]
func (h *BrandHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", MsgNotFound)
	}
	return ok(c, "marca", out)
}

// List godoc
// @Summary      Listar marcas
// @Tags         brands
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.BrandResponse}
// @Router       /api/brands [get]
func (h *BrandHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "marcas", out)
}

// Update godoc
// @Summary      Actualizar marca (parche parcial)
// @Tags         brands
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la marca"
// @Param        body  body  dto.UpdateBrandRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.BrandResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/brands/{id} [put]
func (h *BrandHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBrandRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", MsgInvalidBody)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "marca actualizada", out)
}

// SetLogo godoc
// @Summary      Subir o reemplazar el logo de la marca
// @Tags         brands
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "ID de la marca"
// @Param        logo  formData  file    true  "Logo"
// @Success      200   {object}  dto.Response{data=dto.BrandResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/brands/{id}/logo [put]
func (h *BrandHandler) SetLogo(c *fiber.Ctx) error {
	data, filename, err := readUpload(c, "logo")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "archivo 'logo' requerido")
	}
	out, err := h.uc.SetLogo(c.UserContext(), c.Params("id"), data, filename)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "logo actualizado", out)
}

// Delete godoc
// @Summary      Eliminar marca (falla si algún producto la referencia)
// @Tags         brands
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la marca"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Router       /api/brands/{id} [delete]
func (h *BrandHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return ok(c, "marca eliminada", nil)
}
