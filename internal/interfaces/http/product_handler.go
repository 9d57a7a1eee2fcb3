package http

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/jquiroga/tienda-api/internal/application/dto"
	"github.com/jquiroga/tienda-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product y para las filas
// asociativas (producto, color).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Response{data=dto.ProductResponse}
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", MsgInvalidBody)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return created(c, "producto creado", out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response{data=dto.ProductResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", MsgNotFound)
	}
	return ok(c, "producto", out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.ProductResponse}
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "productos", out)
}

// Update godoc
// @Summary      Actualizar producto (parche parcial)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.ProductResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", MsgInvalidBody)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "producto actualizado", out)
}

// Delete godoc
// @Summary      Eliminar producto (cascada completa)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return ok(c, "producto eliminado", nil)
}

// GetPair godoc
// @Summary      Obtener la fila asociativa (producto, color)
// @Tags         products
// @Produce      json
// @Param        id       path  string  true  "ID del producto"
// @Param        colorId  path  string  true  "ID del color"
// @Success      200  {object}  dto.Response{data=dto.ProductColorResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/products/{id}/colors/{colorId} [get]
func (h *ProductHandler) GetPair(c *fiber.Ctx) error {
	out, err := h.uc.GetPair(c.UserContext(), c.Params("id"), c.Params("colorId"))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "asociación producto-color", out)
}

// SetPairStock godoc
// @Summary      Sobrescribir el stock del par (producto, color)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id       path  string  true  "ID del producto"
// @Param        colorId  path  string  true  "ID del color"
// @Param        body     body  dto.SetPairStockRequest  true  "Nuevo stock"
// @Success      200  {object}  dto.Response{data=dto.ProductColorResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/products/{id}/colors/{colorId}/stock [put]
func (h *ProductHandler) SetPairStock(c *fiber.Ctx) error {
	var in dto.SetPairStockRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", MsgInvalidBody)
	}
	if in.Stock == nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "stock es requerido")
	}
	out, err := h.uc.SetPairStock(c.UserContext(), c.Params("id"), c.Params("colorId"), *in.Stock)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "stock actualizado", out)
}

// AddPairImage godoc
// @Summary      Subir una imagen al par (producto, color)
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id       path      string  true  "ID del producto"
// @Param        colorId  path      string  true  "ID del color"
// @Param        image    formData  file    true  "Imagen"
// @Success      201  {object}  dto.Response{data=[]string}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/products/{id}/colors/{colorId}/images [post]
func (h *ProductHandler) AddPairImage(c *fiber.Ctx) error {
	data, filename, err := readUpload(c, "image")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "archivo 'image' requerido")
	}
	images, err := h.uc.AddPairImage(c.UserContext(), c.Params("id"), c.Params("colorId"), data, filename)
	if err != nil {
		return handleError(c, err)
	}
	return created(c, "imagen agregada", images)
}

// RemovePairImage godoc
// @Summary      Quitar una imagen del par (producto, color)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id       path  string  true  "ID del producto"
// @Param        colorId  path  string  true  "ID del color"
// @Param        imageId  path  string  true  "ID de la imagen"
// @Success      200  {object}  dto.Response{data=[]string}
// @Failure      404  {object}  dto.Response
// @Router       /api/products/{id}/colors/{colorId}/images/{imageId} [delete]
func (h *ProductHandler) RemovePairImage(c *fiber.Ctx) error {
	images, err := h.uc.RemovePairImage(c.UserContext(), c.Params("id"), c.Params("colorId"), c.Params("imageId"))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "imagen eliminada", images)
}

// RemovePair godoc
// @Summary      Eliminar la asociación (producto, color)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id       path  string  true  "ID del producto"
// @Param        colorId  path  string  true  "ID del color"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/products/{id}/colors/{colorId} [delete]
func (h *ProductHandler) RemovePair(c *fiber.Ctx) error {
	if err := h.uc.RemoveColorAssociation(c.UserContext(), c.Params("id"), c.Params("colorId")); err != nil {
		return handleError(c, err)
	}
	return ok(c, "asociación eliminada", nil)
}

// readUpload extrae el contenido y el nombre de un archivo multipart.
func readUpload(c *fiber.Ctx, field string) ([]byte, string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, "", err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Filename, nil
}
