package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jquiroga/tienda-api/internal/application/dto"
	"github.com/jquiroga/tienda-api/internal/application/usecase"
)

// PromotionHandler maneja las peticiones HTTP para Promotion, incluido el
// filtro de vigencia y los banners.
type PromotionHandler struct {
	uc *usecase.PromotionUseCase
}

// NewPromotionHandler construye el handler.
func NewPromotionHandler(uc *usecase.PromotionUseCase) *PromotionHandler {
	return &PromotionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear promoción
// @Tags         promotions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePromotionRequest  true  "Datos de la promoción"
// @Success      201   {object}  dto.Response{data=dto.PromotionResponse}
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/promotions [post]
func (h *PromotionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePromotionRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", MsgInvalidBody)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return created(c, "promoción creada", out)
}

// GetByID godoc
// @Summary      Obtener promoción por ID
// @Tags         promotions
// @Produce      json
// @Param        id   path  string  true  "ID de la promoción"
// @Success      200  {object}  dto.Response{data=dto.PromotionResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/promotions/{id} [get]
func (h *PromotionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", MsgNotFound)
	}
	return ok(c, "promoción", out)
}

// List godoc
// @Summary      Listar todas las promociones
// @Tags         promotions
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.PromotionResponse}
// @Router       /api/promotions [get]
func (h *PromotionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "promociones", out)
}

// ListOngoing godoc
// @Summary      Listar promociones vigentes hoy (extremos inclusivos)
// @Tags         promotions
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.PromotionResponse}
// @Router       /api/promotions/ongoing [get]
func (h *PromotionHandler) ListOngoing(c *fiber.Ctx) error {
	out, err := h.uc.ListOngoing(c.UserContext(), time.Now())
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "promociones vigentes", out)
}

// ListOngoingForProduct godoc
// @Summary      Listar promociones vigentes de un producto
// @Tags         promotions
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response{data=[]dto.PromotionResponse}
// @Router       /api/promotions/ongoing/{productId} [get]
func (h *PromotionHandler) ListOngoingForProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListOngoingForProduct(c.UserContext(), c.Params("productId"), time.Now())
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "promociones vigentes del producto", out)
}

// Update godoc
// @Summary      Actualizar promoción (parche parcial)
// @Tags         promotions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la promoción"
// @Param        body  body  dto.UpdatePromotionRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.PromotionResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/promotions/{id} [put]
func (h *PromotionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePromotionRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", MsgInvalidBody)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "promoción actualizada", out)
}

// AddBanner godoc
// @Summary      Subir un banner a la promoción
// @Tags         promotions
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id      path      string  true  "ID de la promoción"
// @Param        banner  formData  file    true  "Banner"
// @Success      200  {object}  dto.Response{data=[]string}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/promotions/{id}/banner [put]
func (h *PromotionHandler) AddBanner(c *fiber.Ctx) error {
	data, filename, err := readUpload(c, "banner")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "archivo 'banner' requerido")
	}
	banners, err := h.uc.AddBanner(c.UserContext(), c.Params("id"), data, filename)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, "banner agregado", banners)
}

// ServeBanner godoc
// @Summary      Servir un banner por nombre de archivo
// @Tags         promotions
// @Produce      octet-stream
// @Param        name  path  string  true  "Nombre del archivo"
// @Success      200
// @Failure      404  {object}  dto.Response
// @Router       /api/promotions/banner/{name} [get]
func (h *PromotionHandler) ServeBanner(c *fiber.Ctx) error {
	if err := c.SendFile(h.uc.BannerPath(c.Params("name"))); err != nil {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "banner no encontrado")
	}
	return nil
}

// Delete godoc
// @Summary      Eliminar promoción (purga banners y vínculos)
// @Tags         promotions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la promoción"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /api/promotions/{id} [delete]
func (h *PromotionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return ok(c, "promoción eliminada", nil)
}
